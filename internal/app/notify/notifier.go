package notify

import (
	"context"
	"errors"

	"pem/internal/app/domains/entity/etalert"
)

// Notifier 通知通道
// 实现方拿到组装完成的告警负载；投递细节（格式、传输）由各通道自理
type Notifier interface {
	// Name 通道名称（日志用）
	Name() string

	// Notify 投递一条告警
	Notify(ctx context.Context, alert *etalert.Alert) error
}

// Multi 组合多个通知通道
// 所有通道都会被调用；任一通道失败即整体视为投递失败（告警状态降级，但不丢弃）
type Multi struct {
	notifiers []Notifier
}

// NewMulti 创建组合通道
func NewMulti(notifiers ...Notifier) *Multi {
	return &Multi{notifiers: notifiers}
}

// Name 实现 Notifier 接口
func (m *Multi) Name() string {
	return "multi"
}

// Notify 依次调用全部通道，聚合错误
func (m *Multi) Notify(ctx context.Context, alert *etalert.Alert) error {
	var errs []error
	for _, n := range m.notifiers {
		if err := n.Notify(ctx, alert); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
