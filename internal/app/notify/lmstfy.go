package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pem/internal/app/domains/entity/etalert"
	"pem/internal/app/infra/mq/lmstfy"
)

// 邮件任务在队列中的存活时间与投递延迟
const (
	emailJobTTL   = uint32(3600)
	emailJobDelay = uint32(0)
)

// EmailJob 投给邮件 worker 的任务负载
type EmailJob struct {
	AlertID   int64          `json:"alert_id"`
	AlertType etalert.Type   `json:"alert_type"`
	CreatedAt time.Time      `json:"created_at"`
	Alert     *etalert.Alert `json:"alert"`
}

// LmstfyNotifier 邮件告警通道
// 只负责把告警投到队列；邮件渲染和发送由外部 worker 完成
type LmstfyNotifier struct {
	client *lmstfy.Client
	queue  string
}

// NewLmstfyNotifier 创建邮件队列通道
func NewLmstfyNotifier(client *lmstfy.Client, queue string) *LmstfyNotifier {
	if queue == "" {
		queue = "email_alerts"
	}
	return &LmstfyNotifier{
		client: client,
		queue:  queue,
	}
}

// Name 实现 Notifier 接口
func (n *LmstfyNotifier) Name() string {
	return "lmstfy"
}

// Notify 投递告警任务
func (n *LmstfyNotifier) Notify(ctx context.Context, alert *etalert.Alert) error {
	job := EmailJob{
		AlertID:   alert.ID,
		AlertType: alert.Type,
		CreatedAt: alert.Timestamp,
		Alert:     alert,
	}

	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal email job failed: %w", err)
	}

	if err := n.client.Publish(n.queue, payload, emailJobTTL, emailJobDelay); err != nil {
		return fmt.Errorf("enqueue email job failed: %w", err)
	}
	return nil
}
