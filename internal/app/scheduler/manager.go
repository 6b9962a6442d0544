package scheduler

import (
	"context"
	"sync"

	"go.uber.org/atomic"

	"pem/internal/app/pkg/logger"
)

// Manager 调度管理器
// 持有全部 cadence，统一启动与优雅退出
type Manager struct {
	cadences   []*Cadence
	closing    *atomic.Bool
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
	log        logger.Logger
}

// NewManager 创建调度管理器
func NewManager(log logger.Logger) *Manager {
	return &Manager{
		cadences: make([]*Cadence, 0),
		closing:  atomic.NewBool(false),
		log:      log,
	}
}

// Register 注册 cadence
func (m *Manager) Register(cadence *Cadence) {
	m.cadences = append(m.cadences, cadence)
}

// Start 启动所有 cadence（每个 cadence 在独立 goroutine）
func (m *Manager) Start(parentCtx context.Context) {
	ctx, cancel := context.WithCancel(parentCtx)
	m.cancelFunc = cancel

	for _, cadence := range m.cadences {
		c := cadence
		m.wg.Add(1)
		go func() {
			defer m.wg.Done()
			c.loop(ctx)
		}()
		m.log.Infof(ctx, "[Scheduler] Cadence registered and started: %s", c.Name())
	}

	m.log.Infof(ctx, "[Scheduler] Manager started, cadence count: %d", len(m.cadences))
}

// Shutdown 优雅退出
// 取消所有定时循环并等待退出；在途扫描随 ctx 取消结束或自行收尾，
// 告警历史只在扫描完整组装后写入，不会留下半成品
func (m *Manager) Shutdown() {
	// 原子操作，保证并发安全
	if m.closing.CAS(false, true) {
		m.log.Infof(context.Background(), "[Scheduler] Manager began to close")

		if m.cancelFunc != nil {
			m.cancelFunc()
		}
		m.wg.Wait()

		m.log.Infof(context.Background(), "[Scheduler] Manager shutdown complete")
	}
}
