package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/atomic"

	"pem/internal/app/config"
	"pem/internal/app/pkg/errorx"
	"pem/internal/app/pkg/logger"
)

// ScanFunc 一次端到端扫描（窗口计算 → 库存查询 → 告警组装 → 历史记录 → 投递）
type ScanFunc func(ctx context.Context) error

// Schedule 触发时刻计算
type Schedule interface {
	// Next 返回 now 之后的下一次触发时刻
	Next(now time.Time) time.Time
}

// DailySchedule 每天固定时刻触发
type DailySchedule struct {
	Hour   int
	Minute int
}

// Next 今天的触发时刻已过则排到明天
func (s DailySchedule) Next(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), s.Hour, s.Minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// IntervalSchedule 固定间隔触发
type IntervalSchedule struct {
	Every time.Duration
}

// Next 返回下一次触发时刻
func (s IntervalSchedule) Next(now time.Time) time.Time {
	return now.Add(s.Every)
}

// Cadence 独立的定时扫描单元
// 每个 cadence 有自己的 Idle/Running 状态：Running 期间的再次触发被丢弃，
// 保证同一 cadence 最多只有一次在途扫描；不同 cadence 之间互不阻塞
type Cadence struct {
	name     string
	schedule Schedule
	scan     ScanFunc
	timeout  time.Duration
	running  *atomic.Bool
	log      logger.Logger
}

// NewCadence 根据配置创建 cadence
func NewCadence(cfg config.CadenceConfig, scan ScanFunc, timeout time.Duration, log logger.Logger) (*Cadence, error) {
	var schedule Schedule
	switch cfg.Mode {
	case config.CadenceModeDaily:
		hour, minute, err := config.ParseDailyAt(cfg.At)
		if err != nil {
			return nil, err
		}
		schedule = DailySchedule{Hour: hour, Minute: minute}
	case config.CadenceModeInterval:
		if cfg.Every <= 0 {
			return nil, fmt.Errorf("cadence %s: every must be positive: %w", cfg.Name, errorx.ErrInvalidCadence)
		}
		schedule = IntervalSchedule{Every: cfg.Every}
	default:
		return nil, fmt.Errorf("cadence %s: unknown mode %q: %w", cfg.Name, cfg.Mode, errorx.ErrInvalidCadence)
	}

	return &Cadence{
		name:     cfg.Name,
		schedule: schedule,
		scan:     scan,
		timeout:  timeout,
		running:  atomic.NewBool(false),
		log:      log,
	}, nil
}

// Name cadence 名称
func (c *Cadence) Name() string {
	return c.name
}

// loop 定时循环：计算下一次触发时刻，到点后异步派发扫描
// 派发不等待扫描结束，慢扫描由 Running 守卫丢弃后续触发
func (c *Cadence) loop(ctx context.Context) {
	c.log.Infof(ctx, "[Scheduler] Cadence %s started, next fire at %s",
		c.name, c.schedule.Next(time.Now()).Format(time.RFC3339))

	for {
		timer := time.NewTimer(time.Until(c.schedule.Next(time.Now())))

		select {
		case <-ctx.Done():
			timer.Stop()
			c.log.Infof(ctx, "[Scheduler] Cadence %s stopped", c.name)
			return

		case <-timer.C:
			go c.Fire(ctx)
		}
	}
}

// Fire 触发一次扫描
// Running 状态下的触发被丢弃（只记日志）；无论扫描成败，状态都回到 Idle
func (c *Cadence) Fire(ctx context.Context) bool {
	if !c.running.CAS(false, true) {
		c.log.Warnf(ctx, "[Scheduler] Cadence %s fired while scan in flight, dropping", c.name)
		return false
	}
	defer c.running.Store(false)

	scanCtx := context.WithValue(ctx, "trace_id", uuid.New().String())
	scanCtx = context.WithValue(scanCtx, "cadence", c.name)

	if c.timeout > 0 {
		var cancel context.CancelFunc
		scanCtx, cancel = context.WithTimeout(scanCtx, c.timeout)
		defer cancel()
	}

	// 扫描内部的任何失败都在这里兜住，不能拖垮调度器
	defer func() {
		if r := recover(); r != nil {
			c.log.Errorf(scanCtx, "[Scheduler] Cadence %s scan panicked: %v", c.name, r)
		}
	}()

	c.log.Infof(scanCtx, "[Scheduler] Cadence %s scan started", c.name)

	if err := c.scan(scanCtx); err != nil {
		c.log.Errorf(scanCtx, "[Scheduler] Cadence %s scan failed: %v", c.name, err)
		return true
	}

	c.log.Infof(scanCtx, "[Scheduler] Cadence %s scan finished", c.name)
	return true
}

// Running 当前是否有在途扫描
func (c *Cadence) Running() bool {
	return c.running.Load()
}
