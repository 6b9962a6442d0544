package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"pem/internal/app/config"
)

type nopLogger struct{}

func (nopLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Infof(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Sync() error                                                    { return nil }

func TestDailyScheduleNext(t *testing.T) {
	schedule := DailySchedule{Hour: 9, Minute: 0}

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			"before trigger time",
			time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC),
		},
		{
			"after trigger time rolls to tomorrow",
			time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 16, 9, 0, 0, 0, time.UTC),
		},
		{
			"exactly at trigger time rolls to tomorrow",
			time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 16, 9, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := schedule.Next(tt.now); !got.Equal(tt.want) {
				t.Errorf("Next(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestIntervalScheduleNext(t *testing.T) {
	schedule := IntervalSchedule{Every: 2 * time.Minute}
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

	want := now.Add(2 * time.Minute)
	if got := schedule.Next(now); !got.Equal(want) {
		t.Errorf("Next(%v) = %v, want %v", now, got, want)
	}
}

func TestNewCadenceRejectsBadConfig(t *testing.T) {
	nop := func(ctx context.Context) error { return nil }

	tests := []struct {
		name string
		cfg  config.CadenceConfig
	}{
		{"unknown mode", config.CadenceConfig{Name: "x", Mode: "weekly"}},
		{"bad daily at", config.CadenceConfig{Name: "x", Mode: config.CadenceModeDaily, At: "25:00"}},
		{"zero interval", config.CadenceConfig{Name: "x", Mode: config.CadenceModeInterval, Every: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCadence(tt.cfg, nop, 0, nopLogger{}); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestFireDropsOverlappingScan(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	cfg := config.CadenceConfig{
		Name:  "demo_sweep",
		Mode:  config.CadenceModeInterval,
		Every: time.Minute,
	}
	var startedOnce sync.Once
	cadence, err := NewCadence(cfg, func(ctx context.Context) error {
		startedOnce.Do(func() { close(started) })
		<-release
		return nil
	}, 0, nopLogger{})
	if err != nil {
		t.Fatalf("NewCadence error: %v", err)
	}

	first := make(chan bool, 1)
	go func() {
		first <- cadence.Fire(context.Background())
	}()

	<-started
	if !cadence.Running() {
		t.Error("cadence should report a scan in flight")
	}

	// 在途扫描未结束时的再次触发被丢弃
	if cadence.Fire(context.Background()) {
		t.Error("overlapping fire should be dropped")
	}

	close(release)
	if !<-first {
		t.Error("first fire should have executed the scan")
	}

	// 扫描结束后状态回到 Idle，可以再次触发
	if cadence.Running() {
		t.Error("cadence should be idle after scan finishes")
	}
	if !cadence.Fire(context.Background()) {
		t.Error("fire after completion should execute")
	}
}

func TestFireRecoversFromPanic(t *testing.T) {
	cfg := config.CadenceConfig{
		Name:  "panicky",
		Mode:  config.CadenceModeInterval,
		Every: time.Minute,
	}
	cadence, err := NewCadence(cfg, func(ctx context.Context) error {
		panic("scan exploded")
	}, 0, nopLogger{})
	if err != nil {
		t.Fatalf("NewCadence error: %v", err)
	}

	// panic 被兜住，不会冒泡到调度循环
	cadence.Fire(context.Background())

	if cadence.Running() {
		t.Error("cadence should be idle after panicked scan")
	}
}

func TestFireAppliesTimeout(t *testing.T) {
	cfg := config.CadenceConfig{
		Name:  "slow",
		Mode:  config.CadenceModeInterval,
		Every: time.Minute,
	}

	var sawDeadline bool
	cadence, err := NewCadence(cfg, func(ctx context.Context) error {
		_, sawDeadline = ctx.Deadline()
		return nil
	}, 5*time.Second, nopLogger{})
	if err != nil {
		t.Fatalf("NewCadence error: %v", err)
	}

	cadence.Fire(context.Background())
	if !sawDeadline {
		t.Error("scan context should carry the configured timeout")
	}
}
