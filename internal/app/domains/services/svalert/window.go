package svalert

import (
	"fmt"
	"time"

	"pem/internal/app/domains/entity/etproduct"
	"pem/internal/app/pkg/errorx"
)

// Window 日期窗口（闭区间 [From, To]，按日历日比较）
type Window struct {
	From time.Time
	To   time.Time
}

// Contains 判断日期是否落在窗口内
func (w Window) Contains(d time.Time) bool {
	day := etproduct.TruncateToDay(d)
	return !day.Before(w.From) && !day.After(w.To)
}

// WindowCalculator 时间窗口计算
// 纯日期运算，无副作用；时钟与时区（UTC）在构造时固定，全程一致
type WindowCalculator struct {
	now func() time.Time
}

// NewWindowCalculator 创建窗口计算器
// now 为 nil 时使用进程时钟
func NewWindowCalculator(now func() time.Time) *WindowCalculator {
	if now == nil {
		now = time.Now
	}
	return &WindowCalculator{now: now}
}

// Now 当前时刻（UTC）
func (w *WindowCalculator) Now() time.Time {
	return w.now().UTC()
}

// Today 当前日历日（UTC 零点）
func (w *WindowCalculator) Today() time.Time {
	return etproduct.TruncateToDay(w.now())
}

// ExactDayOffset 返回距今天正好 n 天的日历日
func (w *WindowCalculator) ExactDayOffset(n int) (time.Time, error) {
	if n < 0 {
		return time.Time{}, fmt.Errorf("day offset %d: %w", n, errorx.ErrInvalidArgument)
	}
	return w.Today().AddDate(0, 0, n), nil
}

// WithinDaysInclusive 返回 [今天, 今天+n] 的闭区间窗口
// n = 0 时只命中今天过期的商品
func (w *WindowCalculator) WithinDaysInclusive(n int) (Window, error) {
	if n < 0 {
		return Window{}, fmt.Errorf("day offset %d: %w", n, errorx.ErrInvalidArgument)
	}
	today := w.Today()
	return Window{
		From: today,
		To:   today.AddDate(0, 0, n),
	}, nil
}
