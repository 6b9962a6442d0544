package svalert

import (
	"errors"
	"testing"
	"time"

	"pem/internal/app/pkg/errorx"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestExactDayOffset(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)
	calc := NewWindowCalculator(fixedClock(now))

	tests := []struct {
		name   string
		offset int
		want   time.Time
	}{
		{"today", 0, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"tomorrow", 1, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)},
		{"next week", 7, time.Date(2024, 3, 22, 0, 0, 0, 0, time.UTC)},
		{"across month end", 20, time.Date(2024, 4, 4, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.ExactDayOffset(tt.offset)
			if err != nil {
				t.Fatalf("ExactDayOffset(%d) error: %v", tt.offset, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ExactDayOffset(%d) = %v, want %v", tt.offset, got, tt.want)
			}
		})
	}
}

func TestExactDayOffsetNegative(t *testing.T) {
	calc := NewWindowCalculator(fixedClock(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)))

	_, err := calc.ExactDayOffset(-1)
	if !errors.Is(err, errorx.ErrInvalidArgument) {
		t.Errorf("ExactDayOffset(-1) error = %v, want ErrInvalidArgument", err)
	}
}

func TestWithinDaysInclusive(t *testing.T) {
	now := time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC)
	calc := NewWindowCalculator(fixedClock(now))

	window, err := calc.WithinDaysInclusive(7)
	if err != nil {
		t.Fatalf("WithinDaysInclusive(7) error: %v", err)
	}

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"yesterday excluded", time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), false},
		{"today included", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"day 7 included", time.Date(2024, 3, 22, 0, 0, 0, 0, time.UTC), true},
		{"day 8 excluded", time.Date(2024, 3, 23, 0, 0, 0, 0, time.UTC), false},
		{"time of day ignored", time.Date(2024, 3, 22, 18, 45, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := window.Contains(tt.date); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestWithinDaysInclusiveZero(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	calc := NewWindowCalculator(fixedClock(now))

	window, err := calc.WithinDaysInclusive(0)
	if err != nil {
		t.Fatalf("WithinDaysInclusive(0) error: %v", err)
	}

	if !window.Contains(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Error("window should contain today")
	}
	if window.Contains(time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)) {
		t.Error("window should not contain tomorrow")
	}
}

func TestWithinDaysInclusiveNegative(t *testing.T) {
	calc := NewWindowCalculator(fixedClock(time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)))

	_, err := calc.WithinDaysInclusive(-3)
	if !errors.Is(err, errorx.ErrInvalidArgument) {
		t.Errorf("WithinDaysInclusive(-3) error = %v, want ErrInvalidArgument", err)
	}
}

// 精确匹配窗口与闭区间窗口的一致性：ExactDayOffset(n) 必然落在 WithinDaysInclusive(n) 内
func TestOffsetFallsInsideInclusiveWindow(t *testing.T) {
	calc := NewWindowCalculator(fixedClock(time.Date(2024, 12, 28, 8, 0, 0, 0, time.UTC)))

	for n := 0; n <= 14; n++ {
		date, err := calc.ExactDayOffset(n)
		if err != nil {
			t.Fatalf("ExactDayOffset(%d) error: %v", n, err)
		}
		window, err := calc.WithinDaysInclusive(n)
		if err != nil {
			t.Fatalf("WithinDaysInclusive(%d) error: %v", n, err)
		}
		if !window.Contains(date) {
			t.Errorf("day offset %d not contained in [today, today+%d]", n, n)
		}
	}
}
