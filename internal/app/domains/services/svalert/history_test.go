package svalert

import (
	"testing"
	"time"

	"pem/internal/app/domains/entity/etalert"
)

func makeAlert(id int64, ts time.Time, value float64) *etalert.Alert {
	return &etalert.Alert{
		ID:               id,
		Timestamp:        ts,
		Type:             etalert.TypeSevenDay,
		Products:         []etalert.ProductSnapshot{{ProductID: id, Name: "Milk"}},
		TotalValueAtRisk: value,
		Status:           etalert.StatusSent,
	}
}

func TestHistoryCapacityEviction(t *testing.T) {
	base := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	h := NewHistory(100, fixedClock(base))

	for i := 0; i < 101; i++ {
		h.Append(makeAlert(int64(i), base.Add(time.Duration(i)*time.Minute), 1.0))
	}

	if h.Len() != 100 {
		t.Fatalf("Len() = %d, want 100", h.Len())
	}

	// 最旧的一条（id=0）被淘汰，最新的一条（id=100）在场
	recent := h.Recent(100)
	if recent[0].ID != 100 {
		t.Errorf("newest alert id = %d, want 100", recent[0].ID)
	}
	if recent[len(recent)-1].ID != 1 {
		t.Errorf("oldest surviving alert id = %d, want 1", recent[len(recent)-1].ID)
	}
}

func TestHistoryRecentOrdering(t *testing.T) {
	base := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	h := NewHistory(10, fixedClock(base))

	h.Append(makeAlert(1, base.Add(1*time.Hour), 10))
	h.Append(makeAlert(2, base.Add(3*time.Hour), 20))
	h.Append(makeAlert(3, base.Add(2*time.Hour), 30))

	recent := h.Recent(2)
	if len(recent) != 2 {
		t.Fatalf("Recent(2) returned %d alerts, want 2", len(recent))
	}
	if recent[0].ID != 2 || recent[1].ID != 3 {
		t.Errorf("Recent(2) order = [%d, %d], want [2, 3]", recent[0].ID, recent[1].ID)
	}
}

func TestHistoryRecentLimits(t *testing.T) {
	base := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	h := NewHistory(10, fixedClock(base))
	h.Append(makeAlert(1, base, 10))

	if got := h.Recent(0); len(got) != 0 {
		t.Errorf("Recent(0) returned %d alerts, want 0", len(got))
	}
	if got := h.Recent(-5); len(got) != 0 {
		t.Errorf("Recent(-5) returned %d alerts, want 0", len(got))
	}
	// limit 超过存量时返回全部
	if got := h.Recent(100); len(got) != 1 {
		t.Errorf("Recent(100) returned %d alerts, want 1", len(got))
	}
}

func TestHistoryStatsSince(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	h := NewHistory(100, fixedClock(now))

	h.Append(makeAlert(1, now.Add(-23*time.Hour), 100.10)) // 24小时内
	h.Append(makeAlert(2, now.Add(-25*time.Hour), 50.25))  // 24小时外、7天内
	h.Append(makeAlert(3, now.Add(-8*24*time.Hour), 75.00)) // 7天外

	day := h.StatsSince(24 * time.Hour)
	if day.Count != 1 {
		t.Errorf("24h count = %d, want 1", day.Count)
	}
	if day.TotalValueAtRisk != 100.10 {
		t.Errorf("24h value = %v, want 100.10", day.TotalValueAtRisk)
	}

	week := h.StatsSince(7 * 24 * time.Hour)
	if week.Count != 2 {
		t.Errorf("7d count = %d, want 2", week.Count)
	}
	if week.TotalValueAtRisk != 150.35 {
		t.Errorf("7d value = %v, want 150.35", week.TotalValueAtRisk)
	}
}

func TestHistoryStats(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	h := NewHistory(100, fixedClock(now))

	h.Append(makeAlert(1, now.Add(-1*time.Hour), 10))
	h.Append(makeAlert(2, now.Add(-3*24*time.Hour), 20))
	h.Append(makeAlert(3, now.Add(-30*24*time.Hour), 30))

	stats := h.Stats()
	if stats.Total != 3 {
		t.Errorf("Total = %d, want 3", stats.Total)
	}
	if stats.Last24h.Count != 1 {
		t.Errorf("Last24h count = %d, want 1", stats.Last24h.Count)
	}
	if stats.Last7d.Count != 2 {
		t.Errorf("Last7d count = %d, want 2", stats.Last7d.Count)
	}
}

func TestHistoryDefaultCapacity(t *testing.T) {
	h := NewHistory(0, nil)
	if h.Capacity() != DefaultHistoryCapacity {
		t.Errorf("Capacity() = %d, want %d", h.Capacity(), DefaultHistoryCapacity)
	}
}

func TestHistoryAppendNil(t *testing.T) {
	h := NewHistory(10, nil)
	h.Append(nil)
	if h.Len() != 0 {
		t.Errorf("Len() = %d after nil append, want 0", h.Len())
	}
}
