package svalert

import (
	"sort"
	"sync"
	"time"

	"pem/internal/app/domains/entity/etalert"
	"pem/internal/app/domains/entity/etproduct"
)

const (
	// DefaultHistoryCapacity 历史容量默认值（FIFO 淘汰）
	DefaultHistoryCapacity = 100

	// DefaultRecentLimit 查询最近告警的默认条数
	DefaultRecentLimit = 10
)

// WindowStats 单个时间窗口内的聚合统计
type WindowStats struct {
	Count            int     `json:"count"`
	TotalValueAtRisk float64 `json:"total_value_at_risk"`
}

// Stats 告警历史聚合统计（24小时 / 7天两个滚动窗口一次返回）
type Stats struct {
	Total   int         `json:"total"`
	Last24h WindowStats `json:"last_24h"`
	Last7d  WindowStats `json:"last_7d"`
}

// History 有界告警历史（只追加，内存态）
// 引擎是唯一持有者；追加与查询都走同一把锁，
// 并发 cadence 同时写入不会破坏顺序或突破容量上限
type History struct {
	mu       sync.Mutex
	capacity int
	alerts   []*etalert.Alert
	now      func() time.Time
}

// NewHistory 创建历史存储
// capacity <= 0 时取默认容量；now 为 nil 时使用进程时钟
func NewHistory(capacity int, now func() time.Time) *History {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	if now == nil {
		now = time.Now
	}
	return &History{
		capacity: capacity,
		alerts:   make([]*etalert.Alert, 0, capacity),
		now:      now,
	}
}

// Append 追加一条告警，容量满时先淘汰最旧的一条
func (h *History) Append(alert *etalert.Alert) {
	if alert == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.alerts) >= h.capacity {
		evict := len(h.alerts) - h.capacity + 1
		h.alerts = h.alerts[evict:]
	}
	h.alerts = append(h.alerts, alert)
}

// Recent 返回最近的告警，按时间戳从新到旧
// limit <= 0 返回空
func (h *History) Recent(limit int) []*etalert.Alert {
	if limit <= 0 {
		return []*etalert.Alert{}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	sorted := make([]*etalert.Alert, len(h.alerts))
	copy(sorted, h.alerts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})

	if limit > len(sorted) {
		limit = len(sorted)
	}
	return sorted[:limit]
}

// StatsSince 统计 timestamp > now-window 的告警数与风险总价值
func (h *History) StatsSince(window time.Duration) WindowStats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.statsSinceLocked(window)
}

// Stats 一次返回全量与 24h/7d 两个滚动窗口的聚合结果
func (h *History) Stats() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()

	return Stats{
		Total:   len(h.alerts),
		Last24h: h.statsSinceLocked(24 * time.Hour),
		Last7d:  h.statsSinceLocked(7 * 24 * time.Hour),
	}
}

// Len 当前历史条数
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.alerts)
}

// Capacity 容量上限
func (h *History) Capacity() int {
	return h.capacity
}

func (h *History) statsSinceLocked(window time.Duration) WindowStats {
	cutoff := h.now().Add(-window)

	var stats WindowStats
	for _, alert := range h.alerts {
		if alert.Timestamp.After(cutoff) {
			stats.Count++
			stats.TotalValueAtRisk += alert.TotalValueAtRisk
		}
	}
	stats.TotalValueAtRisk = etproduct.RoundMoney(stats.TotalValueAtRisk)
	return stats
}
