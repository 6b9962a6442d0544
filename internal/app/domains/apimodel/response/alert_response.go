package response

import "time"

// AlertResponse 告警响应（DTO）
type AlertResponse struct {
	ID               int64                    `json:"id"`
	Timestamp        time.Time                `json:"timestamp"`
	Type             string                   `json:"type"`
	Status           string                   `json:"status"`
	ProductCount     int                      `json:"product_count"`
	TotalValueAtRisk float64                  `json:"total_value_at_risk"`
	Products         []*ProductSnapshotResponse `json:"products"`
	Recipes          []*RecipeResponse        `json:"recipes"`
}

// ProductSnapshotResponse 告警内商品快照（DTO）
type ProductSnapshotResponse struct {
	ProductID      int64   `json:"product_id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	ExpirationDate string  `json:"expiration_date"`
	Quantity       int     `json:"quantity"`
	Price          float64 `json:"price"`
	DaysLeft       int     `json:"days_left"`
	Urgency        string  `json:"urgency"`
	Value          float64 `json:"value"`
}

// AlertHistoryResponse 告警历史响应
type AlertHistoryResponse struct {
	Items []*AlertResponse `json:"items"`
	Count int              `json:"count"`
}

// AlertCheckResponse 手动扫描结果响应
type AlertCheckResponse struct {
	Alerts      []*AlertResponse `json:"alerts"`
	TotalAlerts int              `json:"total_alerts"`
}

// WindowStatsResponse 单个滚动窗口的统计
type WindowStatsResponse struct {
	Count            int     `json:"count"`
	TotalValueAtRisk float64 `json:"total_value_at_risk"`
}

// AlertStatsResponse 告警统计响应
type AlertStatsResponse struct {
	Total   int                 `json:"total"`
	Last24h WindowStatsResponse `json:"last_24h"`
	Last7d  WindowStatsResponse `json:"last_7d"`
}
