package response

import "time"

// ProductResponse 商品响应（DTO）
type ProductResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	ExpirationDate string    `json:"expiration_date"`
	Quantity       int       `json:"quantity"`
	Price          float64   `json:"price"`
	DaysLeft       int       `json:"days_left"`
	Urgency        string    `json:"urgency"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ProductListResponse 商品列表响应
type ProductListResponse struct {
	Items []*ProductResponse `json:"items"`
	Count int                `json:"count"`
}
