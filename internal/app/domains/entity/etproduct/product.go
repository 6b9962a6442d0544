package etproduct

import (
	"errors"
	"math"
	"time"
)

// 错误定义
var (
	ErrInvalidName       = errors.New("product name cannot be empty")
	ErrInvalidCategory   = errors.New("product category cannot be empty")
	ErrInvalidExpiration = errors.New("expiration date is required")
	ErrInvalidQuantity   = errors.New("quantity cannot be negative")
	ErrInvalidPrice      = errors.New("price cannot be negative")
)

// Product 库存商品（领域对象）
// ExpirationDate 只保留日期部分（UTC 零点），不含时间
type Product struct {
	ID             int64     // 商品ID（雪花ID）
	Name           string    // 商品名称
	Category       string    // 商品分类
	ExpirationDate time.Time // 过期日期
	Quantity       int       // 库存数量
	Price          float64   // 单价（保留两位小数）
	CreatedAt      time.Time // 创建时间
	UpdatedAt      time.Time // 更新时间
}

// NewProduct 创建商品（工厂方法）
func NewProduct(id int64, name, category string, expirationDate time.Time, quantity int, price float64) (*Product, error) {
	// 业务规则校验
	if name == "" {
		return nil, ErrInvalidName
	}
	if category == "" {
		return nil, ErrInvalidCategory
	}
	if expirationDate.IsZero() {
		return nil, ErrInvalidExpiration
	}
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	if price < 0 {
		return nil, ErrInvalidPrice
	}

	return &Product{
		ID:             id,
		Name:           name,
		Category:       category,
		ExpirationDate: TruncateToDay(expirationDate),
		Quantity:       quantity,
		Price:          RoundMoney(price),
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}, nil
}

// TotalValue 该商品的库存总价值（单价 × 数量，保留两位小数）
func (p *Product) TotalValue() float64 {
	return RoundMoney(p.Price * float64(p.Quantity))
}

// DaysUntilExpiration 距离过期的天数（按日历日相减，可为负）
func (p *Product) DaysUntilExpiration(today time.Time) int {
	return int(p.ExpirationDate.Sub(TruncateToDay(today)).Hours() / 24)
}

// TruncateToDay 截断到 UTC 日历日零点
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// RoundMoney 金额保留两位小数
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
