package etalert

import (
	"time"

	"pem/internal/app/domains/entity/etproduct"
)

// Type 告警类型
type Type string

const (
	TypeTomorrow Type = "TOMORROW"  // 明日过期告警（精确匹配）
	TypeSevenDay Type = "SEVEN_DAY" // 7天内过期告警（闭区间匹配）
)

// Status 告警投递状态
type Status string

const (
	StatusSent           Status = "SENT"
	StatusDeliveryFailed Status = "DELIVERY_FAILED" // 投递失败不丢弃告警，仍写入历史
)

// Urgency 单个商品的紧迫度分级
type Urgency string

const (
	UrgencyOverdue  Urgency = "OVERDUE"   // d < 0
	UrgencyToday    Urgency = "TODAY"     // d = 0
	UrgencyTomorrow Urgency = "TOMORROW"  // d = 1
	UrgencyThisWeek Urgency = "THIS_WEEK" // 1 < d <= 7
	UrgencyHealthy  Urgency = "HEALTHY"   // d > 7
)

// Difficulty 菜谱难度
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// RecipeSuggestion 菜谱建议（值对象，构造后不可变）
type RecipeSuggestion struct {
	Name        string     // 菜谱名称（单条告警内唯一）
	Ingredients []string   // 食材清单
	CookTime    string     // 烹饪时长（展示用）
	Difficulty  Difficulty // 难度
	Description string     // 描述
	ForProduct  string     // 触发该菜谱的商品名称
}

// ProductSnapshot 商品快照（值对象）
// 告警生成时对库存商品做浅拷贝，后续库存变更不影响已生成的历史
type ProductSnapshot struct {
	ProductID      int64
	Name           string
	Category       string
	ExpirationDate time.Time
	Quantity       int
	Price          float64
	DaysLeft       int     // 距过期天数（可为负）
	Urgency        Urgency // 紧迫度分级
	Value          float64 // 单价 × 数量
}

// Alert 过期告警（聚合根，构造后不可变，由历史存储持有）
type Alert struct {
	ID               int64             // 告警ID（雪花ID）
	Timestamp        time.Time         // 生成时刻
	Type             Type              // 告警类型
	Products         []ProductSnapshot // 命中的商品快照（非空）
	TotalValueAtRisk float64           // 风险总价值
	Recipes          []RecipeSuggestion // 去重后的菜谱建议（最多5条）
	Status           Status            // 投递状态
}

// ClassifyUrgency 根据距过期天数返回紧迫度分级
func ClassifyUrgency(daysLeft int) Urgency {
	switch {
	case daysLeft < 0:
		return UrgencyOverdue
	case daysLeft == 0:
		return UrgencyToday
	case daysLeft == 1:
		return UrgencyTomorrow
	case daysLeft <= 7:
		return UrgencyThisWeek
	default:
		return UrgencyHealthy
	}
}

// SnapshotOf 从库存商品生成快照
func SnapshotOf(p *etproduct.Product, today time.Time) ProductSnapshot {
	daysLeft := p.DaysUntilExpiration(today)
	return ProductSnapshot{
		ProductID:      p.ID,
		Name:           p.Name,
		Category:       p.Category,
		ExpirationDate: p.ExpirationDate,
		Quantity:       p.Quantity,
		Price:          p.Price,
		DaysLeft:       daysLeft,
		Urgency:        ClassifyUrgency(daysLeft),
		Value:          p.TotalValue(),
	}
}
