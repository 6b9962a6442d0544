package response

import (
	"time"

	"pem/internal/app/domains/entity/etalert"
	"pem/internal/app/domains/entity/etproduct"
	"pem/internal/app/domains/services/svalert"
)

const dateLayout = "2006-01-02"

// FromProductEntity 领域对象转换为响应 DTO
func FromProductEntity(p *etproduct.Product) *ProductResponse {
	daysLeft := p.DaysUntilExpiration(time.Now())
	return &ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Category:       p.Category,
		ExpirationDate: p.ExpirationDate.Format(dateLayout),
		Quantity:       p.Quantity,
		Price:          p.Price,
		DaysLeft:       daysLeft,
		Urgency:        string(etalert.ClassifyUrgency(daysLeft)),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// FromProductEntities 商品列表转换
func FromProductEntities(products []*etproduct.Product) *ProductListResponse {
	items := make([]*ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, FromProductEntity(p))
	}
	return &ProductListResponse{
		Items: items,
		Count: len(items),
	}
}

// FromAlertEntity 告警转换为响应 DTO
func FromAlertEntity(a *etalert.Alert) *AlertResponse {
	products := make([]*ProductSnapshotResponse, 0, len(a.Products))
	for _, p := range a.Products {
		products = append(products, &ProductSnapshotResponse{
			ProductID:      p.ProductID,
			Name:           p.Name,
			Category:       p.Category,
			ExpirationDate: p.ExpirationDate.Format(dateLayout),
			Quantity:       p.Quantity,
			Price:          p.Price,
			DaysLeft:       p.DaysLeft,
			Urgency:        string(p.Urgency),
			Value:          p.Value,
		})
	}

	return &AlertResponse{
		ID:               a.ID,
		Timestamp:        a.Timestamp,
		Type:             string(a.Type),
		Status:           string(a.Status),
		ProductCount:     len(a.Products),
		TotalValueAtRisk: a.TotalValueAtRisk,
		Products:         products,
		Recipes:          FromRecipeSuggestions(a.Recipes),
	}
}

// FromAlertEntities 告警列表转换
func FromAlertEntities(alerts []*etalert.Alert) *AlertHistoryResponse {
	items := make([]*AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		items = append(items, FromAlertEntity(a))
	}
	return &AlertHistoryResponse{
		Items: items,
		Count: len(items),
	}
}

// FromAlertStats 统计转换
func FromAlertStats(stats svalert.Stats) *AlertStatsResponse {
	return &AlertStatsResponse{
		Total:   stats.Total,
		Last24h: WindowStatsResponse{Count: stats.Last24h.Count, TotalValueAtRisk: stats.Last24h.TotalValueAtRisk},
		Last7d:  WindowStatsResponse{Count: stats.Last7d.Count, TotalValueAtRisk: stats.Last7d.TotalValueAtRisk},
	}
}

// FromRecipeSuggestions 菜谱建议转换
func FromRecipeSuggestions(recipes []etalert.RecipeSuggestion) []*RecipeResponse {
	items := make([]*RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		items = append(items, &RecipeResponse{
			Name:        r.Name,
			Ingredients: r.Ingredients,
			CookTime:    r.CookTime,
			Difficulty:  string(r.Difficulty),
			Description: r.Description,
			ForProduct:  r.ForProduct,
		})
	}
	return items
}
