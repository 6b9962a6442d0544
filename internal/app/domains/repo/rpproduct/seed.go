package rpproduct

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"pem/internal/app/domains/entity/etproduct"
	"pem/internal/app/pkg/idgen"
)

// demoProduct 演示数据条目，过期日期按距今天的偏移量生成
type demoProduct struct {
	name       string
	category   string
	daysToLive int
	quantity   int
	price      float64
}

var demoProducts = []demoProduct{
	{"Milk", "Dairy", 1, 50, 3.99},
	{"Ground Beef", "Meat", 1, 10, 6.99},
	{"Salmon Fillet", "Seafood", 1, 8, 12.99},
	{"Bread", "Bakery", 2, 30, 2.49},
	{"Lettuce", "Vegetables", 2, 40, 1.99},
	{"Strawberries", "Fruits", 2, 20, 5.99},
	{"Apples", "Fruits", 3, 100, 4.99},
	{"Spinach", "Vegetables", 3, 30, 2.99},
	{"Bananas", "Fruits", 4, 80, 2.99},
	{"Pork Chops", "Meat", 4, 12, 7.99},
	{"Tomatoes", "Vegetables", 5, 60, 3.49},
	{"Yogurt", "Dairy", 5, 25, 1.99},
	{"Cheese", "Dairy", 6, 15, 5.99},
	{"Chicken Breast", "Meat", 6, 20, 8.99},
	{"Bell Peppers", "Vegetables", 6, 25, 3.99},
	{"Eggs", "Dairy", 7, 24, 3.49},
	{"Greek Yogurt", "Dairy", 7, 18, 4.99},
	{"Orange Juice", "Beverages", 10, 35, 4.49},
	{"Pasta", "Pantry", 150, 100, 1.99},
	{"Rice", "Pantry", 400, 50, 3.99},
}

// SeedDemoData 写入演示库存（仅当表为空时执行）
func SeedDemoData(ctx context.Context, db *gorm.DB) (int, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&productPO{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count products failed: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	repo := NewProductRepository(db)
	today := etproduct.TruncateToDay(time.Now())

	for _, demo := range demoProducts {
		product, err := etproduct.NewProduct(
			idgen.GenerateID(),
			demo.name,
			demo.category,
			today.AddDate(0, 0, demo.daysToLive),
			demo.quantity,
			demo.price,
		)
		if err != nil {
			return 0, fmt.Errorf("build demo product %s failed: %w", demo.name, err)
		}
		if err := repo.Create(ctx, product); err != nil {
			return 0, fmt.Errorf("insert demo product %s failed: %w", demo.name, err)
		}
	}

	return len(demoProducts), nil
}
