package rpproduct

import (
	"context"
	"time"

	"pem/internal/app/domains/entity/etproduct"
)

// ProductRepository 商品仓储接口（只定义，不实现）
// 过期查询保留两种语义：精确日期匹配与闭区间匹配
type ProductRepository interface {
	// Create 创建商品
	Create(ctx context.Context, product *etproduct.Product) error

	// GetByID 根据ID查询商品
	GetByID(ctx context.Context, id int64) (*etproduct.Product, error)

	// List 查询全部商品，按过期日期升序
	List(ctx context.Context) ([]*etproduct.Product, error)

	// Update 更新商品（商品不存在时返回 errorx.ErrProductNotFound）
	Update(ctx context.Context, product *etproduct.Product) error

	// Delete 删除商品（商品不存在时返回 errorx.ErrProductNotFound）
	Delete(ctx context.Context, id int64) error

	// ListExpiringOn 查询过期日期正好为 date 的商品
	ListExpiringOn(ctx context.Context, date time.Time) ([]*etproduct.Product, error)

	// ListExpiringWithin 查询过期日期落在 [from, to] 闭区间内的商品
	ListExpiringWithin(ctx context.Context, from, to time.Time) ([]*etproduct.Product, error)
}
