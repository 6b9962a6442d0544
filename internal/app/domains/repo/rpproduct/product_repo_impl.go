package rpproduct

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"pem/internal/app/domains/entity/etproduct"
	"pem/internal/app/pkg/errorx"
)

const dateLayout = "2006-01-02"

// productPO 商品持久化对象（GORM 模型）
type productPO struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	Name           string    `gorm:"column:name;type:varchar(128);not null"`
	Category       string    `gorm:"column:category;type:varchar(64);not null;index:idx_category"`
	ExpirationDate time.Time `gorm:"column:expiration_date;type:date;not null;index:idx_expiration_date"`
	Quantity       int       `gorm:"column:quantity;not null"`
	Price          float64   `gorm:"column:price;type:decimal(10,2);not null"`
	CreatedAt      time.Time `gorm:"column:created_at;not null"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定表名
func (productPO) TableName() string {
	return "products"
}

// AutoMigrate 建表（启动时执行一次）
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&productPO{})
}

// ProductRepositoryImpl 商品仓储实现（MySQL）
type ProductRepositoryImpl struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓储实例
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

// Create 创建商品，将领域对象转换为 GORM 模型后存储
func (r *ProductRepositoryImpl) Create(ctx context.Context, product *etproduct.Product) error {
	return r.db.WithContext(ctx).Create(r.toGormModel(product)).Error
}

// GetByID 根据ID查询商品
func (r *ProductRepositoryImpl) GetByID(ctx context.Context, id int64) (*etproduct.Product, error) {
	var po productPO
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.ErrProductNotFound
		}
		return nil, err
	}
	return r.toDomainModel(&po), nil
}

// List 查询全部商品，按过期日期升序
func (r *ProductRepositoryImpl) List(ctx context.Context) ([]*etproduct.Product, error) {
	var pos []productPO
	err := r.db.WithContext(ctx).Order("expiration_date ASC").Find(&pos).Error
	if err != nil {
		return nil, err
	}
	return r.toDomainModels(pos), nil
}

// Update 更新商品
func (r *ProductRepositoryImpl) Update(ctx context.Context, product *etproduct.Product) error {
	result := r.db.WithContext(ctx).
		Model(&productPO{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"name":            product.Name,
			"category":        product.Category,
			"expiration_date": product.ExpirationDate,
			"quantity":        product.Quantity,
			"price":           product.Price,
			"updated_at":      time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errorx.ErrProductNotFound
	}
	return nil
}

// Delete 删除商品
func (r *ProductRepositoryImpl) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&productPO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errorx.ErrProductNotFound
	}
	return nil
}

// ListExpiringOn 查询过期日期正好为 date 的商品
func (r *ProductRepositoryImpl) ListExpiringOn(ctx context.Context, date time.Time) ([]*etproduct.Product, error) {
	var pos []productPO
	err := r.db.WithContext(ctx).
		Where("expiration_date = ?", date.Format(dateLayout)).
		Find(&pos).Error
	if err != nil {
		return nil, err
	}
	return r.toDomainModels(pos), nil
}

// ListExpiringWithin 查询过期日期落在 [from, to] 闭区间内的商品
func (r *ProductRepositoryImpl) ListExpiringWithin(ctx context.Context, from, to time.Time) ([]*etproduct.Product, error) {
	var pos []productPO
	err := r.db.WithContext(ctx).
		Where("expiration_date >= ? AND expiration_date <= ?", from.Format(dateLayout), to.Format(dateLayout)).
		Order("expiration_date ASC").
		Find(&pos).Error
	if err != nil {
		return nil, err
	}
	return r.toDomainModels(pos), nil
}

// toGormModel 领域对象转换为 GORM 模型
func (r *ProductRepositoryImpl) toGormModel(product *etproduct.Product) *productPO {
	return &productPO{
		ID:             product.ID,
		Name:           product.Name,
		Category:       product.Category,
		ExpirationDate: product.ExpirationDate,
		Quantity:       product.Quantity,
		Price:          product.Price,
		CreatedAt:      product.CreatedAt,
		UpdatedAt:      product.UpdatedAt,
	}
}

// toDomainModel GORM 模型转换为领域对象
func (r *ProductRepositoryImpl) toDomainModel(po *productPO) *etproduct.Product {
	return &etproduct.Product{
		ID:             po.ID,
		Name:           po.Name,
		Category:       po.Category,
		ExpirationDate: etproduct.TruncateToDay(po.ExpirationDate),
		Quantity:       po.Quantity,
		Price:          po.Price,
		CreatedAt:      po.CreatedAt,
		UpdatedAt:      po.UpdatedAt,
	}
}

func (r *ProductRepositoryImpl) toDomainModels(pos []productPO) []*etproduct.Product {
	products := make([]*etproduct.Product, 0, len(pos))
	for i := range pos {
		products = append(products, r.toDomainModel(&pos[i]))
	}
	return products
}
