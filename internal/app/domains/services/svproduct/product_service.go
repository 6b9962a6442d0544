package svproduct

import (
	"context"
	"fmt"
	"time"

	"pem/internal/app/domains/entity/etproduct"
	"pem/internal/app/domains/repo/rpproduct"
	"pem/internal/app/pkg/idgen"
)

// ProductService 商品服务，负责库存 CRUD 编排
type ProductService struct {
	repo rpproduct.ProductRepository
}

// NewProductService 创建商品服务实例
func NewProductService(repo rpproduct.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// CreateProduct 创建商品（校验后落库）
func (s *ProductService) CreateProduct(ctx context.Context, name, category string, expirationDate time.Time, quantity int, price float64) (*etproduct.Product, error) {
	product, err := etproduct.NewProduct(idgen.GenerateID(), name, category, expirationDate, quantity, price)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("save product failed: %w", err)
	}
	return product, nil
}

// GetProduct 查询商品
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*etproduct.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// ListProducts 查询全部商品，按过期日期升序
func (s *ProductService) ListProducts(ctx context.Context) ([]*etproduct.Product, error) {
	return s.repo.List(ctx)
}

// UpdateProduct 更新商品（全字段覆盖）
func (s *ProductService) UpdateProduct(ctx context.Context, id int64, name, category string, expirationDate time.Time, quantity int, price float64) (*etproduct.Product, error) {
	product, err := etproduct.NewProduct(id, name, category, expirationDate, quantity, price)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct 删除商品
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
