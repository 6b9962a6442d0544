package product

import (
	"pem/internal/app/domains/services/svalert"
	"pem/internal/app/domains/services/svproduct"
)

// ProductHandler 商品 HTTP 处理器
type ProductHandler struct {
	productService *svproduct.ProductService
	alertEngine    *svalert.Engine
}

// NewProductHandler 创建商品处理器实例
func NewProductHandler(productService *svproduct.ProductService, alertEngine *svalert.Engine) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		alertEngine:    alertEngine,
	}
}
