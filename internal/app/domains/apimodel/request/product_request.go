package request

// CreateProductRequest 创建商品请求
type CreateProductRequest struct {
	Name           string  `json:"name" binding:"required"`
	Category       string  `json:"category" binding:"required"`
	ExpirationDate string  `json:"expiration_date" binding:"required,datetime=2006-01-02"`
	Quantity       int     `json:"quantity" binding:"gte=0"`
	Price          float64 `json:"price" binding:"gte=0"`
}

// UpdateProductRequest 更新商品请求（全字段覆盖）
type UpdateProductRequest struct {
	Name           string  `json:"name" binding:"required"`
	Category       string  `json:"category" binding:"required"`
	ExpirationDate string  `json:"expiration_date" binding:"required,datetime=2006-01-02"`
	Quantity       int     `json:"quantity" binding:"gte=0"`
	Price          float64 `json:"price" binding:"gte=0"`
}
