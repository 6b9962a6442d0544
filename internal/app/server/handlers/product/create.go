package product

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"pem/internal/app/domains/apimodel/request"
	"pem/internal/app/domains/apimodel/response"
	"pem/internal/app/domains/entity/etproduct"
	"pem/internal/app/pkg/ginx"
)

// Create 创建商品接口
// POST /api/v1/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	expirationDate, err := request.ParseExpirationDate(req.ExpirationDate)
	if err != nil {
		ginx.BadRequest(c, "invalid expiration_date")
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req.Name, req.Category, expirationDate, req.Quantity, req.Price)
	if err != nil {
		if isValidationError(err) {
			ginx.BadRequest(c, err.Error())
			return
		}
		log.Printf("[ERROR] create product failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Created(c, response.FromProductEntity(product))
}

// isValidationError 实体校验错误归类为 400
func isValidationError(err error) bool {
	return errors.Is(err, etproduct.ErrInvalidName) ||
		errors.Is(err, etproduct.ErrInvalidCategory) ||
		errors.Is(err, etproduct.ErrInvalidExpiration) ||
		errors.Is(err, etproduct.ErrInvalidQuantity) ||
		errors.Is(err, etproduct.ErrInvalidPrice)
}
