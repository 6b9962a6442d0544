package product

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"pem/internal/app/domains/apimodel/request"
	"pem/internal/app/domains/apimodel/response"
	"pem/internal/app/pkg/errorx"
	"pem/internal/app/pkg/ginx"
)

// Update 更新商品接口（全字段覆盖）
// PUT /api/v1/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ginx.BadRequest(c, "invalid product id")
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	expirationDate, err := request.ParseExpirationDate(req.ExpirationDate)
	if err != nil {
		ginx.BadRequest(c, "invalid expiration_date")
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, req.Name, req.Category, expirationDate, req.Quantity, req.Price)
	if err != nil {
		if errors.Is(err, errorx.ErrProductNotFound) {
			ginx.NotFound(c, "product not found")
			return
		}
		if isValidationError(err) {
			ginx.BadRequest(c, err.Error())
			return
		}
		log.Printf("[ERROR] update product failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, response.FromProductEntity(product))
}
