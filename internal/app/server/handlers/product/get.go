package product

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"pem/internal/app/domains/apimodel/response"
	"pem/internal/app/pkg/errorx"
	"pem/internal/app/pkg/ginx"
)

// Get 获取商品详情接口
// GET /api/v1/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ginx.BadRequest(c, "invalid product id")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errorx.ErrProductNotFound) {
			ginx.NotFound(c, "product not found")
			return
		}
		log.Printf("[ERROR] get product failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, response.FromProductEntity(product))
}
