package product

import (
	"log"

	"github.com/gin-gonic/gin"

	"pem/internal/app/domains/apimodel/response"
	"pem/internal/app/pkg/ginx"
)

// List 查询全部商品接口，按过期日期升序
// GET /api/v1/products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		log.Printf("[ERROR] list products failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, response.FromProductEntities(products))
}
