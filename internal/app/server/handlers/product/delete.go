package product

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"pem/internal/app/pkg/errorx"
	"pem/internal/app/pkg/ginx"
)

// Delete 删除商品接口
// DELETE /api/v1/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ginx.BadRequest(c, "invalid product id")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, errorx.ErrProductNotFound) {
			ginx.NotFound(c, "product not found")
			return
		}
		log.Printf("[ERROR] delete product failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, gin.H{"message": "product deleted"})
}
