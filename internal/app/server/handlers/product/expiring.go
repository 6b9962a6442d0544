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

// Expiring 查询 N 天内过期的商品接口
// GET /api/v1/products/expiring?days=7
func (h *ProductHandler) Expiring(c *gin.Context) {
	days := 7
	if daysStr := c.Query("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil {
			ginx.BadRequest(c, "invalid days")
			return
		}
		days = parsed
	}

	products, err := h.alertEngine.ExpiringWithin(c.Request.Context(), days)
	if err != nil {
		if errors.Is(err, errorx.ErrInvalidArgument) {
			ginx.BadRequest(c, "days cannot be negative")
			return
		}
		log.Printf("[ERROR] list expiring products failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, response.FromProductEntities(products))
}
