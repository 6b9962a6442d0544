package alert

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"pem/internal/app/domains/apimodel/response"
	"pem/internal/app/domains/services/svalert"
	"pem/internal/app/pkg/ginx"
)

// History 查询最近的告警记录（新到旧）
// GET /api/v1/alerts/history?limit=10
func (h *AlertHandler) History(c *gin.Context) {
	limit := svalert.DefaultRecentLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			ginx.BadRequest(c, "invalid limit")
			return
		}
		limit = parsed
	}

	alerts := h.alertEngine.Recent(limit)
	ginx.Success(c, response.FromAlertEntities(alerts))
}
