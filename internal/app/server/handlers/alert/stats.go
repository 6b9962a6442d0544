package alert

import (
	"github.com/gin-gonic/gin"

	"pem/internal/app/domains/apimodel/response"
	"pem/internal/app/pkg/ginx"
)

// Stats 查询告警滚动统计（累计 / 近24小时 / 近7天）
// GET /api/v1/alerts/stats
func (h *AlertHandler) Stats(c *gin.Context) {
	ginx.Success(c, response.FromAlertStats(h.alertEngine.Stats()))
}
