package alert

import (
	"log"

	"github.com/gin-gonic/gin"

	"pem/internal/app/domains/apimodel/response"
	"pem/internal/app/domains/entity/etalert"
	"pem/internal/app/pkg/ginx"
)

// Check 手动触发一次完整检查（明日告警 + 7天告警）
// POST /api/v1/alerts/check
func (h *AlertHandler) Check(c *gin.Context) {
	ctx := c.Request.Context()
	items := make([]*response.AlertResponse, 0, 2)

	for _, alertType := range []etalert.Type{etalert.TypeSevenDay, etalert.TypeTomorrow} {
		alert, err := h.alertEngine.RunScanNow(ctx, alertType)
		if err != nil {
			log.Printf("[ERROR] manual %s check failed: %v", alertType, err)
			ginx.InternalError(c, err.Error())
			return
		}
		if alert == nil {
			continue
		}
		items = append(items, response.FromAlertEntity(alert))
	}

	ginx.Success(c, &response.AlertCheckResponse{
		Alerts:      items,
		TotalAlerts: len(items),
	})
}
