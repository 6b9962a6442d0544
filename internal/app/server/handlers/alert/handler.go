package alert

import (
	"pem/internal/app/domains/services/svalert"
)

// AlertHandler 告警相关接口处理器
type AlertHandler struct {
	alertEngine *svalert.Engine
}

// NewAlertHandler 创建告警处理器
func NewAlertHandler(alertEngine *svalert.Engine) *AlertHandler {
	return &AlertHandler{alertEngine: alertEngine}
}
