package request

import "time"

const dateLayout = "2006-01-02"

// ParseExpirationDate 解析请求中的过期日期（YYYY-MM-DD，按 UTC 日历日）
func ParseExpirationDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}
