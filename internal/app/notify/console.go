package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"pem/internal/app/domains/entity/etalert"
)

// ConsoleNotifier 控制台通知通道
// 把告警渲染成人类可读的文本块，直接写到进程输出
type ConsoleNotifier struct {
	out io.Writer
}

// NewConsoleNotifier 创建控制台通道
// out 为 nil 时写到标准输出
func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleNotifier{out: out}
}

// Name 实现 Notifier 接口
func (n *ConsoleNotifier) Name() string {
	return "console"
}

// Notify 渲染并输出告警
func (n *ConsoleNotifier) Notify(ctx context.Context, alert *etalert.Alert) error {
	var b strings.Builder
	line := strings.Repeat("=", 80)
	thin := strings.Repeat("-", 80)

	level := "WARNING"
	scope := "expiring within 7 days"
	if alert.Type == etalert.TypeTomorrow {
		level = "URGENT"
		scope = "expiring tomorrow"
	}

	fmt.Fprintf(&b, "\n%s\n", line)
	fmt.Fprintf(&b, "%s EXPIRATION ALERT [%s] alert_id=%d\n", level, alert.Type, alert.ID)
	fmt.Fprintf(&b, "Found %d product(s) %s, total value at risk: $%.2f\n", len(alert.Products), scope, alert.TotalValueAtRisk)
	fmt.Fprintf(&b, "%s\n", thin)

	fmt.Fprintf(&b, "AFFECTED PRODUCTS:\n")
	for i, p := range alert.Products {
		fmt.Fprintf(&b, "%2d. [%s] %s (%s)\n", i+1, p.Urgency, p.Name, p.Category)
		fmt.Fprintf(&b, "    expires %s (%d day(s) left), quantity %d, value $%.2f\n",
			p.ExpirationDate.Format("2006-01-02"), p.DaysLeft, p.Quantity, p.Value)
	}

	if len(alert.Recipes) > 0 {
		fmt.Fprintf(&b, "%s\n", thin)
		fmt.Fprintf(&b, "RECIPE SUGGESTIONS:\n")
		for i, r := range alert.Recipes {
			fmt.Fprintf(&b, "%2d. %s (%s, %s) - for %s\n", i+1, r.Name, r.Difficulty, r.CookTime, r.ForProduct)
			fmt.Fprintf(&b, "    %s\n", r.Description)
			fmt.Fprintf(&b, "    ingredients: %s\n", strings.Join(r.Ingredients, ", "))
		}
	}

	fmt.Fprintf(&b, "%s\n", thin)
	fmt.Fprintf(&b, "RECOMMENDED ACTIONS:\n")
	if alert.Type == etalert.TypeTomorrow {
		fmt.Fprintf(&b, "  - Use products in today's meals\n")
		fmt.Fprintf(&b, "  - Prepare recipes using these ingredients\n")
		fmt.Fprintf(&b, "  - Consider donating if quantities are large\n")
		fmt.Fprintf(&b, "  - Remove expired items from inventory\n")
	} else {
		fmt.Fprintf(&b, "  - Schedule meals using these products\n")
		fmt.Fprintf(&b, "  - Check if products can be frozen\n")
		fmt.Fprintf(&b, "  - Consider bulk cooking and meal prep\n")
		fmt.Fprintf(&b, "  - Review ordering patterns to reduce waste\n")
	}

	fmt.Fprintf(&b, "%s\n", line)
	fmt.Fprintf(&b, "Alert generated at: %s\n\n", alert.Timestamp.Format("2006-01-02 15:04:05 MST"))

	_, err := io.WriteString(n.out, b.String())
	return err
}
