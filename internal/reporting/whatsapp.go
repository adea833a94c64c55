package reporting

import (
	"fmt"
	"strings"

	"github.com/Atomstars/Cafe-pos/internal/money"
)

// FormatDailyReportMessage renders a daily report as a WhatsApp-ready
// message. The AI section only appears when a summary was produced.
func FormatDailyReportMessage(report DailyReport, aiSummary string) string {
	var top strings.Builder
	for i, item := range report.TopItems {
		if i > 0 {
			top.WriteString("\n")
		}
		fmt.Fprintf(&top, "%d. %s — %d sold | %s", i+1, item.Name, item.Quantity, money.Format(item.Revenue))
	}

	topSection := top.String()
	if topSection == "" {
		topSection = "No sales today"
	}

	msg := fmt.Sprintf(`📊 Cafe Daily Report (%s)

✅ Orders: %d
💰 Revenue: %s
🕒 Peak Hour: %s

💳 Payments:
• Cash: %s
• UPI: %s
• Card: %s

🔥 Top Items:
%s`,
		report.Date,
		report.TotalOrders,
		money.Format(report.TotalRevenue),
		report.PeakHour,
		money.Format(report.PaymentSplit["CASH"]),
		money.Format(report.PaymentSplit["UPI"]),
		money.Format(report.PaymentSplit["CARD"]),
		topSection,
	)

	if aiSummary != "" {
		msg += "\n\n🤖 AI Insights:\n" + aiSummary
	}

	return msg
}
