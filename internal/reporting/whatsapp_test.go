package reporting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Atomstars/Cafe-pos/internal/database/models"
)

func sampleReport() DailyReport {
	return DailyReport{
		Date:         "2026-09-01",
		TotalOrders:  2,
		TotalRevenue: 3000,
		PaymentSplit: map[models.PaymentType]int64{
			models.PaymentCash: 1000,
			models.PaymentUPI:  2000,
		},
		PeakHour: "13:00 - 14:00",
		TopItems: []ItemSales{
			{ProductID: 1, Name: "Cappuccino", Quantity: 3, Revenue: 2000},
		},
	}
}

func TestFormatDailyReportMessage(t *testing.T) {
	msg := FormatDailyReportMessage(sampleReport(), "")

	assert.Contains(t, msg, "Cafe Daily Report (2026-09-01)")
	assert.Contains(t, msg, "Orders: 2")
	assert.Contains(t, msg, "Revenue: ₹30.00")
	assert.Contains(t, msg, "Peak Hour: 13:00 - 14:00")
	assert.Contains(t, msg, "Cash: ₹10.00")
	assert.Contains(t, msg, "UPI: ₹20.00")
	// CARD missing from the split renders as zero, not as a gap.
	assert.Contains(t, msg, "Card: ₹0.00")
	assert.Contains(t, msg, "1. Cappuccino — 3 sold | ₹20.00")
	assert.NotContains(t, msg, "AI Insights")
}

func TestFormatDailyReportMessageNoSales(t *testing.T) {
	report := sampleReport()
	report.TopItems = nil

	msg := FormatDailyReportMessage(report, "")
	assert.Contains(t, msg, "No sales today")
}

func TestFormatDailyReportMessageWithAISummary(t *testing.T) {
	msg := FormatDailyReportMessage(sampleReport(), "Strong afternoon. Push combos tomorrow.")

	assert.Contains(t, msg, "🤖 AI Insights:")
	assert.True(t, strings.HasSuffix(msg, "Strong afternoon. Push combos tomorrow."))
}
