package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Atomstars/Cafe-pos/internal/database/models"
)

func at(hour int) time.Time {
	return time.Date(2026, 9, 1, hour, 15, 0, 0, time.Local)
}

func product(id int64, name string) *models.Product {
	return &models.Product{ID: id, Name: name}
}

func TestAggregateEmpty(t *testing.T) {
	agg := Aggregate(nil)

	assert.Equal(t, 0, agg.TotalOrders)
	assert.Equal(t, int64(0), agg.TotalRevenue)
	assert.Equal(t, int64(0), agg.AvgOrderValue())
	assert.Empty(t, agg.PaymentSplit)
	assert.Empty(t, agg.TopByRevenue(5))
	assert.Equal(t, "N/A", agg.PeakHourLabel())

	buckets := agg.HourBuckets()
	require.Len(t, buckets, 24)
	for hour, b := range buckets {
		assert.Equal(t, hour, b.Hour)
		assert.Equal(t, int64(0), b.Orders)
	}
}

func TestAggregatePaymentSplit(t *testing.T) {
	orders := []models.Order{
		{PaymentType: models.PaymentCash, TotalAmount: 1000, CreatedAt: at(9)},
		{PaymentType: models.PaymentUPI, TotalAmount: 2000, CreatedAt: at(13)},
	}
	agg := Aggregate(orders)

	assert.Equal(t, 2, agg.TotalOrders)
	assert.Equal(t, int64(3000), agg.TotalRevenue)
	assert.Equal(t, int64(1500), agg.AvgOrderValue())
	assert.Equal(t, map[models.PaymentType]int64{
		models.PaymentCash: 1000,
		models.PaymentUPI:  2000,
	}, agg.PaymentSplit)
	// CARD never occurred, so it must be absent rather than zero.
	_, ok := agg.PaymentSplit[models.PaymentCard]
	assert.False(t, ok)
}

func TestAggregateTotalsOrderInsensitive(t *testing.T) {
	orders := []models.Order{
		{PaymentType: models.PaymentCash, TotalAmount: 500, CreatedAt: at(8)},
		{PaymentType: models.PaymentCard, TotalAmount: 700, CreatedAt: at(12)},
		{PaymentType: models.PaymentCash, TotalAmount: 300, CreatedAt: at(19)},
	}
	reversed := []models.Order{orders[2], orders[1], orders[0]}

	a, b := Aggregate(orders), Aggregate(reversed)
	assert.Equal(t, a.TotalRevenue, b.TotalRevenue)
	assert.Equal(t, a.TotalOrders, b.TotalOrders)
	assert.Equal(t, a.PaymentSplit, b.PaymentSplit)
}

func TestItemRollupAndRanking(t *testing.T) {
	orders := []models.Order{
		{
			PaymentType: models.PaymentCash, TotalAmount: 0, CreatedAt: at(10),
			Items: []models.OrderItem{
				{ProductID: 1, Quantity: 1, UnitPrice: 10000, Product: product(1, "Margherita Pizza")},
				{ProductID: 2, Quantity: 4, UnitPrice: 2000, Product: product(2, "Masala Tea")},
			},
		},
		{
			PaymentType: models.PaymentCash, TotalAmount: 0, CreatedAt: at(11),
			Items: []models.OrderItem{
				{ProductID: 2, Quantity: 2, UnitPrice: 2000, Product: product(2, "Masala Tea")},
			},
		},
	}
	agg := Aggregate(orders)

	byRevenue := agg.TopByRevenue(10)
	require.Len(t, byRevenue, 2)
	assert.Equal(t, "Masala Tea", byRevenue[0].Name) // 6 * 2000 = 12000
	assert.Equal(t, int64(12000), byRevenue[0].Revenue)
	assert.Equal(t, int64(10000), byRevenue[1].Revenue)

	byQuantity := agg.TopByQuantity(1)
	require.Len(t, byQuantity, 1)
	assert.Equal(t, int64(6), byQuantity[0].Quantity)
}

func TestRankingTieIsFirstSeen(t *testing.T) {
	orders := []models.Order{
		{
			CreatedAt: at(10),
			Items: []models.OrderItem{
				{ProductID: 7, Quantity: 2, UnitPrice: 500, Product: product(7, "Green Tea")},
				{ProductID: 8, Quantity: 2, UnitPrice: 500, Product: product(8, "Espresso")},
			},
		},
	}
	agg := Aggregate(orders)

	top := agg.TopByRevenue(1)
	require.Len(t, top, 1)
	assert.Equal(t, "Green Tea", top[0].Name)
}

func TestPeakHour(t *testing.T) {
	orders := []models.Order{
		{TotalAmount: 1000, CreatedAt: at(9)},
		{TotalAmount: 5000, CreatedAt: at(18)},
		{TotalAmount: 2000, CreatedAt: at(18)},
		{TotalAmount: 3000, CreatedAt: at(12)},
	}
	assert.Equal(t, "18:00 - 19:00", Aggregate(orders).PeakHourLabel())
}

func TestPeakHourTieEarliestWins(t *testing.T) {
	orders := []models.Order{
		{TotalAmount: 3000, CreatedAt: at(20)},
		{TotalAmount: 3000, CreatedAt: at(8)},
	}
	assert.Equal(t, "08:00 - 09:00", Aggregate(orders).PeakHourLabel())
}

func TestBuildDashboard(t *testing.T) {
	orders := []models.Order{
		{
			PaymentType: models.PaymentUPI, TotalAmount: 10500, CreatedAt: at(14),
			Items: []models.OrderItem{
				{ProductID: 1, Quantity: 1, UnitPrice: 10000, Product: product(1, "Margherita Pizza")},
			},
		},
	}
	dash := BuildDashboard(orders, DashboardTopN)

	assert.Equal(t, 1, dash.TotalOrders)
	assert.Equal(t, int64(10500), dash.TotalRevenue)
	assert.Equal(t, int64(10500), dash.AvgOrderValue)
	require.Len(t, dash.HourBuckets, 24)
	assert.Equal(t, int64(1), dash.HourBuckets[14].Orders)
	require.Len(t, dash.TopItems, 1)
}

func TestBuildDailyReport(t *testing.T) {
	orders := []models.Order{
		{
			PaymentType: models.PaymentCash, TotalAmount: 4200, CreatedAt: at(17),
			Items: []models.OrderItem{
				{ProductID: 1, Quantity: 2, UnitPrice: 2000, Product: product(1, "Cold Coffee")},
			},
		},
	}
	report := BuildDailyReport("2026-09-01", orders, ReportTopN)

	assert.Equal(t, "2026-09-01", report.Date)
	assert.Equal(t, "17:00 - 18:00", report.PeakHour)
	require.Len(t, report.TopItems, 1)
	assert.Equal(t, report.ItemsSold, report.TopItems)
	assert.Equal(t, int64(4000), report.TopItems[0].Revenue)
}
