// Package reporting derives daily sales aggregates from an order window and
// renders them for the dashboard, the daily report and the WhatsApp message.
// Everything here is a pure computation over orders the caller has already
// filtered; nothing is persisted.
package reporting

import (
	"fmt"
	"sort"

	"github.com/Atomstars/Cafe-pos/internal/database/models"
)

const (
	DashboardTopN = 7
	ReportTopN    = 5
)

type ItemSales struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	Revenue   int64  `json:"revenue"`
}

type HourBucket struct {
	Hour   int   `json:"hour"`
	Orders int64 `json:"orders"`
}

// Aggregation is a single-pass rollup of an order window. The per-item slice
// keeps first-seen order so top-N ties resolve to the product that sold first.
type Aggregation struct {
	TotalOrders  int
	TotalRevenue int64
	PaymentSplit map[models.PaymentType]int64

	items       []ItemSales
	hourOrders  [24]int64
	hourRevenue [24]int64
}

func Aggregate(orders []models.Order) Aggregation {
	agg := Aggregation{
		PaymentSplit: make(map[models.PaymentType]int64),
	}

	index := make(map[int64]int)

	for _, order := range orders {
		agg.TotalOrders++
		agg.TotalRevenue += order.TotalAmount
		agg.PaymentSplit[order.PaymentType] += order.TotalAmount

		hour := order.CreatedAt.Hour()
		agg.hourOrders[hour]++
		agg.hourRevenue[hour] += order.TotalAmount

		for _, item := range order.Items {
			i, ok := index[item.ProductID]
			if !ok {
				i = len(agg.items)
				index[item.ProductID] = i
				name := ""
				if item.Product != nil {
					name = item.Product.Name
				}
				agg.items = append(agg.items, ItemSales{ProductID: item.ProductID, Name: name})
			}
			agg.items[i].Quantity += int64(item.Quantity)
			agg.items[i].Revenue += item.UnitPrice * int64(item.Quantity)
		}
	}

	return agg
}

func (a Aggregation) AvgOrderValue() int64 {
	if a.TotalOrders == 0 {
		return 0
	}
	// Round to the nearest paise.
	return (a.TotalRevenue + int64(a.TotalOrders)/2) / int64(a.TotalOrders)
}

// TopByRevenue returns at most n items sorted by revenue descending.
// The stable sort keeps first-seen order on ties.
func (a Aggregation) TopByRevenue(n int) []ItemSales {
	return a.top(n, func(x, y ItemSales) bool { return x.Revenue > y.Revenue })
}

// TopByQuantity returns at most n items sorted by quantity sold descending.
func (a Aggregation) TopByQuantity(n int) []ItemSales {
	return a.top(n, func(x, y ItemSales) bool { return x.Quantity > y.Quantity })
}

// ItemsSold returns the full per-item rollup sorted by quantity descending.
func (a Aggregation) ItemsSold() []ItemSales {
	return a.top(len(a.items), func(x, y ItemSales) bool { return x.Quantity > y.Quantity })
}

func (a Aggregation) top(n int, less func(x, y ItemSales) bool) []ItemSales {
	sorted := make([]ItemSales, len(a.items))
	copy(sorted, a.items)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// HourBuckets returns all 24 hour-of-day buckets with order counts,
// including the zero ones.
func (a Aggregation) HourBuckets() []HourBucket {
	buckets := make([]HourBucket, 24)
	for hour := range buckets {
		buckets[hour] = HourBucket{Hour: hour, Orders: a.hourOrders[hour]}
	}
	return buckets
}

// PeakHourLabel is the hour with the highest revenue, formatted like
// "18:00 - 19:00". Ties resolve to the earliest hour; a day with no revenue
// reports "N/A" rather than implying a peak at midnight.
func (a Aggregation) PeakHourLabel() string {
	peak, best := -1, int64(0)
	for hour, revenue := range a.hourRevenue {
		if revenue > best {
			peak, best = hour, revenue
		}
	}
	if peak < 0 {
		return "N/A"
	}
	return fmt.Sprintf("%02d:00 - %02d:00", peak, peak+1)
}

type DashboardSummary struct {
	TotalOrders   int                          `json:"totalOrders"`
	TotalRevenue  int64                        `json:"totalRevenue"`
	AvgOrderValue int64                        `json:"avgOrderValue"`
	PaymentSplit  map[models.PaymentType]int64 `json:"paymentSplit"`
	TopItems      []ItemSales                  `json:"topItems"`
	HourBuckets   []HourBucket                 `json:"hourBuckets"`
}

// DailyReport is the shape consumed by the WhatsApp formatter and the AI
// summarizer. Absent payment types mean zero.
type DailyReport struct {
	Date         string                       `json:"date"`
	TotalOrders  int                          `json:"totalOrders"`
	TotalRevenue int64                        `json:"totalRevenue"`
	PaymentSplit map[models.PaymentType]int64 `json:"paymentSplit"`
	PeakHour     string                       `json:"peakHour"`
	TopItems     []ItemSales                  `json:"topItems"`
	ItemsSold    []ItemSales                  `json:"itemsSold"`
}

// BuildDashboard ranks top items by revenue and buckets orders per hour.
func BuildDashboard(orders []models.Order, topN int) DashboardSummary {
	agg := Aggregate(orders)
	return DashboardSummary{
		TotalOrders:   agg.TotalOrders,
		TotalRevenue:  agg.TotalRevenue,
		AvgOrderValue: agg.AvgOrderValue(),
		PaymentSplit:  agg.PaymentSplit,
		TopItems:      agg.TopByRevenue(topN),
		HourBuckets:   agg.HourBuckets(),
	}
}

// BuildDailyReport ranks top items by quantity sold and picks the peak hour
// by revenue, matching the owner-facing daily report.
func BuildDailyReport(date string, orders []models.Order, topN int) DailyReport {
	agg := Aggregate(orders)
	return DailyReport{
		Date:         date,
		TotalOrders:  agg.TotalOrders,
		TotalRevenue: agg.TotalRevenue,
		PaymentSplit: agg.PaymentSplit,
		PeakHour:     agg.PeakHourLabel(),
		TopItems:     agg.TopByQuantity(topN),
		ItemsSold:    agg.ItemsSold(),
	}
}
