// Package handler exposes the café POS HTTP API: catalog, order capture,
// today's dashboard, the daily report and its AI summary.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/Atomstars/Cafe-pos/internal/ai"
	"github.com/Atomstars/Cafe-pos/internal/database/models"
	"github.com/Atomstars/Cafe-pos/internal/pricing"
	"github.com/Atomstars/Cafe-pos/internal/reporting"
)

const (
	ProductCatalogCacheKey = "pos:product-catalog"
	CacheTTLShort          = 5 * time.Minute
	CacheTTLMedium         = 30 * time.Minute
)

// Summarizer produces the AI commentary for a daily report.
type Summarizer interface {
	SummarizeDailyReport(ctx context.Context, report reporting.DailyReport) (string, error)
}

type POSHandler struct {
	db         *gorm.DB
	cache      *redis.Client
	summarizer Summarizer
}

func NewPOSHandler(db *gorm.DB, cache *redis.Client, summarizer Summarizer) *POSHandler {
	return &POSHandler{
		db:         db,
		cache:      cache,
		summarizer: summarizer,
	}
}

// Request structs

type OrderLineRequest struct {
	ProductID int64  `json:"productId" binding:"required"`
	Quantity  int32  `json:"quantity" binding:"required,min=1"`
	Notes     string `json:"notes,omitempty"`
}

type CreateOrderRequest struct {
	PaymentType string             `json:"paymentType" binding:"omitempty,oneof=CASH UPI CARD"`
	OrderType   string             `json:"orderType" binding:"omitempty,oneof=DINE_IN TAKEAWAY"`
	Items       []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
}

type DailySummaryRequest struct {
	Report *reporting.DailyReport `json:"report" binding:"required"`
}

func errorResponse(message string) gin.H {
	return gin.H{"error": message}
}

// --- Catalog ---

// ListProducts returns the catalog sorted by category then name. The
// serialized list is cached in Redis so POS terminals polling the menu do
// not hit Postgres on every load.
func (h *POSHandler) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()

	if cached, err := h.cache.Get(ctx, ProductCatalogCacheKey).Bytes(); err == nil {
		c.Data(http.StatusOK, "application/json", cached)
		return
	}

	var products []models.Product
	if err := h.db.WithContext(ctx).
		Order("category asc, name asc").
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, products)

	if raw, err := json.Marshal(products); err == nil {
		_ = h.cache.Set(ctx, ProductCatalogCacheKey, raw, CacheTTLMedium).Err()
	}
}

// --- Orders ---

// CreateOrder prices the requested lines against the live catalog and
// persists the order atomically. An unknown product aborts the whole
// request; no partial order is ever written.
func (h *POSHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "issues": err.Error()})
		return
	}

	paymentType := models.PaymentType(req.PaymentType)
	if paymentType == "" {
		paymentType = models.PaymentCash
	}
	orderType := models.OrderType(req.OrderType)
	if orderType == "" {
		orderType = models.OrderTakeaway
	}

	ids := make([]int64, 0, len(req.Items))
	lines := make([]pricing.LineRequest, 0, len(req.Items))
	for _, item := range req.Items {
		ids = append(ids, item.ProductID)
		lines = append(lines, pricing.LineRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Notes:     item.Notes,
		})
	}

	ctx := c.Request.Context()

	var catalog []models.Product
	if err := h.db.WithContext(ctx).Where("id IN ?", ids).Find(&catalog).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
		return
	}

	priced, err := pricing.PriceOrder(lines, catalog)
	if err != nil {
		var notFound *pricing.ProductNotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "productId": notFound.ProductID})
			return
		}
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	order := models.Order{
		PaymentType: paymentType,
		OrderType:   orderType,
		Status:      models.StatusPlaced,
		Subtotal:    priced.Subtotal,
		TaxAmount:   priced.TaxAmount,
		Discount:    priced.Discount,
		TotalAmount: priced.TotalAmount,
	}
	for _, line := range priced.Lines {
		item := models.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		}
		if line.Notes != "" {
			notes := line.Notes
			item.Notes = &notes
		}
		order.Items = append(order.Items, item)
	}

	if err := h.db.WithContext(ctx).Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
		return
	}

	var created models.Order
	if err := h.db.WithContext(ctx).
		Preload("Items.Product").
		First(&created, order.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, created)
}

// TodayOrders lists today's orders newest first, items included.
func (h *POSHandler) TodayOrders(c *gin.Context) {
	orders, err := h.ordersForToday(c.Request.Context(), false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, orders)
}

// --- Dashboard & reports ---

func (h *POSHandler) DashboardToday(c *gin.Context) {
	orders, err := h.ordersForToday(c.Request.Context(), false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, reporting.BuildDashboard(orders, reporting.DashboardTopN))
}

// DailyReport aggregates today's PLACED orders into the owner report.
func (h *POSHandler) DailyReport(c *gin.Context) {
	report, err := h.buildDailyReport(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, report)
}

// DailyReportMessage renders the WhatsApp message for today's report.
// With ?ai=1 the AI summary is requested first; an upstream failure only
// drops the AI section, while a missing API key is still a server error.
func (h *POSHandler) DailyReportMessage(c *gin.Context) {
	ctx := c.Request.Context()

	report, err := h.buildDailyReport(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
		return
	}

	aiSummary := ""
	if c.Query("ai") == "1" {
		summary, err := h.summarizer.SummarizeDailyReport(ctx, report)
		switch {
		case err == nil:
			aiSummary = summary
		case errors.Is(err, ai.ErrMissingAPIKey):
			c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
			return
		default:
			slog.Warn("ai summary unavailable, sending report without insights", "error", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": reporting.FormatDailyReportMessage(report, aiSummary)})
}

// DailySummary forwards a daily report to the AI service and returns its
// free-text summary. The payload is the explicit report schema, not an
// arbitrary blob.
func (h *POSHandler) DailySummary(c *gin.Context) {
	var req DailySummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request"))
		return
	}
	if req.Report.Date == "" || req.Report.TotalOrders < 0 || req.Report.TotalRevenue < 0 {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request"))
		return
	}

	summary, err := h.summarizer.SummarizeDailyReport(c.Request.Context(), *req.Report)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// --- Health ---

func (h *POSHandler) Health(c *gin.Context) {
	var count int64
	if err := h.db.WithContext(c.Request.Context()).
		Model(&models.Product{}).
		Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "productCount": count})
}

// --- Helpers ---

func (h *POSHandler) buildDailyReport(ctx context.Context) (reporting.DailyReport, error) {
	orders, err := h.ordersForToday(ctx, true)
	if err != nil {
		return reporting.DailyReport{}, err
	}
	date := time.Now().Format("2006-01-02")
	return reporting.BuildDailyReport(date, orders, reporting.ReportTopN), nil
}

func (h *POSHandler) ordersForToday(ctx context.Context, placedOnly bool) ([]models.Order, error) {
	start, end := dayWindow(time.Now())

	query := h.db.WithContext(ctx).
		Where("created_at BETWEEN ? AND ?", start, end).
		Order("created_at desc").
		Preload("Items.Product")
	if placedOnly {
		query = query.Where("status = ?", models.StatusPlaced)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// dayWindow is the local calendar day [midnight, 23:59:59.999].
func dayWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.Add(24*time.Hour - time.Millisecond)
}
