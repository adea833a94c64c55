package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/Atomstars/Cafe-pos/config"
	"github.com/Atomstars/Cafe-pos/internal/ai"
	"github.com/Atomstars/Cafe-pos/internal/database"
	"github.com/Atomstars/Cafe-pos/internal/middleware"
	"github.com/Atomstars/Cafe-pos/internal/pos/handler"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.LoadConfig()

	redisClient := config.NewRedisClient(cfg.Redis)
	defer redisClient.Close()

	db, err := database.NewConnection(cfg.DB.DSN)
	if err != nil {
		log.Fatalf("Failed to connect to db: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	summarizer := ai.New(cfg.Groq)
	posHandler := handler.NewPOSHandler(db, redisClient, summarizer)

	r := gin.Default()

	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit())

	r.GET("/health", posHandler.Health)

	api := r.Group("/api/v1")
	{
		api.GET("/products", posHandler.ListProducts)

		orders := api.Group("/orders")
		{
			orders.POST("", posHandler.CreateOrder)
			orders.GET("/today", posHandler.TodayOrders)
		}

		api.GET("/dashboard/today", posHandler.DashboardToday)

		reports := api.Group("/reports")
		{
			reports.GET("/daily", posHandler.DailyReport)
			reports.GET("/daily/message", posHandler.DailyReportMessage)
		}

		api.POST("/ai/daily-summary", posHandler.DailySummary)
	}

	log.Printf(" ☕ Cafe POS service listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to serve: %v", err)
	}
}
