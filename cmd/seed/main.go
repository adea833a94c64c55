// Seeds the product catalog. Safe to re-run: products are upserted by name,
// so price corrections flow through without touching existing orders (order
// lines keep their snapshotted prices).
package main

import (
	"log"

	"gorm.io/gorm/clause"

	"github.com/Atomstars/Cafe-pos/config"
	"github.com/Atomstars/Cafe-pos/internal/database"
	"github.com/Atomstars/Cafe-pos/internal/database/models"
)

func main() {
	cfg := config.LoadConfig()

	db, err := database.NewConnection(cfg.DB.DSN)
	if err != nil {
		log.Fatalf("Failed to connect to db: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	products := []models.Product{
		{Name: "Veg Burger", Category: "Burger", Price: 9900, CostPrice: 4500, StockCount: 9999},
		{Name: "Chicken Burger", Category: "Burger", Price: 14900, CostPrice: 6500, StockCount: 9999},

		{Name: "Veg Sandwich", Category: "Sandwich", Price: 8900, CostPrice: 4000, StockCount: 9999},
		{Name: "Grilled Cheese Sandwich", Category: "Sandwich", Price: 10900, CostPrice: 5000, StockCount: 9999},

		{Name: "White Sauce Pasta", Category: "Pasta", Price: 15900, CostPrice: 7000, StockCount: 9999},
		{Name: "Red Sauce Pasta", Category: "Pasta", Price: 14900, CostPrice: 6500, StockCount: 9999},

		{Name: "Margherita Pizza", Category: "Pizza", Price: 19900, CostPrice: 9000, StockCount: 9999},
		{Name: "Veg Loaded Pizza", Category: "Pizza", Price: 23900, CostPrice: 11000, StockCount: 9999},

		{Name: "Espresso", Category: "Coffee", Price: 8900, CostPrice: 2500, StockCount: 9999},
		{Name: "Cappuccino", Category: "Coffee", Price: 12900, CostPrice: 3500, StockCount: 9999},
		{Name: "Cold Coffee", Category: "Coffee", Price: 14900, CostPrice: 4500, StockCount: 9999},

		{Name: "Masala Tea", Category: "Tea", Price: 4900, CostPrice: 1500, StockCount: 9999},
		{Name: "Green Tea", Category: "Tea", Price: 6900, CostPrice: 2000, StockCount: 9999},
	}

	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"category", "price", "cost_price", "stock_count"}),
	}).Create(&products).Error
	if err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}

	log.Printf("✅ Seed completed: %d products", len(products))
}
