package models

import "time"

// Product is the catalog reference data. Prices are integers in paise;
// order lines snapshot the price at order time, so edits here never
// rewrite history.
type Product struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string `gorm:"type:varchar(128);uniqueIndex;not null" json:"name"`
	Category   string `gorm:"type:varchar(64);not null;index" json:"category"`
	Price      int64  `gorm:"not null" json:"price"`
	CostPrice  int64  `gorm:"not null" json:"costPrice"`
	StockCount int32  `gorm:"not null;default:0" json:"stockCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
