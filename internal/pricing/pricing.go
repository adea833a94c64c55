// Package pricing computes priced orders from requested lines and the
// product catalog. It is pure: no I/O, integer paise arithmetic only,
// persistence is the caller's job.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Atomstars/Cafe-pos/internal/database/models"
)

// taxRate is the flat 5% GST applied to every order.
var taxRate = decimal.RequireFromString("0.05")

type LineRequest struct {
	ProductID int64
	Quantity  int32
	Notes     string
}

type PricedLine struct {
	ProductID int64
	Quantity  int32
	UnitPrice int64
	Notes     string
}

type PricedOrder struct {
	Subtotal    int64
	TaxAmount   int64
	Discount    int64
	TotalAmount int64
	Lines       []PricedLine
}

// ProductNotFoundError names the first requested product missing from the
// catalog. Lines are never silently dropped.
type ProductNotFoundError struct {
	ProductID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("invalid productId: %d", e.ProductID)
}

type InvalidQuantityError struct {
	ProductID int64
	Quantity  int32
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity %d for productId %d", e.Quantity, e.ProductID)
}

// PriceOrder resolves each requested line against the catalog and computes
// subtotal, tax and total. Unit prices are snapshotted into the result so
// later catalog edits cannot change a priced order.
func PriceOrder(lines []LineRequest, catalog []models.Product) (*PricedOrder, error) {
	byID := make(map[int64]models.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	var subtotal int64
	priced := make([]PricedLine, 0, len(lines))

	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, &InvalidQuantityError{ProductID: line.ProductID, Quantity: line.Quantity}
		}

		product, ok := byID[line.ProductID]
		if !ok {
			return nil, &ProductNotFoundError{ProductID: line.ProductID}
		}

		subtotal += product.Price * int64(line.Quantity)

		priced = append(priced, PricedLine{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
			Notes:     line.Notes,
		})
	}

	taxAmount := Tax(subtotal)
	discount := int64(0)

	return &PricedOrder{
		Subtotal:    subtotal,
		TaxAmount:   taxAmount,
		Discount:    discount,
		TotalAmount: subtotal + taxAmount - discount,
		Lines:       priced,
	}, nil
}

// Tax returns round(subtotal * 5%) in paise. decimal.Round rounds half away
// from zero, which is round-half-up for the non-negative subtotals we deal
// with: 150 -> 8, 199 -> 10.
func Tax(subtotal int64) int64 {
	return decimal.NewFromInt(subtotal).Mul(taxRate).Round(0).IntPart()
}
