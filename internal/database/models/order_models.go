package models

import "time"

type PaymentType string

const (
	PaymentCash PaymentType = "CASH"
	PaymentUPI  PaymentType = "UPI"
	PaymentCard PaymentType = "CARD"
)

type OrderType string

const (
	OrderDineIn   OrderType = "DINE_IN"
	OrderTakeaway OrderType = "TAKEAWAY"
)

type OrderStatus string

const (
	StatusPlaced OrderStatus = "PLACED"
)

// Order is created once at checkout and never updated. All amounts are
// integers in paise and satisfy total = subtotal + tax - discount.
type Order struct {
	ID          int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	PaymentType PaymentType `gorm:"type:varchar(16);not null" json:"paymentType"`
	OrderType   OrderType   `gorm:"type:varchar(16);not null" json:"orderType"`
	Status      OrderStatus `gorm:"type:varchar(16);not null;default:'PLACED';index" json:"status"`

	Subtotal    int64 `gorm:"not null" json:"subtotal"`
	TaxAmount   int64 `gorm:"not null" json:"taxAmount"`
	Discount    int64 `gorm:"not null" json:"discount"`
	TotalAmount int64 `gorm:"not null" json:"totalAmount"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

type OrderItem struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64 `gorm:"index;not null" json:"orderId"`
	ProductID int64 `gorm:"not null" json:"productId"`
	Quantity  int32 `gorm:"not null" json:"quantity"`
	// UnitPrice is the catalog price captured at order time.
	UnitPrice int64   `gorm:"not null" json:"unitPrice"`
	Notes     *string `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
