package models

import "gorm.io/gorm"

// Order statuses.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order is a placed order. Shipping details and amounts are snapshotted at
// placement time and never change afterwards.
type Order struct {
	gorm.Model
	UserID      uint        `gorm:"not null;index" json:"user_id"`
	Subtotal    float64     `gorm:"not null"       json:"subtotal"`
	ShippingFee float64     `gorm:"not null"       json:"shipping_fee"`
	Total       float64     `gorm:"not null"       json:"total"`
	Status      string      `gorm:"size:50;default:pending" json:"status"`
	Address     string      `gorm:"size:512;not null" json:"address"`
	City        string      `gorm:"size:100;not null" json:"city"`
	PostalCode  string      `gorm:"size:20;not null"  json:"postal_code"`
	Phone       string      `gorm:"size:20"           json:"phone"`
	Items       []OrderItem `json:"items"`
	Payment     Payment     `json:"payment"`
}

// OrderItem is one product line of an order, with the unit price frozen at
// the moment the order was placed.
type OrderItem struct {
	gorm.Model
	OrderID   uint    `gorm:"not null;index" json:"order_id"`
	ProductID uint    `gorm:"not null;index" json:"product_id"`
	Quantity  int     `gorm:"not null"       json:"quantity"`
	UnitPrice float64 `gorm:"not null"       json:"unit_price"`
	Product   Product `json:"product"`
}

// LineTotal is the frozen unit price times quantity.
func (oi *OrderItem) LineTotal() float64 {
	return oi.UnitPrice * float64(oi.Quantity)
}

// Payment records the payment intent for an order. Until a real gateway is
// integrated the row is a placeholder created with the order.
type Payment struct {
	gorm.Model
	OrderID       uint    `gorm:"not null;uniqueIndex" json:"order_id"`
	Method        string  `gorm:"size:50;not null"     json:"method"`
	Amount        float64 `gorm:"not null"             json:"amount"`
	TransactionID string  `gorm:"size:255;default:N/A" json:"transaction_id"`
	Status        string  `gorm:"size:50;default:pending" json:"status"`
}
