package models

import (
	"time"

	"gorm.io/gorm"
)

// Cart is a user's open shopping cart. One active cart per user.
type Cart struct {
	gorm.Model
	UserID uint       `gorm:"not null;uniqueIndex" json:"user_id"`
	Items  []CartItem `json:"items"`
}

// CartItem is one product line in a cart. A product appears at most once per
// cart; adding it again bumps the quantity instead.
//
// No soft deletes here: the (cart_id, product_id) unique index must free up
// the moment a line is removed or checkout clears the cart, so the same
// product can be re-added straight away.
type CartItem struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	CartID    uint    `gorm:"not null;index;uniqueIndex:idx_cart_product" json:"cart_id"`
	ProductID uint    `gorm:"not null;uniqueIndex:idx_cart_product"       json:"product_id"`
	Quantity  int     `gorm:"not null;default:1"                          json:"quantity"`
	Product   Product `json:"product"`
}

// LineTotal is the current catalogue price times quantity. Cart totals always
// reflect live prices; prices are only frozen when an order is placed.
func (ci *CartItem) LineTotal() float64 {
	return ci.Product.Price * float64(ci.Quantity)
}
