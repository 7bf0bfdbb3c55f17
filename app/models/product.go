package models

import "gorm.io/gorm"

// Product represents a product in the catalogue.
// Stock is only ever decremented at checkout, inside the order transaction.
type Product struct {
	gorm.Model
	Name        string  `gorm:"size:255;not null;index" json:"name"`
	Description string  `gorm:"type:text"              json:"description"`
	Price       float64 `gorm:"not null;default:0"     json:"price"`
	Stock       int     `gorm:"not null;default:0"     json:"stock"`
	SKU         string  `gorm:"size:100;uniqueIndex"   json:"sku"`
	Rating      int     `gorm:"not null;default:0"     json:"rating"`
	Reviews     int     `gorm:"not null;default:0"     json:"reviews"`
	ImagePath   string  `gorm:"size:512"               json:"image_path"`
}

// InStock reports whether qty units can currently be sold.
func (p *Product) InStock(qty int) bool {
	return p.Stock >= qty
}
