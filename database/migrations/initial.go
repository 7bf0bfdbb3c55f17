// Package migrations defines the schema history for the shop.
//
// Each migration registers itself in init(); importing this package for side
// effects (as cmd/shop does) is enough to make them runnable.
package migrations

import (
	"gorm.io/gorm"

	"github.com/Austinkuria/E-commerce-Site/app/models"
	"github.com/Austinkuria/E-commerce-Site/pkg/migration"
)

func init() {
	migration.Register("20260101000000_create_users_table", &CreateUsersTable{})
	migration.Register("20260101000001_create_products_table", &CreateProductsTable{})
	migration.Register("20260101000002_create_carts_table", &CreateCartsTable{})
	migration.Register("20260101000003_create_orders_table", &CreateOrdersTable{})
}

// -------- 0001: users + profiles --------

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Profile{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("profiles", "users")
}

// -------- 0002: products --------

type CreateProductsTable struct{}

func (m *CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (m *CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products")
}

// -------- 0003: carts + cart items --------

type CreateCartsTable struct{}

func (m *CreateCartsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Cart{}, &models.CartItem{})
}

func (m *CreateCartsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("cart_items", "carts")
}

// -------- 0004: orders + items + payments --------

type CreateOrdersTable struct{}

func (m *CreateOrdersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{}, &models.OrderItem{}, &models.Payment{})
}

func (m *CreateOrdersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("payments", "order_items", "orders")
}
