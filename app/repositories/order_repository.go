package repositories

import (
	"gorm.io/gorm"

	"github.com/Austinkuria/E-commerce-Site/app/models"
	"github.com/Austinkuria/E-commerce-Site/pkg/orm"
)

// OrderRepository handles database operations for Order, OrderItem, Payment.
type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Create persists an order with its items and payment inside tx.
// GORM writes the associations in the same transaction.
func (r *OrderRepository) Create(tx *gorm.DB, order *models.Order) error {
	return tx.Create(order).Error
}

// FindByUser returns all of a user's orders, newest first.
func (r *OrderRepository) FindByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := orm.DB().Model(&models.Order{}).
		Preload("Items").
		Preload("Payment").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Get(&orders)
	return orders, err
}

// FindForUser returns one order, scoped to its owner so users cannot read
// each other's orders.
func (r *OrderRepository) FindForUser(orderID, userID uint) (models.Order, error) {
	var order models.Order
	err := orm.DB().Model(&models.Order{}).
		Preload("Items.Product").
		Preload("Payment").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order)
	return order, err
}

// FindByID returns one order regardless of owner (jobs, admin tooling).
func (r *OrderRepository) FindByID(orderID uint) (models.Order, error) {
	var order models.Order
	err := orm.DB().Model(&models.Order{}).
		Preload("Items.Product").
		Preload("Payment").
		Where("id = ?", orderID).
		First(&order)
	return order, err
}
