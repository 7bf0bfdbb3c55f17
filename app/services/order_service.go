package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Austinkuria/E-commerce-Site/app/models"
	"github.com/Austinkuria/E-commerce-Site/app/repositories"
)

// OrderService reads back placed orders.
type OrderService struct {
	orders *repositories.OrderRepository
}

func NewOrderService() *OrderService {
	return &OrderService{orders: repositories.NewOrderRepository()}
}

// List returns the user's order history, newest first.
func (s *OrderService) List(userID uint) ([]models.Order, error) {
	return s.orders.FindByUser(userID)
}

// Find returns one order, owner-scoped.
func (s *OrderService) Find(orderID, userID uint) (models.Order, error) {
	order, err := s.orders.FindForUser(orderID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return order, ErrNotFound
	}
	return order, err
}
