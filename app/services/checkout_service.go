package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Austinkuria/E-commerce-Site/app/models"
	"github.com/Austinkuria/E-commerce-Site/app/repositories"
	"github.com/Austinkuria/E-commerce-Site/pkg/event"
	"github.com/Austinkuria/E-commerce-Site/pkg/logger"
	"github.com/Austinkuria/E-commerce-Site/pkg/metrics"
	"github.com/Austinkuria/E-commerce-Site/pkg/orm"
)

// CheckoutInput is the validated checkout form.
type CheckoutInput struct {
	Address       string `json:"address"        validate:"required,address,max=512"`
	City          string `json:"city"           validate:"required,alpha_space,max=100"`
	PostalCode    string `json:"postal_code"    validate:"required,digits_between=4,10"`
	Phone         string `json:"phone"          validate:"nullable,phone"`
	PaymentMethod string `json:"payment_method" validate:"required,in=cod,card,mpesa"`
	SaveDetails   bool   `json:"save_details"`
}

// CheckoutService turns a cart into an order.
type CheckoutService struct {
	carts    *repositories.CartRepository
	products *repositories.ProductRepository
	orders   *repositories.OrderRepository
	users    *repositories.UserRepository
}

func NewCheckoutService() *CheckoutService {
	return &CheckoutService{
		carts:    repositories.NewCartRepository(),
		products: repositories.NewProductRepository(),
		orders:   repositories.NewOrderRepository(),
		users:    repositories.NewUserRepository(),
	}
}

// PlaceOrder runs the checkout pipeline for a user's cart.
//
// Everything that mutates state happens in one database transaction: stock is
// reserved with guarded decrements, the order with its items and payment row
// is created, and the cart is emptied. If any product cannot cover its
// quantity the whole transaction rolls back — no partial orders, no lost
// stock, and the cart is left intact for the user to adjust.
//
// Unit prices are frozen onto the order items as they were read at the start
// of the pipeline; later catalogue price changes never alter a placed order.
func (s *CheckoutService) PlaceOrder(userID uint, in CheckoutInput) (models.Order, error) {
	start := time.Now()

	cart, err := s.carts.FindByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, ErrCartEmpty
		}
		return models.Order{}, err
	}
	if len(cart.Items) == 0 {
		return models.Order{}, ErrCartEmpty
	}

	var subtotal float64
	items := make([]models.OrderItem, 0, len(cart.Items))
	for i := range cart.Items {
		ci := &cart.Items[i]
		subtotal += ci.LineTotal()
		items = append(items, models.OrderItem{
			ProductID: ci.ProductID,
			Quantity:  ci.Quantity,
			UnitPrice: ci.Product.Price,
		})
	}

	fee := ShippingFee(subtotal)

	order := models.Order{
		UserID:      userID,
		Subtotal:    subtotal,
		ShippingFee: fee,
		Total:       subtotal + fee,
		Status:      models.OrderStatusPending,
		Address:     in.Address,
		City:        in.City,
		PostalCode:  in.PostalCode,
		Phone:       in.Phone,
		Items:       items,
		Payment: models.Payment{
			Method:        in.PaymentMethod,
			Amount:        subtotal + fee,
			TransactionID: "N/A",
			Status:        "pending",
		},
	}

	err = orm.Transaction(func(tx *gorm.DB) error {
		for i := range cart.Items {
			ci := &cart.Items[i]
			ok, err := s.products.DecrementStock(tx, ci.ProductID, ci.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: %s", ErrOutOfStock, ci.Product.Name)
			}
		}

		if err := s.orders.Create(tx, &order); err != nil {
			return err
		}

		return s.carts.ClearItems(tx, cart.ID)
	})
	if err != nil {
		if errors.Is(err, ErrOutOfStock) {
			metrics.StockRejections.Inc()
		}
		return models.Order{}, err
	}

	metrics.ObserveCheckout(start)
	logger.Info("checkout: order placed",
		"order_id", order.ID, "user_id", userID, "total", order.Total)

	if in.SaveDetails {
		s.saveShippingProfile(userID, in)
	}

	event.FireAsync("order.placed", order.ID)
	return order, nil
}

// saveShippingProfile stores the submitted shipping details as the user's
// default for the next checkout. Failures are logged, never fatal: the order
// has already committed.
func (s *CheckoutService) saveShippingProfile(userID uint, in CheckoutInput) {
	profile, err := s.users.FindProfile(userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Warn("checkout: load profile failed", "user_id", userID, "error", err)
		return
	}

	profile.UserID = userID
	profile.Address = in.Address
	profile.City = in.City
	profile.PostalCode = in.PostalCode
	profile.Phone = in.Phone

	if err := s.users.SaveProfile(&profile); err != nil {
		logger.Warn("checkout: save profile failed", "user_id", userID, "error", err)
	}
}
