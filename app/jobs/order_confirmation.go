// Package jobs holds the background work the shop queues or schedules:
// order confirmation emails and the abandoned-cart reminder sweep.
package jobs

import (
	"fmt"
	"strings"

	"github.com/Austinkuria/E-commerce-Site/app/repositories"
	"github.com/Austinkuria/E-commerce-Site/pkg/logger"
	"github.com/Austinkuria/E-commerce-Site/pkg/mail"
)

// OrderConfirmationJob emails the shopper after their order commits.
// Dispatched by the order.placed listener, so a slow SMTP server can never
// hold up a checkout response.
type OrderConfirmationJob struct {
	OrderID uint `json:"order_id"`
}

func (j *OrderConfirmationJob) Handle() error {
	orders := repositories.NewOrderRepository()
	users := repositories.NewUserRepository()

	order, err := orders.FindByID(j.OrderID)
	if err != nil {
		return fmt.Errorf("order confirmation: load order %d: %w", j.OrderID, err)
	}

	user, err := users.FindByID(order.UserID)
	if err != nil {
		return fmt.Errorf("order confirmation: load user %d: %w", order.UserID, err)
	}

	var lines strings.Builder
	for i := range order.Items {
		item := &order.Items[i]
		fmt.Fprintf(&lines, "<li>%s × %d — %.2f</li>", item.Product.Name, item.Quantity, item.LineTotal())
	}

	body := fmt.Sprintf(
		"<h1>Thanks for your order, %s!</h1>"+
			"<p>Order #%d is confirmed.</p>"+
			"<ul>%s</ul>"+
			"<p>Subtotal: %.2f<br>Shipping: %.2f<br><strong>Total: %.2f</strong></p>"+
			"<p>Delivery to: %s, %s %s</p>",
		user.Name, order.ID, lines.String(),
		order.Subtotal, order.ShippingFee, order.Total,
		order.Address, order.City, order.PostalCode,
	)

	if err := mail.To(user.Email).
		Subject(fmt.Sprintf("Order #%d confirmed", order.ID)).
		Body(body).
		Send(); err != nil {
		return fmt.Errorf("order confirmation: send to %s: %w", user.Email, err)
	}

	logger.Info("jobs: order confirmation sent", "order_id", order.ID, "email", user.Email)
	return nil
}
