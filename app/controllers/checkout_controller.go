package controllers

import (
	"github.com/Austinkuria/E-commerce-Site/app/services"
	"github.com/Austinkuria/E-commerce-Site/pkg/ctx"
)

type CheckoutController struct {
	service *services.CheckoutService
}

func NewCheckoutController() *CheckoutController {
	return &CheckoutController{service: services.NewCheckoutService()}
}

// Checkout validates the shipping form and places the order.
func (cc *CheckoutController) Checkout(c *ctx.Context) {
	var in services.CheckoutInput
	if !c.BindJSON(&in) {
		return
	}

	order, err := cc.service.PlaceOrder(c.UserID(), in)
	if err != nil {
		fail(c, err)
		return
	}

	c.Created(order)
}
