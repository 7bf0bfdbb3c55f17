package controllers

import (
	"net/http"

	"github.com/Austinkuria/E-commerce-Site/app/services"
	"github.com/Austinkuria/E-commerce-Site/pkg/ctx"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController() *OrderController {
	return &OrderController{service: services.NewOrderService()}
}

// Index returns the caller's order history.
func (oc *OrderController) Index(c *ctx.Context) {
	orders, err := oc.service.List(c.UserID())
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(orders)
}

// Show returns one of the caller's orders.
func (oc *OrderController) Show(c *ctx.Context) {
	id, err := c.ParamUint("id")
	if err != nil {
		c.Error(http.StatusBadRequest, err.Error())
		return
	}

	order, err := oc.service.Find(id, c.UserID())
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(order)
}
