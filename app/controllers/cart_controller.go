package controllers

import (
	"net/http"

	"github.com/Austinkuria/E-commerce-Site/app/services"
	"github.com/Austinkuria/E-commerce-Site/pkg/ctx"
)

type CartController struct {
	service *services.CartService
}

func NewCartController() *CartController {
	return &CartController{service: services.NewCartService()}
}

// Show returns the caller's cart with totals.
func (cc *CartController) Show(c *ctx.Context) {
	view, err := cc.service.Get(c.UserID())
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(view)
}

// AddItem puts a product into the cart.
func (cc *CartController) AddItem(c *ctx.Context) {
	var in struct {
		ProductID uint `json:"product_id" validate:"required"`
		Quantity  int  `json:"quantity"   validate:"required,gte=1"`
	}
	if !c.BindJSON(&in) {
		return
	}

	view, err := cc.service.AddItem(c.UserID(), in.ProductID, in.Quantity)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(view)
}

// UpdateItem adjusts a cart line's quantity by a delta (usually ±1).
// A delta that drives the quantity to zero or below removes the line.
func (cc *CartController) UpdateItem(c *ctx.Context) {
	productID, err := c.ParamUint("productID")
	if err != nil {
		c.Error(http.StatusBadRequest, err.Error())
		return
	}

	var in struct {
		Delta int `json:"delta" validate:"required"`
	}
	if !c.BindJSON(&in) {
		return
	}

	view, err := cc.service.UpdateItem(c.UserID(), productID, in.Delta)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(view)
}

// RemoveItem deletes a product line from the cart.
func (cc *CartController) RemoveItem(c *ctx.Context) {
	productID, err := c.ParamUint("productID")
	if err != nil {
		c.Error(http.StatusBadRequest, err.Error())
		return
	}

	view, err := cc.service.RemoveItem(c.UserID(), productID)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(view)
}
