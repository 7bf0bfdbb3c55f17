// Package controllers holds the HTTP handlers. Controllers bind and validate
// input, call a service, and translate service errors into HTTP statuses —
// no business logic lives here.
package controllers

import (
	"errors"
	"net/http"

	"github.com/Austinkuria/E-commerce-Site/app/services"
	"github.com/Austinkuria/E-commerce-Site/pkg/ctx"
)

// fail maps service errors onto HTTP responses.
func fail(c *ctx.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.NotFound()
	case errors.Is(err, services.ErrCartEmpty):
		c.Error(http.StatusUnprocessableEntity, "Your cart is empty.")
	case errors.Is(err, services.ErrOutOfStock):
		c.Error(http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidQuantity):
		c.Error(http.StatusUnprocessableEntity, "Quantity must be at least 1.")
	case errors.Is(err, services.ErrEmailTaken):
		c.Error(http.StatusUnprocessableEntity, "That email is already registered.")
	case errors.Is(err, services.ErrInvalidCredentials):
		c.Error(http.StatusUnauthorized, "Invalid email or password.")
	default:
		c.Error(http.StatusInternalServerError, "Something went wrong.")
	}
}
