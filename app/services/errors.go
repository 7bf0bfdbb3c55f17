package services

import "errors"

// Sentinel errors the controllers translate into HTTP statuses.
var (
	// ErrNotFound covers missing products, orders, and profiles.
	ErrNotFound = errors.New("not found")

	// ErrCartEmpty is returned when checkout runs against an empty cart.
	ErrCartEmpty = errors.New("cart is empty")

	// ErrOutOfStock is returned when a product cannot cover the requested
	// quantity, either when adding to the cart or during checkout.
	ErrOutOfStock = errors.New("insufficient stock")

	// ErrInvalidQuantity is returned when a cart add asks for fewer than one
	// unit. The HTTP layer rejects this at validation time too, but the
	// service enforces it for every caller.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// ErrEmailTaken is returned on signup with an already-registered email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned on failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
