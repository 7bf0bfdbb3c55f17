// Package ctx provides the request context handed to every controller.
//
// Instead of (http.ResponseWriter, *http.Request), handlers receive a single
// *Context with helpers for params, binding, and JSON responses:
//
//	func (c *CartController) Show(cc *ctx.Context) {
//	    cart, err := c.service.Get(cc.Context(), cc.UserID())
//	    ...
//	    cc.Success(cart)
//	}
//
// Register with ctx.Wrap:
//
//	r.Get("/cart", "cart.show", ctx.Wrap(cartController.Show))
package ctx

import (
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Austinkuria/E-commerce-Site/pkg/bind"
	"github.com/Austinkuria/E-commerce-Site/pkg/middleware"
	"github.com/Austinkuria/E-commerce-Site/pkg/validate"
)

// HandlerFunc is the context-aware handler signature.
type HandlerFunc func(c *Context)

// Wrap converts a HandlerFunc to a standard http.HandlerFunc.
func Wrap(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h(&Context{W: w, R: r})
	}
}

// Context wraps a request/response pair.
type Context struct {
	W http.ResponseWriter
	R *http.Request
}

// ─── Request helpers ──────────────────────────────────────────────────────────

// Param returns a URL path parameter (e.g. "/products/{id}" → c.Param("id")).
func (c *Context) Param(key string) string {
	return chi.URLParam(c.R, key)
}

// ParamUint parses a URL path parameter as an unsigned integer.
func (c *Context) ParamUint(key string) (uint, error) {
	n, err := strconv.ParseUint(c.Param(key), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parameter %q must be a positive integer", key)
	}
	return uint(n), nil
}

// Query returns a query-string value, or "" if not present.
func (c *Context) Query(key string) string {
	return c.R.URL.Query().Get(key)
}

// QueryInt parses a query-string value as an int, falling back to def.
func (c *Context) QueryInt(key string, def int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return n
}

// FormFile returns an uploaded file from a multipart form.
func (c *Context) FormFile(key string) (multipart.File, *multipart.FileHeader, error) {
	return c.R.FormFile(key)
}

// UserID returns the authenticated caller's ID stored by the Auth middleware,
// or 0 when the request is anonymous.
func (c *Context) UserID() uint {
	id, _ := middleware.UserIDFromCtx(c.R)
	return id
}

// Context returns the underlying request context.
func (c *Context) Context() context.Context { return c.R.Context() }

// ─── Binding / Validation ─────────────────────────────────────────────────────

// BindJSON decodes the JSON body into dest and runs validation.
// On failure it writes the error response itself and returns false.
func (c *Context) BindJSON(dest any) bool {
	errs, err := bind.JSON(c.R, dest)
	if err != nil {
		c.Error(http.StatusBadRequest, err.Error())
		return false
	}
	if validate.HasErrors(errs) {
		c.ValidationError(errs)
		return false
	}
	return true
}

// ─── Response helpers ─────────────────────────────────────────────────────────

type envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// JSON writes a JSON response with the given status code.
func (c *Context) JSON(code int, v any) {
	c.W.Header().Set("Content-Type", "application/json")
	c.W.WriteHeader(code)
	json.NewEncoder(c.W).Encode(v) //nolint:errcheck
}

// Success sends a 200 JSON envelope.
func (c *Context) Success(data any) {
	c.JSON(http.StatusOK, envelope{Status: http.StatusOK, Data: data})
}

// Created sends a 201 JSON envelope.
func (c *Context) Created(data any) {
	c.JSON(http.StatusCreated, envelope{Status: http.StatusCreated, Data: data})
}

// Error sends a JSON error envelope with the given status and message.
func (c *Context) Error(code int, message string) {
	c.JSON(code, envelope{Status: code, Message: message})
}

// ValidationError sends a 422 with field-level errors.
func (c *Context) ValidationError(errs map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, envelope{
		Status:  http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  errs,
	})
}

// NotFound sends a 404.
func (c *Context) NotFound(message ...string) {
	msg := "Not found"
	if len(message) > 0 {
		msg = message[0]
	}
	c.Error(http.StatusNotFound, msg)
}

// Unauthorized sends a 401.
func (c *Context) Unauthorized() {
	c.Error(http.StatusUnauthorized, "Unauthorized")
}
