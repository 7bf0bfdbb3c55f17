// Package routes wires controllers onto the API router.
package routes

import (
	"time"

	"github.com/Austinkuria/E-commerce-Site/app/controllers"
	"github.com/Austinkuria/E-commerce-Site/pkg/ctx"
	"github.com/Austinkuria/E-commerce-Site/pkg/middleware"
	"github.com/Austinkuria/E-commerce-Site/pkg/rbac"
	"github.com/Austinkuria/E-commerce-Site/pkg/router"
)

// RegisterAPI mounts every API route.
//
// Three tiers: public catalogue + auth, authenticated shopper routes, and
// admin catalogue management.
func RegisterAPI(r *router.Router) {
	auth := controllers.NewAuthController()
	products := controllers.NewProductController()
	carts := controllers.NewCartController()
	checkout := controllers.NewCheckoutController()
	orders := controllers.NewOrderController()
	profile := controllers.NewProfileController()
	gql := controllers.NewGraphQLController()

	api := r.Group("/api")

	// Public
	api.Post("/signup", "auth.signup", ctx.Wrap(auth.Signup), middleware.RateLimit(10, time.Minute))
	api.Post("/login", "auth.login", ctx.Wrap(auth.Login), middleware.RateLimit(20, time.Minute))
	api.Get("/products", "products.index", ctx.Wrap(products.Index))
	api.Get("/products/{id}", "products.show", ctx.Wrap(products.Show))
	api.Post("/graphql", "graphql", ctx.Wrap(gql.Query))

	// Authenticated shoppers
	shop := api.Group("", middleware.Auth)
	shop.Get("/profile", "profile.show", ctx.Wrap(profile.Show))
	shop.Put("/profile", "profile.update", ctx.Wrap(profile.Update))
	shop.Get("/cart", "cart.show", ctx.Wrap(carts.Show))
	shop.Post("/cart/items", "cart.items.add", ctx.Wrap(carts.AddItem))
	shop.Patch("/cart/items/{productID}", "cart.items.update", ctx.Wrap(carts.UpdateItem))
	shop.Delete("/cart/items/{productID}", "cart.items.remove", ctx.Wrap(carts.RemoveItem))
	shop.Post("/checkout", "checkout", ctx.Wrap(checkout.Checkout))
	shop.Get("/orders", "orders.index", ctx.Wrap(orders.Index))
	shop.Get("/orders/{id}", "orders.show", ctx.Wrap(orders.Show))

	// Admin catalogue management
	admin := api.Group("/admin", middleware.Auth, rbac.HasRole("admin"))
	admin.Post("/products", "admin.products.store", ctx.Wrap(products.Store))
	admin.Put("/products/{id}", "admin.products.update", ctx.Wrap(products.Update))
	admin.Post("/products/{id}/image", "admin.products.image", ctx.Wrap(products.UploadImage))
}
