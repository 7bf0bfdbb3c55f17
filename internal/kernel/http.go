// Package kernel assembles the HTTP handler: global middleware stack,
// metrics endpoint, and the API routes.
package kernel

import (
	"net/http"
	"time"

	"github.com/Austinkuria/E-commerce-Site/app/routes"
	"github.com/Austinkuria/E-commerce-Site/pkg/metrics"
	"github.com/Austinkuria/E-commerce-Site/pkg/middleware"
	"github.com/Austinkuria/E-commerce-Site/pkg/reqid"
	"github.com/Austinkuria/E-commerce-Site/pkg/router"
)

// BuildHandler constructs the full HTTP handler.
//
// Middleware runs outermost first: metrics wraps everything so even panics
// recovered further in are counted; Recovery sits above the request id and
// logger so those can annotate the 500.
func BuildHandler() http.Handler {
	r := router.New()

	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(200, time.Minute),
	)

	r.HandleFunc("/metrics", metrics.Handler())

	routes.RegisterAPI(r)

	return r.Handler()
}

// NewRouter builds a router with routes registered but no middleware.
// Used by `shop route:list`.
func NewRouter() *router.Router {
	r := router.New()
	routes.RegisterAPI(r)
	return r
}
