// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-domain-primitives/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	orderHandler *handlers.OrderHandler,
	healthHandler *handlers.HealthHandler,
	streamHandler *handlers.StreamHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1/orders", func(r chi.Router) {
		r.Get("/", orderHandler.ListOrders)
		r.Post("/", orderHandler.PlaceOrder)
		r.Get("/stream", streamHandler.StreamEvents)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", orderHandler.GetOrder)
			r.Get("/events", orderHandler.OrderEvents)
			r.Post("/lines", orderHandler.AddLine)
			r.Post("/ship", orderHandler.ShipOrder)
			r.Post("/cancel", orderHandler.CancelOrder)
		})
	})

	return r
}
