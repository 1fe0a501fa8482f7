// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/adapters/http/handlers"
)

// Fallback messages for requests that match no route.
const (
	msgRouteNotFound    = "Resource not found"
	msgMethodNotAllowed = "Method not allowed"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	todoHandler *handlers.TodoHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteEnvelope(w, r, http.StatusNotFound, msgRouteNotFound, nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteEnvelope(w, r, http.StatusMethodNotAllowed, msgMethodNotAllowed, nil)
	})

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health", healthHandler.Health)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1/todos", func(r chi.Router) {
		r.Get("/", todoHandler.List)
		r.Post("/", todoHandler.Create)

		// Fixed segments are registered before {id}; chi prefers static
		// matches regardless, but the listing reads in priority order.
		r.Get("/stats", todoHandler.Stats)
		r.Delete("/completed", todoHandler.DeleteCompleted)
		r.Delete("/all", todoHandler.DeleteAll)

		r.Get("/{id}", todoHandler.Get)
		r.Put("/{id}", todoHandler.Update)
		r.Patch("/{id}/toggle", todoHandler.Toggle)
		r.Delete("/{id}", todoHandler.Delete)
	})

	return r
}
