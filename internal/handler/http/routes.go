package http

import (
	"github.com/go-chi/chi/v5"
)

// Init wires the middleware chain and the route table.
//
// Middleware order matters: the request-id middleware must run first so
// that every later stage logs with the scoped logger, and logging sits
// outside recovery so the exit line covers panicked requests too.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withRequestID)
	router.Use(h.withLogging)
	router.Use(h.withRecovery)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/", h.info)
	})

	// routes behind the API-key gate
	router.Group(func(r chi.Router) {
		r.Use(h.requireAPIKey)
		r.Get("/api/products", h.listProducts)
		r.Post("/api/orders", h.createOrder)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	return router
}
