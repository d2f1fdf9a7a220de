package wire

import (
	"airport-ops/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireUser configures user profile routes
func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	r.Route("/api/users", func(r chi.Router) {
		r.Get("/{id}", userHandler.GetUser)    // GET /api/users/{user-id}
		r.Put("/{id}", userHandler.UpdateUser) // PUT /api/users/{user-id}
	})
}
