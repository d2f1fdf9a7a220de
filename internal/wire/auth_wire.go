package wire

import (
	"airport-ops/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireAuth configures registration and login routes
func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// ==================== PUBLIC AUTH ROUTES ====================
	r.Post("/api/request-otp", authHandler.RequestOTP)         // POST /api/request-otp
	r.Post("/api/register", authHandler.Register)              // POST /api/register
	r.Post("/api/login", authHandler.Login)                    // POST /api/login
	r.Post("/api/change-password", authHandler.ChangePassword) // POST /api/change-password
}
