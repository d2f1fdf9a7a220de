package wire

import (
	"airport-ops/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireAdmin configures reporting routes
func wireAdmin(r chi.Router, adminHandler *adaptor.AdminHandler) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin", func(r chi.Router) {
		r.Get("/summary", adminHandler.Summary)                   // GET /api/admin/summary
		r.Post("/import-employees", adminHandler.ImportEmployees) // POST /api/admin/import-employees
		r.Get("/feedback-export", adminHandler.ExportFeedback)    // GET /api/admin/feedback-export
	})
}
