package wire

import (
	"airport-ops/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireFeedback configures passenger feedback routes
func wireFeedback(r chi.Router, feedbackHandler *adaptor.FeedbackHandler) {
	r.Route("/api/feedback", func(r chi.Router) {
		r.Post("/", feedbackHandler.CreateFeedback)           // POST /api/feedback
		r.Get("/", feedbackHandler.ListFeedback)              // GET /api/feedback
		r.Get("/user/{id}", feedbackHandler.ListUserFeedback) // GET /api/feedback/user/{user-id}
	})
}
