package wire

import (
	"airport-ops/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireBaggage configures baggage tracking routes
func wireBaggage(r chi.Router, baggageHandler *adaptor.BaggageHandler) {
	r.Route("/api/baggage", func(r chi.Router) {
		r.Post("/", baggageHandler.CheckIn)    // POST /api/baggage
		r.Get("/{tag}", baggageHandler.Lookup) // GET /api/baggage/{tag-number}
		r.Put("/{tag}", baggageHandler.Update) // PUT /api/baggage/{tag-number}
	})
}
