package wire

import (
	"airport-ops/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireFlight configures flight inventory routes
func wireFlight(r chi.Router, flightHandler *adaptor.FlightHandler) {
	r.Route("/api/flights", func(r chi.Router) {
		r.Get("/", flightHandler.ListFlights)         // GET /api/flights
		r.Post("/", flightHandler.CreateFlight)       // POST /api/flights
		r.Put("/{id}", flightHandler.UpdateFlight)    // PUT /api/flights/{flight-id}
		r.Delete("/{id}", flightHandler.DeleteFlight) // DELETE /api/flights/{flight-id}
	})
}
