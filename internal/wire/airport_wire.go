package wire

import (
	"airport-ops/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireAirport configures airport directory routes
func wireAirport(r chi.Router, airportHandler *adaptor.AirportHandler) {
	r.Get("/api/airports", airportHandler.List) // GET /api/airports
}
