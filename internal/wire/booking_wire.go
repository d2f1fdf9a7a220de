package wire

import (
	"airport-ops/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireBooking configures seat booking routes
func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/api/bookings", func(r chi.Router) {
		r.Post("/", bookingHandler.CreateBooking)            // POST /api/bookings
		r.Get("/user/{id}", bookingHandler.ListUserBookings) // GET /api/bookings/user/{user-id}
	})
}
