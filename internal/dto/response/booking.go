package response

import (
	"time"

	"airport-ops/internal/data/entity"
)

// BookingResponse embeds the full user and flight, assembled by explicit
// lookups in the booking service.
type BookingResponse struct {
	ID             string         `json:"id"`
	User           UserResponse   `json:"user"`
	Flight         FlightResponse `json:"flight"`
	NumSeats       int            `json:"num_seats"`
	Status         string         `json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
	BasePrice      int            `json:"base_price"`
	FinalPrice     int            `json:"final_price"`
	DiscountReason *string        `json:"discount_reason"`
}

func BookingToResponse(booking *entity.Booking, user *entity.User, flight *entity.Flight) BookingResponse {
	return BookingResponse{
		ID:             booking.ID.String(),
		User:           UserToResponse(user),
		Flight:         FlightToResponse(flight),
		NumSeats:       booking.NumSeats,
		Status:         booking.Status,
		CreatedAt:      booking.CreatedAt,
		BasePrice:      booking.BasePrice,
		FinalPrice:     booking.FinalPrice,
		DiscountReason: booking.DiscountReason,
	}
}
