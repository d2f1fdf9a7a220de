package entity

import (
	"github.com/google/uuid"
)

const BookingStatusConfirmed = "Confirmed"

type Booking struct {
	BaseSimple
	UserID         uuid.UUID `db:"user_id"`
	FlightID       uuid.UUID `db:"flight_id"`
	NumSeats       int       `db:"num_seats"`
	Status         string    `db:"status"`
	BasePrice      int       `db:"base_price"`
	FinalPrice     int       `db:"final_price"`
	DiscountReason *string   `db:"discount_reason"`
}
