package entity

import (
	"github.com/google/uuid"
)

const (
	BaggageStatusCheckedIn = "Checked-in"
	BaggageLocationUnknown = "N/A"
)

type Baggage struct {
	BaseSimple
	TagNumber    string     `db:"tag_number"`
	BookingID    *uuid.UUID `db:"booking_id"`
	Status       string     `db:"status"`
	LastLocation string     `db:"last_location"`
}
