package request

type CreateBookingRequest struct {
	UserID   string `json:"user_id" validate:"required,uuid4"`
	FlightID string `json:"flight_id" validate:"required,uuid4"`
	// NumSeats defaults to 1 when omitted; an explicit value must be >= 1.
	NumSeats *int `json:"num_seats,omitempty"`
}
