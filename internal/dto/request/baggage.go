package request

type CheckInBaggageRequest struct {
	TagNumber    string  `json:"tag_number" validate:"required"`
	BookingID    *string `json:"booking_id,omitempty" validate:"omitempty,uuid4"`
	Status       *string `json:"status,omitempty"`
	LastLocation *string `json:"last_location,omitempty"`
}

type UpdateBaggageRequest struct {
	Status       *string `json:"status,omitempty"`
	LastLocation *string `json:"last_location,omitempty"`
}
