package request

type CreateFlightRequest struct {
	Code          string  `json:"code" validate:"required"`
	Source        string  `json:"source" validate:"required"`
	Destination   string  `json:"destination" validate:"required"`
	DepartureTime string  `json:"departure_time" validate:"required"`
	ArrivalTime   string  `json:"arrival_time" validate:"required"`
	TotalSeats    int     `json:"total_seats" validate:"required,min=1"`
	Status        *string `json:"status,omitempty"`
}

// UpdateFlightRequest enumerates exactly which flight fields may be
// overwritten. Absent fields are left untouched. No consistency check is
// re-applied between total_seats and available_seats here.
type UpdateFlightRequest struct {
	Code           *string `json:"code,omitempty"`
	Source         *string `json:"source,omitempty"`
	Destination    *string `json:"destination,omitempty"`
	DepartureTime  *string `json:"departure_time,omitempty"`
	ArrivalTime    *string `json:"arrival_time,omitempty"`
	TotalSeats     *int    `json:"total_seats,omitempty"`
	AvailableSeats *int    `json:"available_seats,omitempty"`
	Status         *string `json:"status,omitempty"`
}
