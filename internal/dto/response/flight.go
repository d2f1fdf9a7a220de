package response

import (
	"airport-ops/internal/data/entity"
)

type FlightResponse struct {
	ID             string `json:"id"`
	Code           string `json:"code"`
	Source         string `json:"source"`
	Destination    string `json:"destination"`
	DepartureTime  string `json:"departure_time"`
	ArrivalTime    string `json:"arrival_time"`
	TotalSeats     int    `json:"total_seats"`
	AvailableSeats int    `json:"available_seats"`
	Status         string `json:"status"`
}

func FlightToResponse(flight *entity.Flight) FlightResponse {
	return FlightResponse{
		ID:             flight.ID.String(),
		Code:           flight.Code,
		Source:         flight.Source,
		Destination:    flight.Destination,
		DepartureTime:  flight.DepartureTime,
		ArrivalTime:    flight.ArrivalTime,
		TotalSeats:     flight.TotalSeats,
		AvailableSeats: flight.AvailableSeats,
		Status:         flight.Status,
	}
}
