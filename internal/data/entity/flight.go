package entity

const FlightStatusOnTime = "On Time"

type Flight struct {
	Base
	Code           string `db:"code"`
	Source         string `db:"source"`      // IATA code like DEL
	Destination    string `db:"destination"` // IATA code
	DepartureTime  string `db:"departure_time"`
	ArrivalTime    string `db:"arrival_time"`
	TotalSeats     int    `db:"total_seats"`
	AvailableSeats int    `db:"available_seats"`
	Status         string `db:"status"`
}
