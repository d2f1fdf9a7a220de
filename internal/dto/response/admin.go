package response

type SummaryResponse struct {
	TotalUsers      int64 `json:"total_users"`
	TotalPassengers int64 `json:"total_passengers"`
	TotalEmployees  int64 `json:"total_employees"`
	TotalFlights    int64 `json:"total_flights"`
	TotalBookings   int64 `json:"total_bookings"`
	TotalFeedback   int64 `json:"total_feedback"`
}

type ImportResult struct {
	Created         int `json:"created"`
	SkippedExisting int `json:"skipped_existing"`
}
