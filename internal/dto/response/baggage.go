package response

import (
	"airport-ops/internal/data/entity"
)

type BaggageResponse struct {
	ID           string  `json:"id"`
	TagNumber    string  `json:"tag_number"`
	Status       string  `json:"status"`
	LastLocation string  `json:"last_location"`
	BookingID    *string `json:"booking_id"`
}

func BaggageToResponse(baggage *entity.Baggage) BaggageResponse {
	resp := BaggageResponse{
		ID:           baggage.ID.String(),
		TagNumber:    baggage.TagNumber,
		Status:       baggage.Status,
		LastLocation: baggage.LastLocation,
	}

	if baggage.BookingID != nil {
		id := baggage.BookingID.String()
		resp.BookingID = &id
	}

	return resp
}
