package adaptor

import (
	"airport-ops/internal/airports"
	"airport-ops/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Airport  *AirportHandler
	Auth     *AuthHandler
	User     *UserHandler
	Flight   *FlightHandler
	Booking  *BookingHandler
	Feedback *FeedbackHandler
	Baggage  *BaggageHandler
	Admin    *AdminHandler
}

func NewHandler(service *usecase.Service, directory *airports.Directory, log *zap.Logger) *Handler {
	return &Handler{
		Airport:  NewAirportHandler(directory, log),
		Auth:     NewAuthHandler(service.Auth, service.OTP, log),
		User:     NewUserHandler(service.User, log),
		Flight:   NewFlightHandler(service.Flight, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Feedback: NewFeedbackHandler(service.Feedback, log),
		Baggage:  NewBaggageHandler(service.Baggage, log),
		Admin:    NewAdminHandler(service.Admin, log),
	}
}
