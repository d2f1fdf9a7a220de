package repository

import (
	"airport-ops/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	OTP      OTPRepository
	Flight   FlightRepository
	Booking  BookingRepository
	Feedback FeedbackRepository
	Baggage  BaggageRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		OTP:      NewOTPRepository(db, log),
		Flight:   NewFlightRepository(db, log),
		Booking:  NewBookingRepository(db, log),
		Feedback: NewFeedbackRepository(db, log),
		Baggage:  NewBaggageRepository(db, log),
	}
}
