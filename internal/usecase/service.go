package usecase

import (
	"airport-ops/internal/airports"
	"airport-ops/internal/data/repository"
	"airport-ops/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	OTP      OTPService
	Flight   FlightService
	Booking  BookingService
	Feedback FeedbackService
	Baggage  BaggageService
	Admin    AdminService
}

func NewService(
	repo *repository.Repository,
	directory *airports.Directory,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	pricing := NewPricingEngine(config.Pricing)
	otp := NewOTPService(repo.OTP, config, log)

	return &Service{
		Auth:     NewAuthService(repo.User, otp, config, log),
		User:     NewUserService(repo.User, log),
		OTP:      otp,
		Flight:   NewFlightService(repo.Flight, directory, log),
		Booking:  NewBookingService(repo, pricing, log),
		Feedback: NewFeedbackService(repo.Feedback, repo.User, log),
		Baggage:  NewBaggageService(repo.Baggage, log),
		Admin:    NewAdminService(repo, config, log),
	}
}
