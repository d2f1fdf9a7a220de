package usecase

import (
	"context"
	"fmt"
	"time"

	"airport-ops/internal/data/entity"
	"airport-ops/internal/data/repository"
	"airport-ops/internal/dto/request"
	"airport-ops/internal/dto/response"
	"airport-ops/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	ListByUser(ctx context.Context, userID string) ([]response.BookingResponse, error)
}

type bookingService struct {
	repo    *repository.Repository // groups booking, user and flight repos
	pricing *PricingEngine
	log     *zap.Logger
}

func NewBookingService(repo *repository.Repository, pricing *PricingEngine, log *zap.Logger) BookingService {
	return &bookingService{
		repo:    repo,
		pricing: pricing,
		log:     log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// 1. Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", req.UserID, ErrNotFound)
	}
	flightID, err := uuid.Parse(req.FlightID)
	if err != nil {
		return nil, fmt.Errorf("flight %s: %w", req.FlightID, ErrNotFound)
	}

	// An omitted seat count books a single seat.
	numSeats := 1
	if req.NumSeats != nil {
		numSeats = *req.NumSeats
	}
	if numSeats <= 0 {
		return nil, fmt.Errorf("%w: number of seats must be positive", ErrValidation)
	}

	// 2. Look up the referenced entities
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", req.UserID))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", req.UserID, ErrNotFound)
	}

	flight, err := s.repo.Flight.FindByID(ctx, flightID)
	if err != nil {
		s.log.Error("Failed to find flight", zap.Error(err), zap.String("flight_id", req.FlightID))
		return nil, fmt.Errorf("find flight: %w", err)
	}
	if flight == nil {
		return nil, fmt.Errorf("flight %s: %w", req.FlightID, ErrNotFound)
	}

	// 3. Seat availability. The check and the decrement below are not one
	// atomic unit across concurrent requests; see DESIGN.md.
	if flight.AvailableSeats < numSeats {
		return nil, ErrInsufficientSeats
	}

	// 4. Price the booking
	basePrice, finalPrice, discountReason := s.pricing.Quote(user.Email, numSeats)

	booking := &entity.Booking{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:         userID,
		FlightID:       flightID,
		NumSeats:       numSeats,
		Status:         entity.BookingStatusConfirmed,
		BasePrice:      basePrice,
		FinalPrice:     finalPrice,
		DiscountReason: discountReason,
	}

	// 5. Booking insert and seat decrement commit together
	if err := s.repo.Booking.CreateWithSeatDecrement(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", req.UserID),
			zap.String("flight_id", req.FlightID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	flight.AvailableSeats -= numSeats

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", req.UserID),
		zap.String("flight_id", req.FlightID),
		zap.Int("num_seats", numSeats),
		zap.Int("final_price", finalPrice),
	)

	resp := response.BookingToResponse(booking, user, flight)
	return &resp, nil
}

func (s *bookingService) ListByUser(ctx context.Context, userID string) ([]response.BookingResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, id)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	// Assemble DTOs with explicit lookups; flights are cached per ID since a
	// user often books the same flight.
	var user *entity.User
	flightsByID := make(map[uuid.UUID]*entity.Flight)

	responses := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		if user == nil {
			user, err = s.repo.User.FindByID(ctx, booking.UserID)
			if err != nil || user == nil {
				return nil, fmt.Errorf("find booking user: %w", err)
			}
		}

		flight, ok := flightsByID[booking.FlightID]
		if !ok {
			flight, err = s.repo.Flight.FindByID(ctx, booking.FlightID)
			if err != nil {
				return nil, fmt.Errorf("find booking flight: %w", err)
			}
			flightsByID[booking.FlightID] = flight
		}

		// A deleted flight leaves the booking orphaned; skip the embed
		// rather than fail the whole listing.
		if flight == nil {
			continue
		}

		responses = append(responses, response.BookingToResponse(booking, user, flight))
	}

	return responses, nil
}
