package usecase

import (
	"context"
	"fmt"
	"time"

	"airport-ops/internal/airports"
	"airport-ops/internal/data/entity"
	"airport-ops/internal/data/repository"
	"airport-ops/internal/dto/request"
	"airport-ops/internal/dto/response"
	"airport-ops/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FlightService interface {
	CreateFlight(ctx context.Context, req *request.CreateFlightRequest) (*response.FlightResponse, error)
	ListFlights(ctx context.Context) ([]response.FlightResponse, error)
	UpdateFlight(ctx context.Context, flightID string, req *request.UpdateFlightRequest) (*response.FlightResponse, error)
	DeleteFlight(ctx context.Context, flightID string) error
}

type flightService struct {
	flights   repository.FlightRepository
	directory *airports.Directory
	log       *zap.Logger
}

func NewFlightService(
	flights repository.FlightRepository,
	directory *airports.Directory,
	log *zap.Logger,
) FlightService {
	return &flightService{
		flights:   flights,
		directory: directory,
		log:       log.With(zap.String("service", "flight")),
	}
}

func (s *flightService) CreateFlight(ctx context.Context, req *request.CreateFlightRequest) (*response.FlightResponse, error) {
	// 1. Validate required fields
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create flight validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: missing required flight fields", ErrValidation)
	}

	// 2. Both endpoints must be known airports and must differ
	if !s.directory.Valid(req.Source) || !s.directory.Valid(req.Destination) {
		return nil, ErrInvalidAirport
	}
	if req.Source == req.Destination {
		return nil, ErrSameRoute
	}

	// 3. Create with a full plane: available mirrors total
	status := entity.FlightStatusOnTime
	if req.Status != nil {
		status = *req.Status
	}

	now := time.Now()
	flight := &entity.Flight{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Code:           req.Code,
		Source:         req.Source,
		Destination:    req.Destination,
		DepartureTime:  req.DepartureTime,
		ArrivalTime:    req.ArrivalTime,
		TotalSeats:     req.TotalSeats,
		AvailableSeats: req.TotalSeats,
		Status:         status,
	}

	if err := s.flights.Create(ctx, flight); err != nil {
		s.log.Error("Failed to create flight", zap.Error(err), zap.String("code", req.Code))
		return nil, fmt.Errorf("create flight: %w", err)
	}

	s.log.Info("Flight created",
		zap.String("flight_id", flight.ID.String()),
		zap.String("code", flight.Code),
		zap.String("route", flight.Source+"-"+flight.Destination),
		zap.Int("total_seats", flight.TotalSeats),
	)

	resp := response.FlightToResponse(flight)
	return &resp, nil
}

func (s *flightService) ListFlights(ctx context.Context) ([]response.FlightResponse, error) {
	flights, err := s.flights.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list flights", zap.Error(err))
		return nil, fmt.Errorf("list flights: %w", err)
	}

	responses := make([]response.FlightResponse, 0, len(flights))
	for _, flight := range flights {
		responses = append(responses, response.FlightToResponse(flight))
	}

	return responses, nil
}

func (s *flightService) UpdateFlight(ctx context.Context, flightID string, req *request.UpdateFlightRequest) (*response.FlightResponse, error) {
	id, err := uuid.Parse(flightID)
	if err != nil {
		return nil, fmt.Errorf("flight %s: %w", flightID, ErrNotFound)
	}

	flight, err := s.flights.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find flight", zap.Error(err), zap.String("flight_id", flightID))
		return nil, fmt.Errorf("find flight: %w", err)
	}
	if flight == nil {
		return nil, fmt.Errorf("flight %s: %w", flightID, ErrNotFound)
	}

	// Airport codes are revalidated when present. Seat counters are applied
	// as given; no cross-check between total and available is re-applied.
	if req.Source != nil && !s.directory.Valid(*req.Source) {
		return nil, fmt.Errorf("%w: invalid source airport", ErrInvalidAirport)
	}
	if req.Destination != nil && !s.directory.Valid(*req.Destination) {
		return nil, fmt.Errorf("%w: invalid destination airport", ErrInvalidAirport)
	}

	if req.Code != nil {
		flight.Code = *req.Code
	}
	if req.Source != nil {
		flight.Source = *req.Source
	}
	if req.Destination != nil {
		flight.Destination = *req.Destination
	}
	if req.DepartureTime != nil {
		flight.DepartureTime = *req.DepartureTime
	}
	if req.ArrivalTime != nil {
		flight.ArrivalTime = *req.ArrivalTime
	}
	if req.TotalSeats != nil {
		flight.TotalSeats = *req.TotalSeats
	}
	if req.AvailableSeats != nil {
		flight.AvailableSeats = *req.AvailableSeats
	}
	if req.Status != nil {
		flight.Status = *req.Status
	}

	flight.UpdatedAt = time.Now()

	if err := s.flights.Update(ctx, flight); err != nil {
		s.log.Error("Failed to update flight", zap.Error(err), zap.String("flight_id", flightID))
		return nil, fmt.Errorf("update flight: %w", err)
	}

	s.log.Info("Flight updated", zap.String("flight_id", flightID))

	resp := response.FlightToResponse(flight)
	return &resp, nil
}

func (s *flightService) DeleteFlight(ctx context.Context, flightID string) error {
	id, err := uuid.Parse(flightID)
	if err != nil {
		return fmt.Errorf("flight %s: %w", flightID, ErrNotFound)
	}

	flight, err := s.flights.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find flight", zap.Error(err), zap.String("flight_id", flightID))
		return fmt.Errorf("find flight: %w", err)
	}
	if flight == nil {
		return fmt.Errorf("flight %s: %w", flightID, ErrNotFound)
	}

	// Hard delete. Bookings referencing the flight are left in place.
	if err := s.flights.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete flight", zap.Error(err), zap.String("flight_id", flightID))
		return fmt.Errorf("delete flight: %w", err)
	}

	s.log.Info("Flight deleted", zap.String("flight_id", flightID))
	return nil
}
