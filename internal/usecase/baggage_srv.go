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

type BaggageService interface {
	CheckIn(ctx context.Context, req *request.CheckInBaggageRequest) (*response.BaggageResponse, error)
	LookupByTag(ctx context.Context, tagNumber string) (*response.BaggageResponse, error)
	UpdateByTag(ctx context.Context, tagNumber string, req *request.UpdateBaggageRequest) (*response.BaggageResponse, error)
}

type baggageService struct {
	baggage repository.BaggageRepository
	log     *zap.Logger
}

func NewBaggageService(baggage repository.BaggageRepository, log *zap.Logger) BaggageService {
	return &baggageService{
		baggage: baggage,
		log:     log.With(zap.String("service", "baggage")),
	}
}

func (s *baggageService) CheckIn(ctx context.Context, req *request.CheckInBaggageRequest) (*response.BaggageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Baggage check-in validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// Tag numbers are globally unique
	existing, err := s.baggage.FindByTag(ctx, req.TagNumber)
	if err != nil {
		s.log.Error("Failed to check tag", zap.Error(err), zap.String("tag_number", req.TagNumber))
		return nil, fmt.Errorf("check tag: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: tag_number already exists", ErrValidation)
	}

	var bookingID *uuid.UUID
	if req.BookingID != nil {
		id, err := uuid.Parse(*req.BookingID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid booking_id format", ErrValidation)
		}
		bookingID = &id
	}

	status := entity.BaggageStatusCheckedIn
	if req.Status != nil {
		status = *req.Status
	}
	location := entity.BaggageLocationUnknown
	if req.LastLocation != nil {
		location = *req.LastLocation
	}

	baggage := &entity.Baggage{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		TagNumber:    req.TagNumber,
		BookingID:    bookingID,
		Status:       status,
		LastLocation: location,
	}

	if err := s.baggage.Create(ctx, baggage); err != nil {
		s.log.Error("Failed to create baggage", zap.Error(err), zap.String("tag_number", req.TagNumber))
		return nil, fmt.Errorf("create baggage: %w", err)
	}

	s.log.Info("Baggage checked in",
		zap.String("baggage_id", baggage.ID.String()),
		zap.String("tag_number", baggage.TagNumber),
	)

	resp := response.BaggageToResponse(baggage)
	return &resp, nil
}

func (s *baggageService) LookupByTag(ctx context.Context, tagNumber string) (*response.BaggageResponse, error) {
	baggage, err := s.baggage.FindByTag(ctx, tagNumber)
	if err != nil {
		s.log.Error("Failed to look up baggage", zap.Error(err), zap.String("tag_number", tagNumber))
		return nil, fmt.Errorf("look up baggage: %w", err)
	}
	if baggage == nil {
		return nil, fmt.Errorf("baggage %s: %w", tagNumber, ErrNotFound)
	}

	resp := response.BaggageToResponse(baggage)
	return &resp, nil
}

func (s *baggageService) UpdateByTag(ctx context.Context, tagNumber string, req *request.UpdateBaggageRequest) (*response.BaggageResponse, error) {
	baggage, err := s.baggage.FindByTag(ctx, tagNumber)
	if err != nil {
		s.log.Error("Failed to look up baggage", zap.Error(err), zap.String("tag_number", tagNumber))
		return nil, fmt.Errorf("look up baggage: %w", err)
	}
	if baggage == nil {
		return nil, fmt.Errorf("baggage %s: %w", tagNumber, ErrNotFound)
	}

	if req.Status != nil {
		baggage.Status = *req.Status
	}
	if req.LastLocation != nil {
		baggage.LastLocation = *req.LastLocation
	}

	if err := s.baggage.Update(ctx, baggage); err != nil {
		s.log.Error("Failed to update baggage", zap.Error(err), zap.String("tag_number", tagNumber))
		return nil, fmt.Errorf("update baggage: %w", err)
	}

	s.log.Info("Baggage updated",
		zap.String("tag_number", tagNumber),
		zap.String("status", baggage.Status),
		zap.String("last_location", baggage.LastLocation),
	)

	resp := response.BaggageToResponse(baggage)
	return &resp, nil
}
