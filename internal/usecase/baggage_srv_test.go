package usecase

import (
	"context"
	"testing"
	"time"

	"airport-ops/internal/data/entity"
	"airport-ops/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestBaggageService_CheckIn_Defaults(t *testing.T) {
	mockBaggage := &MockBaggageRepository{}
	service := NewBaggageService(mockBaggage, zap.NewNop())

	ctx := context.Background()

	mockBaggage.On("FindByTag", ctx, "BAG-001").Return(nil, nil).Once()
	mockBaggage.On("Create", ctx, mock.AnythingOfType("*entity.Baggage")).Return(nil).Once()

	resp, err := service.CheckIn(ctx, &request.CheckInBaggageRequest{
		TagNumber: "BAG-001",
	})

	assert.NoError(t, err)
	assert.Equal(t, "BAG-001", resp.TagNumber)
	assert.Equal(t, "Checked-in", resp.Status)
	assert.Equal(t, "N/A", resp.LastLocation)
	assert.Nil(t, resp.BookingID)

	mockBaggage.AssertExpectations(t)
}

func TestBaggageService_CheckIn_DuplicateTag(t *testing.T) {
	mockBaggage := &MockBaggageRepository{}
	service := NewBaggageService(mockBaggage, zap.NewNop())

	ctx := context.Background()
	existing := &entity.Baggage{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		TagNumber:  "BAG-001",
		Status:     entity.BaggageStatusCheckedIn,
	}

	mockBaggage.On("FindByTag", ctx, "BAG-001").Return(existing, nil).Once()

	resp, err := service.CheckIn(ctx, &request.CheckInBaggageRequest{
		TagNumber: "BAG-001",
	})

	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "tag_number already exists")
	assert.Nil(t, resp)
	mockBaggage.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBaggageService_LookupByTag_NotFound(t *testing.T) {
	mockBaggage := &MockBaggageRepository{}
	service := NewBaggageService(mockBaggage, zap.NewNop())

	ctx := context.Background()

	mockBaggage.On("FindByTag", ctx, "BAG-404").Return(nil, nil).Once()

	resp, err := service.LookupByTag(ctx, "BAG-404")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, resp)
}

func TestBaggageService_UpdateByTag(t *testing.T) {
	mockBaggage := &MockBaggageRepository{}
	service := NewBaggageService(mockBaggage, zap.NewNop())

	ctx := context.Background()
	baggage := &entity.Baggage{
		BaseSimple:   entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		TagNumber:    "BAG-001",
		Status:       entity.BaggageStatusCheckedIn,
		LastLocation: entity.BaggageLocationUnknown,
	}

	mockBaggage.On("FindByTag", ctx, "BAG-001").Return(baggage, nil).Once()
	mockBaggage.On("Update", ctx, baggage).Return(nil).Once()

	location := "DXB Terminal 3"
	resp, err := service.UpdateByTag(ctx, "BAG-001", &request.UpdateBaggageRequest{
		LastLocation: &location,
	})

	assert.NoError(t, err)
	assert.Equal(t, "DXB Terminal 3", resp.LastLocation)
	// Status was not part of the update
	assert.Equal(t, "Checked-in", resp.Status)

	mockBaggage.AssertExpectations(t)
}
