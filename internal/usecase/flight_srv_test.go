package usecase

import (
	"context"
	"path/filepath"
	"testing"

	"airport-ops/internal/airports"
	"airport-ops/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// testDirectory loads the sample directory (DEL, BOM, DXB, LHR, JFK) into a
// temp dir.
func testDirectory(t *testing.T) *airports.Directory {
	t.Helper()
	directory, err := airports.Load(filepath.Join(t.TempDir(), "airports.json"), zap.NewNop())
	assert.NoError(t, err)
	return directory
}

func createFlightReq() *request.CreateFlightRequest {
	return &request.CreateFlightRequest{
		Code:          "AI101",
		Source:        "DEL",
		Destination:   "BOM",
		DepartureTime: "2025-01-01 09:00",
		ArrivalTime:   "2025-01-01 11:00",
		TotalSeats:    10,
	}
}

func TestFlightService_CreateFlight_Success(t *testing.T) {
	mockFlights := &MockFlightRepository{}
	service := NewFlightService(mockFlights, testDirectory(t), zap.NewNop())

	ctx := context.Background()

	mockFlights.On("Create", ctx, mock.AnythingOfType("*entity.Flight")).Return(nil).Once()

	resp, err := service.CreateFlight(ctx, createFlightReq())

	assert.NoError(t, err)
	assert.Equal(t, "AI101", resp.Code)
	// A new flight starts full and on time
	assert.Equal(t, 10, resp.TotalSeats)
	assert.Equal(t, 10, resp.AvailableSeats)
	assert.Equal(t, "On Time", resp.Status)

	mockFlights.AssertExpectations(t)
}

func TestFlightService_CreateFlight_ExplicitStatus(t *testing.T) {
	mockFlights := &MockFlightRepository{}
	service := NewFlightService(mockFlights, testDirectory(t), zap.NewNop())

	ctx := context.Background()
	status := "Delayed"
	req := createFlightReq()
	req.Status = &status

	mockFlights.On("Create", ctx, mock.Anything).Return(nil).Once()

	resp, err := service.CreateFlight(ctx, req)

	assert.NoError(t, err)
	assert.Equal(t, "Delayed", resp.Status)
}

func TestFlightService_CreateFlight_UnknownAirport(t *testing.T) {
	mockFlights := &MockFlightRepository{}
	service := NewFlightService(mockFlights, testDirectory(t), zap.NewNop())

	ctx := context.Background()

	req := createFlightReq()
	req.Destination = "XXX"

	resp, err := service.CreateFlight(ctx, req)

	assert.ErrorIs(t, err, ErrInvalidAirport)
	assert.Nil(t, resp)
	mockFlights.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFlightService_CreateFlight_SameRoute(t *testing.T) {
	mockFlights := &MockFlightRepository{}
	service := NewFlightService(mockFlights, testDirectory(t), zap.NewNop())

	req := createFlightReq()
	req.Destination = req.Source

	resp, err := service.CreateFlight(context.Background(), req)

	assert.ErrorIs(t, err, ErrSameRoute)
	assert.Nil(t, resp)
}

func TestFlightService_CreateFlight_MissingFields(t *testing.T) {
	mockFlights := &MockFlightRepository{}
	service := NewFlightService(mockFlights, testDirectory(t), zap.NewNop())

	resp, err := service.CreateFlight(context.Background(), &request.CreateFlightRequest{
		Code: "AI101",
	})

	assert.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, resp)
}

func TestFlightService_UpdateFlight_PartialUpdate(t *testing.T) {
	mockFlights := &MockFlightRepository{}
	service := NewFlightService(mockFlights, testDirectory(t), zap.NewNop())

	ctx := context.Background()
	flight := testFlight(10)

	mockFlights.On("FindByID", ctx, flight.ID).Return(flight, nil).Once()
	mockFlights.On("Update", ctx, flight).Return(nil).Once()

	status := "Delayed"
	resp, err := service.UpdateFlight(ctx, flight.ID.String(), &request.UpdateFlightRequest{
		Status: &status,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Delayed", resp.Status)
	// Untouched fields carry over
	assert.Equal(t, "AI101", resp.Code)
	assert.Equal(t, 10, resp.AvailableSeats)
}

func TestFlightService_UpdateFlight_SeatCountersNotCrossChecked(t *testing.T) {
	mockFlights := &MockFlightRepository{}
	service := NewFlightService(mockFlights, testDirectory(t), zap.NewNop())

	ctx := context.Background()
	flight := testFlight(10)

	mockFlights.On("FindByID", ctx, flight.ID).Return(flight, nil).Once()
	mockFlights.On("Update", ctx, flight).Return(nil).Once()

	// available above total is accepted as-is
	available := 50
	resp, err := service.UpdateFlight(ctx, flight.ID.String(), &request.UpdateFlightRequest{
		AvailableSeats: &available,
	})

	assert.NoError(t, err)
	assert.Equal(t, 50, resp.AvailableSeats)
	assert.Equal(t, 10, resp.TotalSeats)
}

func TestFlightService_UpdateFlight_InvalidAirport(t *testing.T) {
	mockFlights := &MockFlightRepository{}
	service := NewFlightService(mockFlights, testDirectory(t), zap.NewNop())

	ctx := context.Background()
	flight := testFlight(10)

	mockFlights.On("FindByID", ctx, flight.ID).Return(flight, nil).Once()

	bad := "XXX"
	resp, err := service.UpdateFlight(ctx, flight.ID.String(), &request.UpdateFlightRequest{
		Source: &bad,
	})

	assert.ErrorIs(t, err, ErrInvalidAirport)
	assert.Nil(t, resp)
	mockFlights.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestFlightService_DeleteFlight_NotFound(t *testing.T) {
	mockFlights := &MockFlightRepository{}
	service := NewFlightService(mockFlights, testDirectory(t), zap.NewNop())

	ctx := context.Background()
	flightID := uuid.New()

	mockFlights.On("FindByID", ctx, flightID).Return(nil, nil).Once()

	err := service.DeleteFlight(ctx, flightID.String())

	assert.ErrorIs(t, err, ErrNotFound)
	mockFlights.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestFlightService_DeleteFlight_Success(t *testing.T) {
	mockFlights := &MockFlightRepository{}
	service := NewFlightService(mockFlights, testDirectory(t), zap.NewNop())

	ctx := context.Background()
	flight := testFlight(10)

	mockFlights.On("FindByID", ctx, flight.ID).Return(flight, nil).Once()
	mockFlights.On("Delete", ctx, flight.ID).Return(nil).Once()

	err := service.DeleteFlight(ctx, flight.ID.String())

	assert.NoError(t, err)
	mockFlights.AssertExpectations(t)
}
