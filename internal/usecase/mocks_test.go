package usecase

import (
	"context"

	"airport-ops/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Mock repositories shared by the service tests.

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountByRole(ctx context.Context, role entity.UserRole) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

type MockOTPRepository struct {
	mock.Mock
}

func (m *MockOTPRepository) Create(ctx context.Context, otp *entity.OTPCode) error {
	args := m.Called(ctx, otp)
	return args.Error(0)
}

func (m *MockOTPRepository) FindLatestUnused(ctx context.Context, phone, code string) (*entity.OTPCode, error) {
	args := m.Called(ctx, phone, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.OTPCode), args.Error(1)
}

func (m *MockOTPRepository) MarkAsUsed(ctx context.Context, otpID uuid.UUID) error {
	args := m.Called(ctx, otpID)
	return args.Error(0)
}

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) Create(ctx context.Context, flight *entity.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Flight), args.Error(1)
}

func (m *MockFlightRepository) FindAll(ctx context.Context) ([]*entity.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.Flight), args.Error(1)
}

func (m *MockFlightRepository) Update(ctx context.Context, flight *entity.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFlightRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateWithSeatDecrement(ctx context.Context, booking *entity.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}

func (m *MockFeedbackRepository) FindAll(ctx context.Context) ([]*entity.Feedback, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) FindAllOldestFirst(ctx context.Context) ([]*entity.Feedback, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Feedback, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*entity.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockBaggageRepository struct {
	mock.Mock
}

func (m *MockBaggageRepository) Create(ctx context.Context, baggage *entity.Baggage) error {
	args := m.Called(ctx, baggage)
	return args.Error(0)
}

func (m *MockBaggageRepository) FindByTag(ctx context.Context, tagNumber string) (*entity.Baggage, error) {
	args := m.Called(ctx, tagNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Baggage), args.Error(1)
}

func (m *MockBaggageRepository) Update(ctx context.Context, baggage *entity.Baggage) error {
	args := m.Called(ctx, baggage)
	return args.Error(0)
}

// MockOTPService mocks the OTP service for auth tests.
type MockOTPService struct {
	mock.Mock
}

func (m *MockOTPService) RequestCode(ctx context.Context, phone string) (string, error) {
	args := m.Called(ctx, phone)
	return args.String(0), args.Error(1)
}

func (m *MockOTPService) ConsumeCode(ctx context.Context, phone, code string) error {
	args := m.Called(ctx, phone, code)
	return args.Error(0)
}
