package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"airport-ops/internal/data/entity"
	"airport-ops/internal/data/repository"
	"airport-ops/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newAdminTestService(t *testing.T, users *MockUserRepository, flights *MockFlightRepository, bookings *MockBookingRepository, feedback *MockFeedbackRepository) (AdminService, string) {
	t.Helper()
	importDir := t.TempDir()
	repo := &repository.Repository{
		User:     users,
		Flight:   flights,
		Booking:  bookings,
		Feedback: feedback,
	}
	config := &utils.Config{
		App: utils.AppConfig{ImportDir: importDir},
	}
	return NewAdminService(repo, config, zap.NewNop()), importDir
}

func TestAdminService_Summary(t *testing.T) {
	mockUsers := &MockUserRepository{}
	mockFlights := &MockFlightRepository{}
	mockBookings := &MockBookingRepository{}
	mockFeedback := &MockFeedbackRepository{}
	service, _ := newAdminTestService(t, mockUsers, mockFlights, mockBookings, mockFeedback)

	ctx := context.Background()

	mockUsers.On("CountAll", ctx).Return(int64(12), nil).Once()
	mockUsers.On("CountByRole", ctx, entity.RolePassenger).Return(int64(9), nil).Once()
	mockFlights.On("CountAll", ctx).Return(int64(4), nil).Once()
	mockBookings.On("CountAll", ctx).Return(int64(20), nil).Once()
	mockFeedback.On("CountAll", ctx).Return(int64(7), nil).Once()

	summary, err := service.Summary(ctx)

	assert.NoError(t, err)
	assert.Equal(t, int64(12), summary.TotalUsers)
	assert.Equal(t, int64(9), summary.TotalPassengers)
	// Everyone who is not a passenger counts as an employee
	assert.Equal(t, int64(3), summary.TotalEmployees)
	assert.Equal(t, int64(4), summary.TotalFlights)
	assert.Equal(t, int64(20), summary.TotalBookings)
	assert.Equal(t, int64(7), summary.TotalFeedback)
}

func TestAdminService_ImportEmployees(t *testing.T) {
	mockUsers := &MockUserRepository{}
	mockFlights := &MockFlightRepository{}
	mockBookings := &MockBookingRepository{}
	mockFeedback := &MockFeedbackRepository{}
	service, importDir := newAdminTestService(t, mockUsers, mockFlights, mockBookings, mockFeedback)

	csvContent := "name,email,password,role\n" +
		"Alice,alice@ops.test,s3cret,admin\n" +
		"Bob,bob@ops.test,,\n" +
		"Carol,carol@ops.test,pw,staff\n" +
		",missing-name@ops.test,pw,staff\n"
	err := os.WriteFile(filepath.Join(importDir, "employees.csv"), []byte(csvContent), 0644)
	assert.NoError(t, err)

	ctx := context.Background()

	mockUsers.On("FindByEmail", ctx, "alice@ops.test").Return(nil, nil).Once()
	mockUsers.On("FindByEmail", ctx, "bob@ops.test").Return(nil, nil).Once()
	// Carol already has an account
	mockUsers.On("FindByEmail", ctx, "carol@ops.test").Return(testUser("carol@ops.test"), nil).Once()
	mockUsers.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil).Times(2)

	result, err := service.ImportEmployees(ctx, "employees.csv")

	assert.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.SkippedExisting)

	// Bob had no password and no role in the file
	var bob *entity.User
	for _, call := range mockUsers.Calls {
		if call.Method != "Create" {
			continue
		}
		user := call.Arguments.Get(1).(*entity.User)
		if user.Email == "bob@ops.test" {
			bob = user
		}
	}
	assert.NotNil(t, bob)
	assert.Equal(t, entity.RoleStaff, bob.Role)
	assert.True(t, utils.CheckPasswordHash("password123", bob.PasswordHash))
	assert.True(t, bob.IsVerified)

	mockUsers.AssertExpectations(t)
}

func TestAdminService_ImportEmployees_FileMissing(t *testing.T) {
	mockUsers := &MockUserRepository{}
	mockFlights := &MockFlightRepository{}
	mockBookings := &MockBookingRepository{}
	mockFeedback := &MockFeedbackRepository{}
	service, _ := newAdminTestService(t, mockUsers, mockFlights, mockBookings, mockFeedback)

	result, err := service.ImportEmployees(context.Background(), "no-such-file.csv")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, result)
}

func TestAdminService_ExportFeedback(t *testing.T) {
	mockUsers := &MockUserRepository{}
	mockFlights := &MockFlightRepository{}
	mockBookings := &MockBookingRepository{}
	mockFeedback := &MockFeedbackRepository{}
	service, _ := newAdminTestService(t, mockUsers, mockFlights, mockBookings, mockFeedback)

	ctx := context.Background()
	user := testUser("dana@example.com")
	older := &entity.Feedback{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)},
		UserID:     user.ID,
		Message:    "Smooth check-in",
		Rating:     5,
	}
	newer := &entity.Feedback{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)},
		UserID:     user.ID,
		Message:    "Lost my bag",
		Rating:     1,
	}

	mockFeedback.On("FindAllOldestFirst", ctx).Return([]*entity.Feedback{older, newer}, nil).Once()
	// The user is looked up once and cached
	mockUsers.On("FindByID", ctx, user.ID).Return(user, nil).Once()

	rows, err := service.ExportFeedback(ctx)

	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, []string{"id", "user_name", "user_email", "rating", "message", "created_at"}, rows[0])
	assert.Equal(t, older.ID.String(), rows[1][0])
	assert.Equal(t, "5", rows[1][3])
	assert.Equal(t, "Smooth check-in", rows[1][4])
	assert.Equal(t, newer.ID.String(), rows[2][0])

	mockUsers.AssertExpectations(t)
}
