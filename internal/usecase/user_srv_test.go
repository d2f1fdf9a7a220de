package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"airport-ops/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestUserService_GetUser_NotFound(t *testing.T) {
	mockUsers := &MockUserRepository{}
	service := NewUserService(mockUsers, zap.NewNop())

	ctx := context.Background()
	userID := uuid.New()

	mockUsers.On("FindByID", ctx, userID).Return(nil, nil).Once()

	resp, err := service.GetUser(ctx, userID.String())

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, resp)
}

func TestUserService_GetUser_BadID(t *testing.T) {
	mockUsers := &MockUserRepository{}
	service := NewUserService(mockUsers, zap.NewNop())

	resp, err := service.GetUser(context.Background(), "not-a-uuid")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, resp)
	mockUsers.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUserService_UpdateProfile_NameOnly(t *testing.T) {
	mockUsers := &MockUserRepository{}
	service := NewUserService(mockUsers, zap.NewNop())

	ctx := context.Background()
	age := 30
	user := testUser("dana@example.com")
	user.Age = &age

	mockUsers.On("FindByID", ctx, user.ID).Return(user, nil).Once()
	mockUsers.On("Update", ctx, user).Return(nil).Once()

	newName := "Dana Q"
	resp, err := service.UpdateProfile(ctx, user.ID.String(), &request.UpdateProfileRequest{
		Name: &newName,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Dana Q", resp.Name)
	// An absent age field leaves the stored age untouched
	assert.NotNil(t, resp.Age)
	assert.Equal(t, 30, *resp.Age)
}

func TestUserService_UpdateProfile_AgeVariants(t *testing.T) {
	testCases := []struct {
		name        string
		rawAge      string
		expectErr   bool
		expectAge   *int
		expectClear bool
	}{
		{name: "bare integer", rawAge: `25`, expectAge: intPtr(25)},
		{name: "quoted integer", rawAge: `"42"`, expectAge: intPtr(42)},
		{name: "null clears", rawAge: `null`, expectClear: true},
		{name: "empty string clears", rawAge: `""`, expectClear: true},
		{name: "non-numeric string", rawAge: `"abc"`, expectErr: true},
		{name: "float", rawAge: `25.5`, expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockUsers := &MockUserRepository{}
			service := NewUserService(mockUsers, zap.NewNop())

			ctx := context.Background()
			oldAge := 99
			user := testUser("dana@example.com")
			user.Age = &oldAge

			mockUsers.On("FindByID", ctx, user.ID).Return(user, nil).Once()
			if !tc.expectErr {
				mockUsers.On("Update", ctx, user).Return(nil).Once()
			}

			resp, err := service.UpdateProfile(ctx, user.ID.String(), &request.UpdateProfileRequest{
				Age: json.RawMessage(tc.rawAge),
			})

			if tc.expectErr {
				assert.ErrorIs(t, err, ErrValidation)
				assert.Nil(t, resp)
				mockUsers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
				return
			}

			assert.NoError(t, err)
			if tc.expectClear {
				assert.Nil(t, resp.Age)
			} else {
				assert.NotNil(t, resp.Age)
				assert.Equal(t, *tc.expectAge, *resp.Age)
			}
		})
	}
}

func intPtr(n int) *int {
	return &n
}
