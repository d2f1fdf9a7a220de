package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"airport-ops/internal/data/repository"
	"airport-ops/internal/dto/request"
	"airport-ops/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetUser(ctx context.Context, userID string) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *request.UpdateProfileRequest) (*response.UserResponse, error)
}

type userService struct {
	users repository.UserRepository
	log   *zap.Logger
}

func NewUserService(users repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		users: users,
		log:   log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetUser(ctx context.Context, userID string) (*response.UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}

	// Only name and age are updatable. Absent fields stay untouched.
	if req.Name != nil {
		user.Name = *req.Name
	}

	if req.Age != nil {
		age, clear, err := parseAge(req.Age)
		if err != nil {
			return nil, err
		}
		if clear {
			user.Age = nil
		} else {
			user.Age = age
		}
	}

	user.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, user); err != nil {
		s.log.Error("Failed to update profile", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.log.Info("Profile updated", zap.String("user_id", userID))

	resp := response.UserToResponse(user)
	return &resp, nil
}

// parseAge interprets the raw age value from a partial update. An explicit
// null or empty string clears the age; otherwise the value must parse as an
// integer (bare or quoted).
func parseAge(raw json.RawMessage) (age *int, clear bool, err error) {
	trimmed := bytes.TrimSpace(raw)

	if string(trimmed) == "null" || string(trimmed) == `""` {
		return nil, true, nil
	}

	var n int
	if err := json.Unmarshal(trimmed, &n); err == nil {
		return &n, false, nil
	}

	var str string
	if err := json.Unmarshal(trimmed, &str); err == nil {
		if n, convErr := strconv.Atoi(str); convErr == nil {
			return &n, false, nil
		}
	}

	return nil, false, fmt.Errorf("%w: age must be a number", ErrValidation)
}
