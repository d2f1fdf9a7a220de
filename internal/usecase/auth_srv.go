package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"airport-ops/internal/data/entity"
	"airport-ops/internal/data/repository"
	"airport-ops/internal/dto/request"
	"airport-ops/internal/dto/response"
	"airport-ops/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.UserResponse, error)
	ChangePassword(ctx context.Context, req *request.ChangePasswordRequest) error
}

type authService struct {
	users  repository.UserRepository
	otp    OTPService
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	users repository.UserRepository,
	otp OTPService,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		users:  users,
		otp:    otp,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Check email not taken (exact, case-sensitive match)
	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	// 3. Consume the OTP
	if err := s.otp.ConsumeCode(ctx, req.Phone, req.OTP); err != nil {
		return nil, err
	}

	// 4. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 5. Role is decided server-side: the configured owner email becomes
	// admin, everyone else a passenger.
	role := entity.RolePassenger
	if strings.EqualFold(req.Email, s.config.Admin.OwnerEmail) {
		role = entity.RoleAdmin
	}

	// 6. Create user, already verified by the OTP step
	now := time.Now()
	phone := req.Phone
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         role,
		Age:          req.Age,
		Phone:        &phone,
		IsVerified:   true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("role", string(role)),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.UserResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Find user by email
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("find user: %w", err)
	}

	// Unknown user and wrong password produce the same error on purpose.
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	// 3. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) ChangePassword(ctx context.Context, req *request.ChangePasswordRequest) error {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Change password validation failed", zap.Any("errors", errs))
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return fmt.Errorf("%w: invalid user ID format", ErrValidation)
	}

	// 2. Find user
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", req.UserID))
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("user %s: %w", req.UserID, ErrNotFound)
	}

	// 3. Verify the old password
	if !utils.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		s.log.Warn("Incorrect old password", zap.String("user_id", req.UserID))
		return ErrInvalidCredentials
	}

	// 4. Replace the stored hash
	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = hashedPassword
	user.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, user); err != nil {
		s.log.Error("Failed to update password", zap.Error(err), zap.String("user_id", req.UserID))
		return fmt.Errorf("update password: %w", err)
	}

	s.log.Info("Password changed", zap.String("user_id", req.UserID))
	return nil
}
