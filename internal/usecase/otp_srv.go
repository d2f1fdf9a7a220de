package usecase

import (
	"context"
	"fmt"
	"time"

	"airport-ops/internal/data/entity"
	"airport-ops/internal/data/repository"
	"airport-ops/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OTPService interface {
	// RequestCode generates a fresh code for the phone number and stores it
	// unused. The code is returned directly; there is no out-of-band delivery.
	RequestCode(ctx context.Context, phone string) (string, error)

	// ConsumeCode marks the most recent unused matching code as used.
	// Codes never expire: an old unused code stays valid until consumed.
	ConsumeCode(ctx context.Context, phone, code string) error
}

type otpService struct {
	repo   repository.OTPRepository
	config *utils.Config
	log    *zap.Logger
}

func NewOTPService(repo repository.OTPRepository, config *utils.Config, log *zap.Logger) OTPService {
	return &otpService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "otp")),
	}
}

func (s *otpService) RequestCode(ctx context.Context, phone string) (string, error) {
	if phone == "" {
		return "", fmt.Errorf("%w: phone is required", ErrValidation)
	}

	code := utils.GenerateOTP(s.config.OTP.Length)

	otp := &entity.OTPCode{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Phone:  phone,
		Code:   code,
		IsUsed: false,
	}

	if err := s.repo.Create(ctx, otp); err != nil {
		s.log.Error("Failed to save OTP", zap.Error(err), zap.String("phone", phone))
		return "", fmt.Errorf("generate OTP: %w", err)
	}

	s.log.Info("OTP generated",
		zap.String("phone", phone),
		zap.String("otp_code", code),
	)

	return code, nil
}

func (s *otpService) ConsumeCode(ctx context.Context, phone, code string) error {
	otp, err := s.repo.FindLatestUnused(ctx, phone, code)
	if err != nil {
		s.log.Error("Failed to look up OTP", zap.Error(err), zap.String("phone", phone))
		return fmt.Errorf("look up OTP: %w", err)
	}
	if otp == nil {
		return ErrInvalidOTP
	}

	if err := s.repo.MarkAsUsed(ctx, otp.ID); err != nil {
		s.log.Error("Failed to mark OTP as used",
			zap.Error(err),
			zap.String("otp_id", otp.ID.String()),
		)
		return fmt.Errorf("consume OTP: %w", err)
	}

	s.log.Info("OTP consumed",
		zap.String("phone", phone),
		zap.String("otp_id", otp.ID.String()),
	)

	return nil
}
