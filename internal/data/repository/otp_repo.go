package repository

import (
	"context"
	"fmt"

	"airport-ops/internal/data/entity"
	"airport-ops/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OTPRepository interface {
	Create(ctx context.Context, otp *entity.OTPCode) error
	FindLatestUnused(ctx context.Context, phone, code string) (*entity.OTPCode, error)
	MarkAsUsed(ctx context.Context, otpID uuid.UUID) error
}

type otpRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOTPRepository(db database.PgxIface, log *zap.Logger) OTPRepository {
	return &otpRepository{
		db:  db,
		log: log.With(zap.String("repository", "otp")),
	}
}

func (r *otpRepository) Create(ctx context.Context, otp *entity.OTPCode) error {
	query := `
		INSERT INTO otp_codes (id, phone, code, is_used, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		otp.ID,
		otp.Phone,
		otp.Code,
		otp.IsUsed,
		otp.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create OTP",
			zap.Error(err),
			zap.String("phone", otp.Phone),
		)
		return fmt.Errorf("create OTP for %s: %w", otp.Phone, err)
	}

	return nil
}

// FindLatestUnused returns the most recently created unused code matching
// phone and code exactly. Codes never expire; an old unused code stays valid.
func (r *otpRepository) FindLatestUnused(ctx context.Context, phone, code string) (*entity.OTPCode, error) {
	query := `
		SELECT id, phone, code, is_used, created_at
		FROM otp_codes
		WHERE phone = $1
		  AND code = $2
		  AND is_used = false
		ORDER BY created_at DESC
		LIMIT 1
	`

	var otp entity.OTPCode
	err := r.db.QueryRow(ctx, query, phone, code).Scan(
		&otp.ID,
		&otp.Phone,
		&otp.Code,
		&otp.IsUsed,
		&otp.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find unused OTP",
			zap.Error(err),
			zap.String("phone", phone),
		)
		return nil, fmt.Errorf("find unused OTP for %s: %w", phone, err)
	}

	return &otp, nil
}

func (r *otpRepository) MarkAsUsed(ctx context.Context, otpID uuid.UUID) error {
	query := `
		UPDATE otp_codes
		SET is_used = true
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, otpID)
	if err != nil {
		r.log.Error("Failed to mark OTP as used",
			zap.Error(err),
			zap.String("otp_id", otpID.String()),
		)
		return fmt.Errorf("mark OTP %s as used: %w", otpID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("OTP %s not found", otpID.String())
	}

	return nil
}
