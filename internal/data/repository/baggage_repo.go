package repository

import (
	"context"
	"fmt"

	"airport-ops/internal/data/entity"
	"airport-ops/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BaggageRepository interface {
	Create(ctx context.Context, baggage *entity.Baggage) error
	FindByTag(ctx context.Context, tagNumber string) (*entity.Baggage, error)
	Update(ctx context.Context, baggage *entity.Baggage) error
}

type baggageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBaggageRepository(db database.PgxIface, log *zap.Logger) BaggageRepository {
	return &baggageRepository{
		db:  db,
		log: log.With(zap.String("repository", "baggage")),
	}
}

func (r *baggageRepository) Create(ctx context.Context, baggage *entity.Baggage) error {
	query := `
		INSERT INTO baggage (id, tag_number, booking_id, status, last_location, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		baggage.ID,
		baggage.TagNumber,
		baggage.BookingID,
		baggage.Status,
		baggage.LastLocation,
		baggage.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create baggage",
			zap.Error(err),
			zap.String("tag_number", baggage.TagNumber),
		)
		return fmt.Errorf("create baggage %s: %w", baggage.TagNumber, err)
	}

	return nil
}

func (r *baggageRepository) FindByTag(ctx context.Context, tagNumber string) (*entity.Baggage, error) {
	query := `
		SELECT id, tag_number, booking_id, status, last_location, created_at
		FROM baggage
		WHERE tag_number = $1
	`

	var baggage entity.Baggage
	err := r.db.QueryRow(ctx, query, tagNumber).Scan(
		&baggage.ID,
		&baggage.TagNumber,
		&baggage.BookingID,
		&baggage.Status,
		&baggage.LastLocation,
		&baggage.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find baggage by tag",
			zap.Error(err),
			zap.String("tag_number", tagNumber),
		)
		return nil, fmt.Errorf("find baggage by tag %s: %w", tagNumber, err)
	}

	return &baggage, nil
}

func (r *baggageRepository) Update(ctx context.Context, baggage *entity.Baggage) error {
	query := `
		UPDATE baggage
		SET status = $2, last_location = $3
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		baggage.ID,
		baggage.Status,
		baggage.LastLocation,
	)

	if err != nil {
		r.log.Error("Failed to update baggage",
			zap.Error(err),
			zap.String("tag_number", baggage.TagNumber),
		)
		return fmt.Errorf("update baggage %s: %w", baggage.TagNumber, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("baggage %s not found", baggage.TagNumber)
	}

	return nil
}
