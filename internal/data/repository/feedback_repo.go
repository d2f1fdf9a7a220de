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

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	FindAll(ctx context.Context) ([]*entity.Feedback, error)
	// FindAllOldestFirst feeds the CSV export, which dumps rows in
	// submission order.
	FindAllOldestFirst(ctx context.Context) ([]*entity.Feedback, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Feedback, error)
	CountAll(ctx context.Context) (int64, error)
}

type feedbackRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFeedbackRepository(db database.PgxIface, log *zap.Logger) FeedbackRepository {
	return &feedbackRepository{
		db:  db,
		log: log.With(zap.String("repository", "feedback")),
	}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	query := `
		INSERT INTO feedback (id, user_id, message, rating, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		feedback.ID,
		feedback.UserID,
		feedback.Message,
		feedback.Rating,
		feedback.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create feedback",
			zap.Error(err),
			zap.String("user_id", feedback.UserID.String()),
		)
		return fmt.Errorf("create feedback for user %s: %w", feedback.UserID.String(), err)
	}

	return nil
}

func (r *feedbackRepository) FindAll(ctx context.Context) ([]*entity.Feedback, error) {
	return r.findAllOrdered(ctx, "DESC")
}

func (r *feedbackRepository) FindAllOldestFirst(ctx context.Context) ([]*entity.Feedback, error) {
	return r.findAllOrdered(ctx, "ASC")
}

func (r *feedbackRepository) findAllOrdered(ctx context.Context, direction string) ([]*entity.Feedback, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, message, rating, created_at
		FROM feedback
		ORDER BY created_at %s
	`, direction)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list feedback", zap.Error(err))
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()

	return scanFeedbackRows(rows)
}

func (r *feedbackRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Feedback, error) {
	query := `
		SELECT id, user_id, message, rating, created_at
		FROM feedback
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find feedback by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find feedback for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return scanFeedbackRows(rows)
}

func (r *feedbackRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM feedback`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count feedback", zap.Error(err))
		return 0, fmt.Errorf("count feedback: %w", err)
	}

	return count, nil
}

func scanFeedbackRows(rows pgx.Rows) ([]*entity.Feedback, error) {
	var items []*entity.Feedback
	for rows.Next() {
		var fb entity.Feedback
		if err := rows.Scan(
			&fb.ID,
			&fb.UserID,
			&fb.Message,
			&fb.Rating,
			&fb.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan feedback row: %w", err)
		}
		items = append(items, &fb)
	}

	return items, rows.Err()
}
