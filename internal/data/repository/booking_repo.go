package repository

import (
	"context"
	"fmt"

	"airport-ops/internal/data/entity"
	"airport-ops/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// CreateWithSeatDecrement inserts the booking and decrements the flight's
	// available seats in a single transaction.
	CreateWithSeatDecrement(ctx context.Context, booking *entity.Booking) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
	CountAll(ctx context.Context) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

// CreateWithSeatDecrement commits the booking row and the seat counter update
// atomically. A booking without its decrement (or the reverse) is never
// observable.
func (r *bookingRepository) CreateWithSeatDecrement(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin booking transaction", zap.Error(err))
		return fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	updateQuery := `
		UPDATE flights
		SET available_seats = available_seats - $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := tx.Exec(ctx, updateQuery, booking.FlightID, booking.NumSeats)
	if err != nil {
		r.log.Error("Failed to decrement available seats",
			zap.Error(err),
			zap.String("flight_id", booking.FlightID.String()),
			zap.Int("num_seats", booking.NumSeats),
		)
		return fmt.Errorf("decrement seats for flight %s: %w", booking.FlightID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("flight %s not found", booking.FlightID.String())
	}

	insertQuery := `
		INSERT INTO bookings (id, user_id, flight_id, num_seats, status,
		                      base_price, final_price, discount_reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = tx.Exec(ctx, insertQuery,
		booking.ID,
		booking.UserID,
		booking.FlightID,
		booking.NumSeats,
		booking.Status,
		booking.BasePrice,
		booking.FinalPrice,
		booking.DiscountReason,
		booking.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", booking.UserID.String()),
			zap.String("flight_id", booking.FlightID.String()),
		)
		return fmt.Errorf("create booking for user %s: %w", booking.UserID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit booking transaction", zap.Error(err))
		return fmt.Errorf("commit booking transaction: %w", err)
	}

	return nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT id, user_id, flight_id, num_seats, status,
		       base_price, final_price, discount_reason, created_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find bookings by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		if err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.FlightID,
			&booking.NumSeats,
			&booking.Status,
			&booking.BasePrice,
			&booking.FinalPrice,
			&booking.DiscountReason,
			&booking.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, rows.Err()
}

func (r *bookingRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}
