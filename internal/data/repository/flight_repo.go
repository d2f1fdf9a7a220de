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

type FlightRepository interface {
	Create(ctx context.Context, flight *entity.Flight) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Flight, error)
	FindAll(ctx context.Context) ([]*entity.Flight, error)
	Update(ctx context.Context, flight *entity.Flight) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountAll(ctx context.Context) (int64, error)
}

type flightRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFlightRepository(db database.PgxIface, log *zap.Logger) FlightRepository {
	return &flightRepository{
		db:  db,
		log: log.With(zap.String("repository", "flight")),
	}
}

func (r *flightRepository) Create(ctx context.Context, flight *entity.Flight) error {
	query := `
		INSERT INTO flights (id, code, source, destination, departure_time, arrival_time,
		                     total_seats, available_seats, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		flight.ID,
		flight.Code,
		flight.Source,
		flight.Destination,
		flight.DepartureTime,
		flight.ArrivalTime,
		flight.TotalSeats,
		flight.AvailableSeats,
		flight.Status,
		flight.CreatedAt,
		flight.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create flight",
			zap.Error(err),
			zap.String("code", flight.Code),
		)
		return fmt.Errorf("create flight %s: %w", flight.Code, err)
	}

	return nil
}

func (r *flightRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Flight, error) {
	query := `
		SELECT id, code, source, destination, departure_time, arrival_time,
		       total_seats, available_seats, status, created_at, updated_at
		FROM flights
		WHERE id = $1
	`

	var flight entity.Flight
	err := r.db.QueryRow(ctx, query, id).Scan(
		&flight.ID,
		&flight.Code,
		&flight.Source,
		&flight.Destination,
		&flight.DepartureTime,
		&flight.ArrivalTime,
		&flight.TotalSeats,
		&flight.AvailableSeats,
		&flight.Status,
		&flight.CreatedAt,
		&flight.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find flight by ID",
			zap.Error(err),
			zap.String("flight_id", id.String()),
		)
		return nil, fmt.Errorf("find flight by ID %s: %w", id.String(), err)
	}

	return &flight, nil
}

func (r *flightRepository) FindAll(ctx context.Context) ([]*entity.Flight, error) {
	query := `
		SELECT id, code, source, destination, departure_time, arrival_time,
		       total_seats, available_seats, status, created_at, updated_at
		FROM flights
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list flights", zap.Error(err))
		return nil, fmt.Errorf("list flights: %w", err)
	}
	defer rows.Close()

	var flights []*entity.Flight
	for rows.Next() {
		var flight entity.Flight
		if err := rows.Scan(
			&flight.ID,
			&flight.Code,
			&flight.Source,
			&flight.Destination,
			&flight.DepartureTime,
			&flight.ArrivalTime,
			&flight.TotalSeats,
			&flight.AvailableSeats,
			&flight.Status,
			&flight.CreatedAt,
			&flight.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan flight row: %w", err)
		}
		flights = append(flights, &flight)
	}

	return flights, rows.Err()
}

func (r *flightRepository) Update(ctx context.Context, flight *entity.Flight) error {
	query := `
		UPDATE flights
		SET code = $2, source = $3, destination = $4, departure_time = $5,
		    arrival_time = $6, total_seats = $7, available_seats = $8,
		    status = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		flight.ID,
		flight.Code,
		flight.Source,
		flight.Destination,
		flight.DepartureTime,
		flight.ArrivalTime,
		flight.TotalSeats,
		flight.AvailableSeats,
		flight.Status,
		flight.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update flight",
			zap.Error(err),
			zap.String("flight_id", flight.ID.String()),
		)
		return fmt.Errorf("update flight %s: %w", flight.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("flight %s not found", flight.ID.String())
	}

	return nil
}

// Delete removes the flight row. Existing bookings keep their flight_id;
// orphaned references are tolerated, matching the API contract.
func (r *flightRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM flights WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete flight",
			zap.Error(err),
			zap.String("flight_id", id.String()),
		)
		return fmt.Errorf("delete flight %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("flight %s not found", id.String())
	}

	return nil
}

func (r *flightRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM flights`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count flights", zap.Error(err))
		return 0, fmt.Errorf("count flights: %w", err)
	}

	return count, nil
}
