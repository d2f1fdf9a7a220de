package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"airport-ops/internal/data/entity"
	"airport-ops/internal/data/repository"
	"airport-ops/internal/dto/response"
	"airport-ops/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultImportPassword = "password123"
	defaultImportRole     = entity.RoleStaff
)

type AdminService interface {
	Summary(ctx context.Context) (*response.SummaryResponse, error)
	// ImportEmployees creates accounts from a CSV of
	// name,email,password,role rows. Bad rows are skipped, never fatal.
	ImportEmployees(ctx context.Context, path string) (*response.ImportResult, error)
	// ExportFeedback returns all feedback rows oldest first, ready for CSV.
	ExportFeedback(ctx context.Context) ([][]string, error)
}

type adminService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAdminService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AdminService {
	return &adminService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) Summary(ctx context.Context) (*response.SummaryResponse, error) {
	totalUsers, err := s.repo.User.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}

	totalPassengers, err := s.repo.User.CountByRole(ctx, entity.RolePassenger)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}

	totalFlights, err := s.repo.Flight.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}

	totalBookings, err := s.repo.Booking.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}

	totalFeedback, err := s.repo.Feedback.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}

	return &response.SummaryResponse{
		TotalUsers:      totalUsers,
		TotalPassengers: totalPassengers,
		TotalEmployees:  totalUsers - totalPassengers,
		TotalFlights:    totalFlights,
		TotalBookings:   totalBookings,
		TotalFeedback:   totalFeedback,
	}, nil
}

func (s *adminService) ImportEmployees(ctx context.Context, path string) (*response.ImportResult, error) {
	absPath := filepath.Join(s.config.App.ImportDir, path)

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s: %w", absPath, ErrNotFound)
		}
		s.log.Error("Failed to open import file", zap.Error(err), zap.String("path", absPath))
		return nil, fmt.Errorf("open import file %s: %w", absPath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: import file has no header row", ErrValidation)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}

	result := &response.ImportResult{}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed rows are skipped like rows with missing fields
			continue
		}

		name := columnValue(row, columns, "name")
		email := columnValue(row, columns, "email")
		if name == "" || email == "" {
			continue
		}

		password := columnValue(row, columns, "password")
		if password == "" {
			password = defaultImportPassword
		}
		role := entity.UserRole(columnValue(row, columns, "role"))
		if role == "" {
			role = defaultImportRole
		}

		existing, err := s.repo.User.FindByEmail(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("check email %s: %w", email, err)
		}
		if existing != nil {
			result.SkippedExisting++
			continue
		}

		hashedPassword, err := utils.HashPassword(password)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", email, err)
		}

		now := time.Now()
		user := &entity.User{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Name:         name,
			Email:        email,
			PasswordHash: hashedPassword,
			Role:         role,
			IsVerified:   true,
		}

		if err := s.repo.User.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("create imported user %s: %w", email, err)
		}
		result.Created++
	}

	s.log.Info("Employees imported",
		zap.String("path", absPath),
		zap.Int("created", result.Created),
		zap.Int("skipped_existing", result.SkippedExisting),
	)

	return result, nil
}

func (s *adminService) ExportFeedback(ctx context.Context) ([][]string, error) {
	items, err := s.repo.Feedback.FindAllOldestFirst(ctx)
	if err != nil {
		return nil, fmt.Errorf("export feedback: %w", err)
	}

	rows := [][]string{
		{"id", "user_name", "user_email", "rating", "message", "created_at"},
	}

	usersByID := make(map[uuid.UUID]*entity.User)

	for _, fb := range items {
		user, ok := usersByID[fb.UserID]
		if !ok {
			user, err = s.repo.User.FindByID(ctx, fb.UserID)
			if err != nil {
				return nil, fmt.Errorf("find feedback user: %w", err)
			}
			usersByID[fb.UserID] = user
		}
		if user == nil {
			continue
		}

		rows = append(rows, []string{
			fb.ID.String(),
			user.Name,
			user.Email,
			fmt.Sprintf("%d", fb.Rating),
			fb.Message,
			fb.CreatedAt.Format(time.RFC3339),
		})
	}

	s.log.Info("Feedback exported", zap.Int("rows", len(rows)-1))

	return rows, nil
}

func columnValue(row []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}
