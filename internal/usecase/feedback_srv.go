package usecase

import (
	"context"
	"fmt"
	"time"

	"airport-ops/internal/data/entity"
	"airport-ops/internal/data/repository"
	"airport-ops/internal/dto/request"
	"airport-ops/internal/dto/response"
	"airport-ops/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FeedbackService interface {
	CreateFeedback(ctx context.Context, req *request.CreateFeedbackRequest) (*response.FeedbackResponse, error)
	ListFeedback(ctx context.Context) ([]response.FeedbackResponse, error)
	ListByUser(ctx context.Context, userID string) ([]response.FeedbackResponse, error)
}

type feedbackService struct {
	feedback repository.FeedbackRepository
	users    repository.UserRepository
	log      *zap.Logger
}

func NewFeedbackService(
	feedback repository.FeedbackRepository,
	users repository.UserRepository,
	log *zap.Logger,
) FeedbackService {
	return &feedbackService{
		feedback: feedback,
		users:    users,
		log:      log.With(zap.String("service", "feedback")),
	}
}

func (s *feedbackService) CreateFeedback(ctx context.Context, req *request.CreateFeedbackRequest) (*response.FeedbackResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create feedback validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", req.UserID, ErrNotFound)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", req.UserID))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", req.UserID, ErrNotFound)
	}

	feedback := &entity.Feedback{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:  userID,
		Message: req.Message,
		Rating:  *req.Rating,
	}

	if err := s.feedback.Create(ctx, feedback); err != nil {
		s.log.Error("Failed to create feedback", zap.Error(err), zap.String("user_id", req.UserID))
		return nil, fmt.Errorf("create feedback: %w", err)
	}

	s.log.Info("Feedback created",
		zap.String("feedback_id", feedback.ID.String()),
		zap.String("user_id", req.UserID),
		zap.Int("rating", feedback.Rating),
	)

	resp := response.FeedbackToResponse(feedback, user)
	return &resp, nil
}

func (s *feedbackService) ListFeedback(ctx context.Context) ([]response.FeedbackResponse, error) {
	items, err := s.feedback.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list feedback", zap.Error(err))
		return nil, fmt.Errorf("list feedback: %w", err)
	}

	return s.embedUsers(ctx, items)
}

func (s *feedbackService) ListByUser(ctx context.Context, userID string) ([]response.FeedbackResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}

	items, err := s.feedback.FindByUserID(ctx, id)
	if err != nil {
		s.log.Error("Failed to list feedback by user", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("list feedback: %w", err)
	}

	return s.embedUsers(ctx, items)
}

// embedUsers assembles feedback DTOs with their author, looking each user up
// once.
func (s *feedbackService) embedUsers(ctx context.Context, items []*entity.Feedback) ([]response.FeedbackResponse, error) {
	usersByID := make(map[uuid.UUID]*entity.User)

	responses := make([]response.FeedbackResponse, 0, len(items))
	for _, fb := range items {
		user, ok := usersByID[fb.UserID]
		if !ok {
			var err error
			user, err = s.users.FindByID(ctx, fb.UserID)
			if err != nil {
				return nil, fmt.Errorf("find feedback user: %w", err)
			}
			usersByID[fb.UserID] = user
		}

		if user == nil {
			continue
		}

		responses = append(responses, response.FeedbackToResponse(fb, user))
	}

	return responses, nil
}
