package response

import (
	"time"

	"airport-ops/internal/data/entity"
)

type FeedbackResponse struct {
	ID        string       `json:"id"`
	User      UserResponse `json:"user"`
	Message   string       `json:"message"`
	Rating    int          `json:"rating"`
	CreatedAt time.Time    `json:"created_at"`
}

func FeedbackToResponse(feedback *entity.Feedback, user *entity.User) FeedbackResponse {
	return FeedbackResponse{
		ID:        feedback.ID.String(),
		User:      UserToResponse(user),
		Message:   feedback.Message,
		Rating:    feedback.Rating,
		CreatedAt: feedback.CreatedAt,
	}
}
