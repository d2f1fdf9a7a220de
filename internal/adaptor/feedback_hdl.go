package adaptor

import (
	"encoding/json"
	"net/http"

	"airport-ops/internal/dto/request"
	"airport-ops/internal/usecase"
	"airport-ops/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FeedbackHandler struct {
	service usecase.FeedbackService
	log     *zap.Logger
}

func NewFeedbackHandler(service usecase.FeedbackService, log *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		service: service,
		log:     log,
	}
}

// CreateFeedback handles POST /api/feedback
func (h *FeedbackHandler) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	var req request.CreateFeedbackRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	feedback, err := h.service.CreateFeedback(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create feedback")
		return
	}

	utils.ResponseCreated(w, feedback)
}

// ListFeedback handles GET /api/feedback
func (h *FeedbackHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	feedback, err := h.service.ListFeedback(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list feedback")
		return
	}

	utils.ResponseSuccess(w, feedback)
}

// ListUserFeedback handles GET /api/feedback/user/{id}
func (h *FeedbackHandler) ListUserFeedback(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required")
		return
	}

	feedback, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "list user feedback")
		return
	}

	utils.ResponseSuccess(w, feedback)
}
