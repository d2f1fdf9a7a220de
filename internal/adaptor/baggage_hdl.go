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

type BaggageHandler struct {
	service usecase.BaggageService
	log     *zap.Logger
}

func NewBaggageHandler(service usecase.BaggageService, log *zap.Logger) *BaggageHandler {
	return &BaggageHandler{
		service: service,
		log:     log,
	}
}

// CheckIn handles POST /api/baggage
func (h *BaggageHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req request.CheckInBaggageRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	baggage, err := h.service.CheckIn(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "check in baggage")
		return
	}

	utils.ResponseCreated(w, baggage)
}

// Lookup handles GET /api/baggage/{tag}
func (h *BaggageHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	tag := chi.URLParam(r, "tag")
	if tag == "" {
		utils.ResponseBadRequest(w, "Tag number is required")
		return
	}

	baggage, err := h.service.LookupByTag(r.Context(), tag)
	if err != nil {
		handleServiceError(w, h.log, err, "look up baggage")
		return
	}

	utils.ResponseSuccess(w, baggage)
}

// Update handles PUT /api/baggage/{tag}
func (h *BaggageHandler) Update(w http.ResponseWriter, r *http.Request) {
	tag := chi.URLParam(r, "tag")
	if tag == "" {
		utils.ResponseBadRequest(w, "Tag number is required")
		return
	}

	var req request.UpdateBaggageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	baggage, err := h.service.UpdateByTag(r.Context(), tag, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update baggage")
		return
	}

	utils.ResponseSuccess(w, baggage)
}
