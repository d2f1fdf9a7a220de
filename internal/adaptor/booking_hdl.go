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

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, booking)
}

// ListUserBookings handles GET /api/bookings/user/{id}
func (h *BookingHandler) ListUserBookings(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required")
		return
	}

	bookings, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, bookings)
}
