package adaptor

import (
	"encoding/json"
	"net/http"

	"airport-ops/internal/dto/request"
	"airport-ops/internal/dto/response"
	"airport-ops/internal/usecase"
	"airport-ops/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FlightHandler struct {
	service usecase.FlightService
	log     *zap.Logger
}

func NewFlightHandler(service usecase.FlightService, log *zap.Logger) *FlightHandler {
	return &FlightHandler{
		service: service,
		log:     log,
	}
}

// ListFlights handles GET /api/flights
func (h *FlightHandler) ListFlights(w http.ResponseWriter, r *http.Request) {
	flights, err := h.service.ListFlights(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list flights")
		return
	}

	utils.ResponseSuccess(w, flights)
}

// CreateFlight handles POST /api/flights
func (h *FlightHandler) CreateFlight(w http.ResponseWriter, r *http.Request) {
	var req request.CreateFlightRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	flight, err := h.service.CreateFlight(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create flight")
		return
	}

	utils.ResponseCreated(w, flight)
}

// UpdateFlight handles PUT /api/flights/{id}
func (h *FlightHandler) UpdateFlight(w http.ResponseWriter, r *http.Request) {
	flightID := chi.URLParam(r, "id")
	if flightID == "" {
		utils.ResponseBadRequest(w, "Flight ID is required")
		return
	}

	var req request.UpdateFlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	flight, err := h.service.UpdateFlight(r.Context(), flightID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update flight")
		return
	}

	utils.ResponseSuccess(w, flight)
}

// DeleteFlight handles DELETE /api/flights/{id}
func (h *FlightHandler) DeleteFlight(w http.ResponseWriter, r *http.Request) {
	flightID := chi.URLParam(r, "id")
	if flightID == "" {
		utils.ResponseBadRequest(w, "Flight ID is required")
		return
	}

	if err := h.service.DeleteFlight(r.Context(), flightID); err != nil {
		handleServiceError(w, h.log, err, "delete flight")
		return
	}

	utils.ResponseSuccess(w, response.MessageResponse{Message: "Deleted"})
}
