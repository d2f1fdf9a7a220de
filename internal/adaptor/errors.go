package adaptor

import (
	"errors"
	"net/http"

	"airport-ops/internal/usecase"
	"airport-ops/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps the service error taxonomy onto HTTP status codes.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrValidation),
		errors.Is(err, usecase.ErrDuplicateEmail),
		errors.Is(err, usecase.ErrInvalidOTP),
		errors.Is(err, usecase.ErrInvalidAirport),
		errors.Is(err, usecase.ErrSameRoute),
		errors.Is(err, usecase.ErrInsufficientSeats):
		log.Warn(operation+" failed - bad request", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
