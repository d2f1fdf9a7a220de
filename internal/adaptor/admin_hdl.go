package adaptor

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"

	"airport-ops/internal/dto/request"
	"airport-ops/internal/usecase"
	"airport-ops/pkg/utils"

	"go.uber.org/zap"
)

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log,
	}
}

// Summary handles GET /api/admin/summary
func (h *AdminHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "admin summary")
		return
	}

	utils.ResponseSuccess(w, summary)
}

// ImportEmployees handles POST /api/admin/import-employees
func (h *AdminHandler) ImportEmployees(w http.ResponseWriter, r *http.Request) {
	var req request.ImportEmployeesRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "path is required")
		return
	}

	result, err := h.service.ImportEmployees(r.Context(), req.Path)
	if err != nil {
		// A bad path is a client mistake here, not a missing resource.
		if errors.Is(err, usecase.ErrNotFound) {
			h.log.Warn("Import file not found", zap.Error(err))
			utils.ResponseBadRequest(w, err.Error())
			return
		}
		handleServiceError(w, h.log, err, "import employees")
		return
	}

	utils.ResponseSuccess(w, result)
}

// ExportFeedback handles GET /api/admin/feedback-export
func (h *AdminHandler) ExportFeedback(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.ExportFeedback(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "export feedback")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=feedback.csv")

	writer := csv.NewWriter(w)
	if err := writer.WriteAll(rows); err != nil {
		h.log.Error("Failed to write feedback CSV", zap.Error(err))
	}
}
