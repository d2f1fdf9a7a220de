package adaptor

import (
	"net/http"

	"airport-ops/internal/airports"
	"airport-ops/pkg/utils"

	"go.uber.org/zap"
)

type AirportHandler struct {
	directory *airports.Directory
	log       *zap.Logger
}

func NewAirportHandler(directory *airports.Directory, log *zap.Logger) *AirportHandler {
	return &AirportHandler{
		directory: directory,
		log:       log,
	}
}

// List handles GET /api/airports
func (h *AirportHandler) List(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, h.directory.List())
}
