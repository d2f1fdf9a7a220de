// internal/wire/wire.go
package wire

import (
	"net/http"

	"airport-ops/internal/adaptor"
	"airport-ops/internal/airports"
	"airport-ops/internal/data/repository"
	"airport-ops/internal/usecase"
	"airport-ops/pkg/middleware"
	"airport-ops/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, directory *airports.Directory, config *utils.Config, logger *zap.Logger) *App {
	// Initialize services dan handlers
	service := usecase.NewService(repo, directory, config, logger)
	handler := adaptor.NewHandler(service, directory, logger)

	// Setup router
	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAirport(r, handler.Airport)
	wireAuth(r, handler.Auth)
	wireUser(r, handler.User)
	wireFlight(r, handler.Flight)
	wireBooking(r, handler.Booking)
	wireFeedback(r, handler.Feedback)
	wireBaggage(r, handler.Baggage)
	wireAdmin(r, handler.Admin)

	// Root endpoint
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		utils.ResponseSuccess(w, map[string]string{
			"message": "Airport operations API running",
			"status":  "ok",
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
