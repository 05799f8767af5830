package wire

import (
	"net/http"

	"spaceport-booking/internal/adaptor"
	"spaceport-booking/internal/data/repository"
	"spaceport-booking/internal/usecase"
	"spaceport-booking/pkg/middleware"
	"spaceport-booking/pkg/queue"
	"spaceport-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App holds the wired application.
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes. publisher and rdb
// may be nil; the order pipeline then runs without events or rate
// limiting.
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	publisher *queue.Publisher,
	rdb *redis.Client,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, config, publisher, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, rdb, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	rdb *redis.Client,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth)
	wireCatalog(r, handler.Catalog, config, logger)
	wireFleet(r, handler.Fleet, config, logger)
	wireFlight(r, handler.Flight, config, logger)
	wireOrder(r, handler.Order, config, rdb, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
