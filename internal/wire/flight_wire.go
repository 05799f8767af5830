package wire

import (
	"spaceport-booking/internal/adaptor"
	"spaceport-booking/pkg/middleware"
	"spaceport-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireFlight(
	r chi.Router,
	flightHandler *adaptor.FlightHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/spaceflights", flightHandler.ListFlights)
	r.Get("/api/spaceflights/{id}", flightHandler.GetFlight)
	r.Get("/api/spaceflights/{id}/availability", flightHandler.GetAvailability)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.Admin(log))

		r.Post("/api/admin/spaceflights", flightHandler.CreateFlight)
		r.Put("/api/admin/spaceflights/{id}", flightHandler.UpdateFlightTimes)
		r.Delete("/api/admin/spaceflights/{id}", flightHandler.DeleteFlight)
	})
}
