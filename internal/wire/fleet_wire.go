package wire

import (
	"spaceport-booking/internal/adaptor"
	"spaceport-booking/pkg/middleware"
	"spaceport-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireFleet(
	r chi.Router,
	fleetHandler *adaptor.FleetHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/spaceship-types", fleetHandler.ListSpaceshipTypes)
	r.Get("/api/spaceship-types/{id}", fleetHandler.GetSpaceshipType)
	r.Get("/api/crews", fleetHandler.ListCrews)
	r.Get("/api/crews/{id}", fleetHandler.GetCrew)
	r.Get("/api/spaceships", fleetHandler.ListSpaceships)
	r.Get("/api/spaceships/{id}", fleetHandler.GetSpaceship)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.Admin(log))

		r.Post("/api/admin/spaceship-types", fleetHandler.CreateSpaceshipType)
		r.Put("/api/admin/spaceship-types/{id}", fleetHandler.UpdateSpaceshipType)
		r.Delete("/api/admin/spaceship-types/{id}", fleetHandler.DeleteSpaceshipType)

		r.Post("/api/admin/crews", fleetHandler.CreateCrew)
		r.Put("/api/admin/crews/{id}", fleetHandler.UpdateCrew)
		r.Delete("/api/admin/crews/{id}", fleetHandler.DeleteCrew)

		r.Post("/api/admin/spaceships", fleetHandler.CreateSpaceship)
		r.Put("/api/admin/spaceships/{id}", fleetHandler.UpdateSpaceship)
		r.Put("/api/admin/spaceships/{id}/crews", fleetHandler.AssignCrews)
		r.Post("/api/admin/spaceships/{id}/image", fleetHandler.UploadImage)
		r.Delete("/api/admin/spaceships/{id}", fleetHandler.DeleteSpaceship)
	})
}
