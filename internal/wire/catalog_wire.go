package wire

import (
	"spaceport-booking/internal/adaptor"
	"spaceport-booking/pkg/middleware"
	"spaceport-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/planets", catalogHandler.ListPlanets)
	r.Get("/api/planets/{id}", catalogHandler.GetPlanet)
	r.Get("/api/spaceports", catalogHandler.ListSpaceports)
	r.Get("/api/spaceports/{id}", catalogHandler.GetSpaceport)
	r.Get("/api/routes", catalogHandler.ListRoutes)
	r.Get("/api/routes/{id}", catalogHandler.GetRoute)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.Admin(log))

		r.Post("/api/admin/planets", catalogHandler.CreatePlanet)
		r.Put("/api/admin/planets/{id}", catalogHandler.UpdatePlanet)
		r.Delete("/api/admin/planets/{id}", catalogHandler.DeletePlanet)

		r.Post("/api/admin/spaceports", catalogHandler.CreateSpaceport)
		r.Delete("/api/admin/spaceports/{id}", catalogHandler.DeleteSpaceport)

		r.Post("/api/admin/routes", catalogHandler.CreateRoute)
		r.Delete("/api/admin/routes/{id}", catalogHandler.DeleteRoute)
	})
}
