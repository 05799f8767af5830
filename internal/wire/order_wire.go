package wire

import (
	"spaceport-booking/internal/adaptor"
	"spaceport-booking/pkg/middleware"
	"spaceport-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	config *utils.Config,
	rdb *redis.Client,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		r.With(middleware.RateLimit(rdb, config.RateLimit.OrdersPerMinute, log)).
			Post("/api/orders", orderHandler.CreateOrder)
		r.Get("/api/orders", orderHandler.ListOrders)
		r.Get("/api/orders/{id}", orderHandler.GetOrder)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.Admin(log))

		r.Delete("/api/admin/orders/{id}", orderHandler.DeleteOrder)
	})
}
