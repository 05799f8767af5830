package usecase

import (
	"spaceport-booking/internal/data/repository"
	"spaceport-booking/pkg/queue"
	"spaceport-booking/pkg/utils"

	"go.uber.org/zap"
)

// Service bundles the use cases for wiring.
type Service struct {
	Auth    AuthService
	Catalog CatalogService
	Fleet   FleetService
	Flight  FlightService
	Order   OrderService
}

func NewService(repo *repository.Repository, config *utils.Config, publisher *queue.Publisher, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config.JWT, log),
		Catalog: NewCatalogService(repo, log),
		Fleet:   NewFleetService(repo, config.Upload.Dir, log),
		Flight:  NewFlightService(repo, log),
		Order:   NewOrderService(repo, publisher, log),
	}
}
