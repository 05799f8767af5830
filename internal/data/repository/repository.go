package repository

import (
	"spaceport-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User          UserRepository
	SpaceshipType SpaceshipTypeRepository
	Crew          CrewRepository
	Spaceship     SpaceshipRepository
	SpaceshipCrew SpaceshipCrewRepository
	Planet        PlanetRepository
	Spaceport     SpaceportRepository
	Route         RouteRepository
	Spaceflight   SpaceflightRepository
	Order         OrderRepository
	Ticket        TicketRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:          NewUserRepository(db, log),
		SpaceshipType: NewSpaceshipTypeRepository(db, log),
		Crew:          NewCrewRepository(db, log),
		Spaceship:     NewSpaceshipRepository(db, log),
		SpaceshipCrew: NewSpaceshipCrewRepository(db, log),
		Planet:        NewPlanetRepository(db, log),
		Spaceport:     NewSpaceportRepository(db, log),
		Route:         NewRouteRepository(db, log),
		Spaceflight:   NewSpaceflightRepository(db, log),
		Order:         NewOrderRepository(db, log),
		Ticket:        NewTicketRepository(db, log),
	}
}
