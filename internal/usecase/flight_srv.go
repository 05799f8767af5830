package usecase

import (
	"context"
	"time"

	"spaceport-booking/internal/data/entity"
	"spaceport-booking/internal/data/repository"
	"spaceport-booking/internal/dto/request"
	"spaceport-booking/internal/dto/response"
	"spaceport-booking/pkg/apperr"
	"spaceport-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FlightService is the flight registry: scheduling plus the availability
// projection over committed tickets.
type FlightService interface {
	GetFlight(ctx context.Context, flightID string) (*response.SpaceflightDetailResponse, error)
	ListFlights(ctx context.Context, routeID, spaceshipID string) ([]response.SpaceflightResponse, error)
	GetFlightAvailability(ctx context.Context, flightID string) (*response.AvailabilityResponse, error)

	// Admin
	CreateFlight(ctx context.Context, req *request.CreateSpaceflightRequest) (*response.SpaceflightResponse, error)
	UpdateFlightTimes(ctx context.Context, flightID string, req *request.UpdateSpaceflightTimesRequest) error
	DeleteFlight(ctx context.Context, flightID string) error
}

type flightService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewFlightService(repo *repository.Repository, log *zap.Logger) FlightService {
	return &flightService{
		repo: repo,
		log:  log.With(zap.String("service", "flight")),
	}
}

func (s *flightService) GetFlight(ctx context.Context, flightID string) (*response.SpaceflightDetailResponse, error) {
	id, err := uuid.Parse(flightID)
	if err != nil {
		return nil, apperr.NewValidation("invalid spaceflight ID %s", flightID)
	}

	flight, err := s.repo.Spaceflight.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if flight == nil {
		return nil, &apperr.NotFound{Resource: "spaceflight", ID: flightID}
	}

	ship, err := s.repo.Spaceship.FindByID(ctx, flight.SpaceshipID)
	if err != nil {
		return nil, err
	}
	if ship == nil {
		return nil, &apperr.NotFound{Resource: "spaceship", ID: flight.SpaceshipID.String()}
	}

	route, err := s.repo.Route.FindByID(ctx, flight.RouteID)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, &apperr.NotFound{Resource: "route", ID: flight.RouteID.String()}
	}

	takenSeats, err := s.repo.Ticket.FindTakenSeats(ctx, id)
	if err != nil {
		return nil, err
	}
	if takenSeats == nil {
		takenSeats = []int{}
	}

	return &response.SpaceflightDetailResponse{
		SpaceflightResponse: response.SpaceflightResponse{
			ID:            flight.ID.String(),
			RouteID:       flight.RouteID.String(),
			SpaceshipID:   flight.SpaceshipID.String(),
			SpaceshipName: ship.Name,
			DepartureTime: flight.DepartureTime,
			ArrivalTime:   flight.ArrivalTime,
			Capacity:      ship.NumSeats(),
		},
		Spaceship:  response.SpaceshipToResponse(ship),
		Route:      response.RouteToResponse(route),
		TakenSeats: takenSeats,
	}, nil
}

// ListFlights orders by flight id ascending; availability reflects
// committed tickets only.
func (s *flightService) ListFlights(ctx context.Context, routeID, spaceshipID string) ([]response.SpaceflightResponse, error) {
	var filter repository.SpaceflightFilter

	if routeID != "" {
		id, err := uuid.Parse(routeID)
		if err != nil {
			return nil, apperr.NewValidation("invalid route ID %s", routeID)
		}
		filter.RouteID = &id
	}
	if spaceshipID != "" {
		id, err := uuid.Parse(spaceshipID)
		if err != nil {
			return nil, apperr.NewValidation("invalid spaceship ID %s", spaceshipID)
		}
		filter.SpaceshipID = &id
	}

	flights, err := s.repo.Spaceflight.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	flightResponses := make([]response.SpaceflightResponse, len(flights))
	for i, flight := range flights {
		flightResponses[i] = response.SpaceflightWithAvailabilityToResponse(flight)
	}

	return flightResponses, nil
}

func (s *flightService) GetFlightAvailability(ctx context.Context, flightID string) (*response.AvailabilityResponse, error) {
	id, err := uuid.Parse(flightID)
	if err != nil {
		return nil, apperr.NewValidation("invalid spaceflight ID %s", flightID)
	}

	flight, err := s.repo.Spaceflight.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if flight == nil {
		return nil, &apperr.NotFound{Resource: "spaceflight", ID: flightID}
	}

	ship, err := s.repo.Spaceship.FindByID(ctx, flight.SpaceshipID)
	if err != nil {
		return nil, err
	}
	if ship == nil {
		return nil, &apperr.NotFound{Resource: "spaceship", ID: flight.SpaceshipID.String()}
	}

	sold, err := s.repo.Spaceflight.CountTickets(ctx, id)
	if err != nil {
		return nil, err
	}

	capacity := ship.NumSeats()

	return &response.AvailabilityResponse{
		SpaceflightID: flightID,
		Capacity:      capacity,
		Sold:          sold,
		Available:     capacity - sold,
	}, nil
}

// ==================== ADMIN METHODS ====================

func (s *flightService) CreateFlight(ctx context.Context, req *request.CreateSpaceflightRequest) (*response.SpaceflightResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create flight validation failed", zap.Any("errors", errs))
		return nil, apperr.NewValidation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if !req.ArrivalTime.After(req.DepartureTime) {
		return nil, apperr.NewValidation("arrival_time must be after departure_time")
	}

	routeID, err := uuid.Parse(req.RouteID)
	if err != nil {
		return nil, apperr.NewValidation("invalid route ID %s", req.RouteID)
	}
	spaceshipID, err := uuid.Parse(req.SpaceshipID)
	if err != nil {
		return nil, apperr.NewValidation("invalid spaceship ID %s", req.SpaceshipID)
	}

	route, err := s.repo.Route.FindByID(ctx, routeID)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, &apperr.NotFound{Resource: "route", ID: req.RouteID}
	}

	ship, err := s.repo.Spaceship.FindByID(ctx, spaceshipID)
	if err != nil {
		return nil, err
	}
	if ship == nil {
		return nil, &apperr.NotFound{Resource: "spaceship", ID: req.SpaceshipID}
	}

	now := time.Now()
	flight := &entity.Spaceflight{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RouteID:       routeID,
		SpaceshipID:   spaceshipID,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
	}

	if err := s.repo.Spaceflight.Create(ctx, flight); err != nil {
		return nil, err
	}

	s.log.Info("Spaceflight created",
		zap.String("spaceflight_id", flight.ID.String()),
		zap.String("route_id", req.RouteID),
		zap.String("spaceship_id", req.SpaceshipID),
	)

	return &response.SpaceflightResponse{
		ID:            flight.ID.String(),
		RouteID:       flight.RouteID.String(),
		SpaceshipID:   flight.SpaceshipID.String(),
		SpaceshipName: ship.Name,
		DepartureTime: flight.DepartureTime,
		ArrivalTime:   flight.ArrivalTime,
		Capacity:      ship.NumSeats(),
	}, nil
}

func (s *flightService) UpdateFlightTimes(ctx context.Context, flightID string, req *request.UpdateSpaceflightTimesRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperr.NewValidation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if !req.ArrivalTime.After(req.DepartureTime) {
		return apperr.NewValidation("arrival_time must be after departure_time")
	}

	id, err := uuid.Parse(flightID)
	if err != nil {
		return apperr.NewValidation("invalid spaceflight ID %s", flightID)
	}

	if err := s.repo.Spaceflight.UpdateTimes(ctx, id, req.DepartureTime, req.ArrivalTime); err != nil {
		return err
	}

	s.log.Info("Spaceflight rescheduled", zap.String("spaceflight_id", flightID))
	return nil
}

func (s *flightService) DeleteFlight(ctx context.Context, flightID string) error {
	id, err := uuid.Parse(flightID)
	if err != nil {
		return apperr.NewValidation("invalid spaceflight ID %s", flightID)
	}

	return s.repo.Spaceflight.Delete(ctx, id)
}
