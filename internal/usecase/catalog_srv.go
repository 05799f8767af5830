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

// CatalogService covers the scheduling topology: planets, spaceports and
// routes. Reads are public; writes go through the admin routes.
type CatalogService interface {
	CreatePlanet(ctx context.Context, req *request.CreatePlanetRequest) (*response.PlanetResponse, error)
	GetPlanet(ctx context.Context, planetID string) (*response.PlanetResponse, error)
	ListPlanets(ctx context.Context) ([]response.PlanetResponse, error)
	UpdatePlanet(ctx context.Context, planetID string, req *request.UpdatePlanetRequest) error
	DeletePlanet(ctx context.Context, planetID string) error

	CreateSpaceport(ctx context.Context, req *request.CreateSpaceportRequest) (*response.SpaceportResponse, error)
	GetSpaceport(ctx context.Context, spaceportID string) (*response.SpaceportResponse, error)
	ListSpaceports(ctx context.Context) ([]response.SpaceportResponse, error)
	DeleteSpaceport(ctx context.Context, spaceportID string) error

	CreateRoute(ctx context.Context, req *request.CreateRouteRequest) (*response.RouteResponse, error)
	GetRoute(ctx context.Context, routeID string) (*response.RouteResponse, error)
	ListRoutes(ctx context.Context) ([]response.RouteResponse, error)
	DeleteRoute(ctx context.Context, routeID string) error
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

// ==================== PLANETS ====================

func (s *catalogService) CreatePlanet(ctx context.Context, req *request.CreatePlanetRequest) (*response.PlanetResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.NewValidation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	planet := &entity.Planet{
		Base: entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name: req.Name,
	}

	if err := s.repo.Planet.Create(ctx, planet); err != nil {
		return nil, err
	}

	s.log.Info("Planet created", zap.String("planet_id", planet.ID.String()), zap.String("name", planet.Name))

	resp := response.PlanetToResponse(planet)
	return &resp, nil
}

func (s *catalogService) GetPlanet(ctx context.Context, planetID string) (*response.PlanetResponse, error) {
	id, err := uuid.Parse(planetID)
	if err != nil {
		return nil, apperr.NewValidation("invalid planet ID %s", planetID)
	}

	planet, err := s.repo.Planet.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if planet == nil {
		return nil, &apperr.NotFound{Resource: "planet", ID: planetID}
	}

	resp := response.PlanetToResponse(planet)
	return &resp, nil
}

func (s *catalogService) ListPlanets(ctx context.Context) ([]response.PlanetResponse, error) {
	planets, err := s.repo.Planet.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	planetResponses := make([]response.PlanetResponse, len(planets))
	for i, planet := range planets {
		planetResponses[i] = response.PlanetToResponse(planet)
	}

	return planetResponses, nil
}

func (s *catalogService) UpdatePlanet(ctx context.Context, planetID string, req *request.UpdatePlanetRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperr.NewValidation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(planetID)
	if err != nil {
		return apperr.NewValidation("invalid planet ID %s", planetID)
	}

	planet := &entity.Planet{
		Base: entity.Base{ID: id, UpdatedAt: time.Now()},
		Name: req.Name,
	}

	return s.repo.Planet.Update(ctx, planet)
}

func (s *catalogService) DeletePlanet(ctx context.Context, planetID string) error {
	id, err := uuid.Parse(planetID)
	if err != nil {
		return apperr.NewValidation("invalid planet ID %s", planetID)
	}

	return s.repo.Planet.Delete(ctx, id)
}

// ==================== SPACEPORTS ====================

func (s *catalogService) CreateSpaceport(ctx context.Context, req *request.CreateSpaceportRequest) (*response.SpaceportResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.NewValidation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	planetID, err := uuid.Parse(req.PlanetID)
	if err != nil {
		return nil, apperr.NewValidation("invalid planet ID %s", req.PlanetID)
	}

	planet, err := s.repo.Planet.FindByID(ctx, planetID)
	if err != nil {
		return nil, err
	}
	if planet == nil {
		return nil, &apperr.NotFound{Resource: "planet", ID: req.PlanetID}
	}

	now := time.Now()
	spaceport := &entity.Spaceport{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:     req.Name,
		PlanetID: planetID,
	}

	if err := s.repo.Spaceport.Create(ctx, spaceport); err != nil {
		return nil, err
	}

	s.log.Info("Spaceport created",
		zap.String("spaceport_id", spaceport.ID.String()),
		zap.String("name", spaceport.Name),
	)

	resp := response.SpaceportToResponse(spaceport)
	resp.PlanetName = planet.Name
	return &resp, nil
}

func (s *catalogService) GetSpaceport(ctx context.Context, spaceportID string) (*response.SpaceportResponse, error) {
	id, err := uuid.Parse(spaceportID)
	if err != nil {
		return nil, apperr.NewValidation("invalid spaceport ID %s", spaceportID)
	}

	spaceport, err := s.repo.Spaceport.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if spaceport == nil {
		return nil, &apperr.NotFound{Resource: "spaceport", ID: spaceportID}
	}

	resp := response.SpaceportToResponse(spaceport)
	return &resp, nil
}

func (s *catalogService) ListSpaceports(ctx context.Context) ([]response.SpaceportResponse, error) {
	spaceports, err := s.repo.Spaceport.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	spaceportResponses := make([]response.SpaceportResponse, len(spaceports))
	for i, sp := range spaceports {
		spaceportResponses[i] = response.SpaceportWithPlanetToResponse(sp)
	}

	return spaceportResponses, nil
}

func (s *catalogService) DeleteSpaceport(ctx context.Context, spaceportID string) error {
	id, err := uuid.Parse(spaceportID)
	if err != nil {
		return apperr.NewValidation("invalid spaceport ID %s", spaceportID)
	}

	return s.repo.Spaceport.Delete(ctx, id)
}

// ==================== ROUTES ====================

func (s *catalogService) CreateRoute(ctx context.Context, req *request.CreateRouteRequest) (*response.RouteResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.NewValidation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	sourceID, err := uuid.Parse(req.SourceID)
	if err != nil {
		return nil, apperr.NewValidation("invalid source spaceport ID %s", req.SourceID)
	}
	destinationID, err := uuid.Parse(req.DestinationID)
	if err != nil {
		return nil, apperr.NewValidation("invalid destination spaceport ID %s", req.DestinationID)
	}
	if sourceID == destinationID {
		return nil, apperr.NewValidation("source and destination must differ")
	}

	for _, portID := range []uuid.UUID{sourceID, destinationID} {
		port, err := s.repo.Spaceport.FindByID(ctx, portID)
		if err != nil {
			return nil, err
		}
		if port == nil {
			return nil, &apperr.NotFound{Resource: "spaceport", ID: portID.String()}
		}
	}

	now := time.Now()
	route := &entity.Route{
		Base:          entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		SourceID:      sourceID,
		DestinationID: destinationID,
		Distance:      req.Distance,
	}

	if err := s.repo.Route.Create(ctx, route); err != nil {
		return nil, err
	}

	s.log.Info("Route created", zap.String("route_id", route.ID.String()))

	resp := response.RouteToResponse(route)
	return &resp, nil
}

func (s *catalogService) GetRoute(ctx context.Context, routeID string) (*response.RouteResponse, error) {
	id, err := uuid.Parse(routeID)
	if err != nil {
		return nil, apperr.NewValidation("invalid route ID %s", routeID)
	}

	route, err := s.repo.Route.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, &apperr.NotFound{Resource: "route", ID: routeID}
	}

	resp := response.RouteToResponse(route)
	return &resp, nil
}

func (s *catalogService) ListRoutes(ctx context.Context) ([]response.RouteResponse, error) {
	routes, err := s.repo.Route.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	routeResponses := make([]response.RouteResponse, len(routes))
	for i, route := range routes {
		routeResponses[i] = response.RouteWithPortsToResponse(route)
	}

	return routeResponses, nil
}

func (s *catalogService) DeleteRoute(ctx context.Context, routeID string) error {
	id, err := uuid.Parse(routeID)
	if err != nil {
		return apperr.NewValidation("invalid route ID %s", routeID)
	}

	return s.repo.Route.Delete(ctx, id)
}
