package usecase

import (
	"context"
	"io"
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

// FleetService manages ship types, crews and the spaceships themselves.
// Seat geometry (rows, seats_in_row) is immutable after creation so that
// sold tickets can never point past the hull.
type FleetService interface {
	CreateSpaceshipType(ctx context.Context, req *request.CreateSpaceshipTypeRequest) (*response.SpaceshipTypeResponse, error)
	GetSpaceshipType(ctx context.Context, typeID string) (*response.SpaceshipTypeResponse, error)
	ListSpaceshipTypes(ctx context.Context) ([]response.SpaceshipTypeResponse, error)
	UpdateSpaceshipType(ctx context.Context, typeID string, req *request.UpdateSpaceshipTypeRequest) error
	DeleteSpaceshipType(ctx context.Context, typeID string) error

	CreateCrew(ctx context.Context, req *request.CreateCrewRequest) (*response.CrewResponse, error)
	GetCrew(ctx context.Context, crewID string) (*response.CrewResponse, error)
	ListCrews(ctx context.Context) ([]response.CrewResponse, error)
	UpdateCrew(ctx context.Context, crewID string, req *request.UpdateCrewRequest) error
	DeleteCrew(ctx context.Context, crewID string) error

	CreateSpaceship(ctx context.Context, req *request.CreateSpaceshipRequest) (*response.SpaceshipResponse, error)
	GetSpaceship(ctx context.Context, shipID string) (*response.SpaceshipResponse, error)
	// ListSpaceships filters by crew membership when crewIDs is non-empty.
	ListSpaceships(ctx context.Context, crewIDs []string) ([]response.SpaceshipResponse, error)
	UpdateSpaceship(ctx context.Context, shipID string, req *request.UpdateSpaceshipRequest) error
	AssignCrews(ctx context.Context, shipID string, req *request.AssignCrewsRequest) error
	UploadSpaceshipImage(ctx context.Context, shipID, originalName string, file io.Reader) (string, error)
	DeleteSpaceship(ctx context.Context, shipID string) error
}

type fleetService struct {
	repo      *repository.Repository
	uploadDir string
	log       *zap.Logger
}

func NewFleetService(repo *repository.Repository, uploadDir string, log *zap.Logger) FleetService {
	return &fleetService{
		repo:      repo,
		uploadDir: uploadDir,
		log:       log.With(zap.String("service", "fleet")),
	}
}

// ==================== SPACESHIP TYPES ====================

func (s *fleetService) CreateSpaceshipType(ctx context.Context, req *request.CreateSpaceshipTypeRequest) (*response.SpaceshipTypeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.NewValidation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	shipType := &entity.SpaceshipType{
		Base: entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name: req.Name,
	}

	if err := s.repo.SpaceshipType.Create(ctx, shipType); err != nil {
		return nil, err
	}

	s.log.Info("Spaceship type created",
		zap.String("type_id", shipType.ID.String()),
		zap.String("name", shipType.Name),
	)

	resp := response.SpaceshipTypeToResponse(shipType)
	return &resp, nil
}

func (s *fleetService) GetSpaceshipType(ctx context.Context, typeID string) (*response.SpaceshipTypeResponse, error) {
	id, err := uuid.Parse(typeID)
	if err != nil {
		return nil, apperr.NewValidation("invalid spaceship type ID %s", typeID)
	}

	shipType, err := s.repo.SpaceshipType.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shipType == nil {
		return nil, &apperr.NotFound{Resource: "spaceship type", ID: typeID}
	}

	resp := response.SpaceshipTypeToResponse(shipType)
	return &resp, nil
}

func (s *fleetService) ListSpaceshipTypes(ctx context.Context) ([]response.SpaceshipTypeResponse, error) {
	types, err := s.repo.SpaceshipType.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	typeResponses := make([]response.SpaceshipTypeResponse, len(types))
	for i, shipType := range types {
		typeResponses[i] = response.SpaceshipTypeToResponse(shipType)
	}

	return typeResponses, nil
}

func (s *fleetService) UpdateSpaceshipType(ctx context.Context, typeID string, req *request.UpdateSpaceshipTypeRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperr.NewValidation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(typeID)
	if err != nil {
		return apperr.NewValidation("invalid spaceship type ID %s", typeID)
	}

	shipType := &entity.SpaceshipType{
		Base: entity.Base{ID: id, UpdatedAt: time.Now()},
		Name: req.Name,
	}

	return s.repo.SpaceshipType.Update(ctx, shipType)
}

func (s *fleetService) DeleteSpaceshipType(ctx context.Context, typeID string) error {
	id, err := uuid.Parse(typeID)
	if err != nil {
		return apperr.NewValidation("invalid spaceship type ID %s", typeID)
	}

	return s.repo.SpaceshipType.Delete(ctx, id)
}

// ==================== CREWS ====================

func (s *fleetService) CreateCrew(ctx context.Context, req *request.CreateCrewRequest) (*response.CrewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.NewValidation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	crew := &entity.Crew{
		Base:      entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	if err := s.repo.Crew.Create(ctx, crew); err != nil {
		return nil, err
	}

	s.log.Info("Crew member created",
		zap.String("crew_id", crew.ID.String()),
		zap.String("full_name", crew.FullName()),
	)

	resp := response.CrewToResponse(crew)
	return &resp, nil
}

func (s *fleetService) GetCrew(ctx context.Context, crewID string) (*response.CrewResponse, error) {
	id, err := uuid.Parse(crewID)
	if err != nil {
		return nil, apperr.NewValidation("invalid crew ID %s", crewID)
	}

	crew, err := s.repo.Crew.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if crew == nil {
		return nil, &apperr.NotFound{Resource: "crew", ID: crewID}
	}

	resp := response.CrewToResponse(crew)
	return &resp, nil
}

func (s *fleetService) ListCrews(ctx context.Context) ([]response.CrewResponse, error) {
	crews, err := s.repo.Crew.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	crewResponses := make([]response.CrewResponse, len(crews))
	for i, crew := range crews {
		crewResponses[i] = response.CrewToResponse(crew)
	}

	return crewResponses, nil
}

func (s *fleetService) UpdateCrew(ctx context.Context, crewID string, req *request.UpdateCrewRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperr.NewValidation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(crewID)
	if err != nil {
		return apperr.NewValidation("invalid crew ID %s", crewID)
	}

	crew := &entity.Crew{
		Base:      entity.Base{ID: id, UpdatedAt: time.Now()},
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	return s.repo.Crew.Update(ctx, crew)
}

func (s *fleetService) DeleteCrew(ctx context.Context, crewID string) error {
	id, err := uuid.Parse(crewID)
	if err != nil {
		return apperr.NewValidation("invalid crew ID %s", crewID)
	}

	return s.repo.Crew.Delete(ctx, id)
}

// ==================== SPACESHIPS ====================

func (s *fleetService) CreateSpaceship(ctx context.Context, req *request.CreateSpaceshipRequest) (*response.SpaceshipResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.NewValidation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	typeID, err := uuid.Parse(req.TypeID)
	if err != nil {
		return nil, apperr.NewValidation("invalid spaceship type ID %s", req.TypeID)
	}

	shipType, err := s.repo.SpaceshipType.FindByID(ctx, typeID)
	if err != nil {
		return nil, err
	}
	if shipType == nil {
		return nil, &apperr.NotFound{Resource: "spaceship type", ID: req.TypeID}
	}

	crewIDs, err := s.resolveCrewIDs(ctx, req.CrewIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ship := &entity.Spaceship{
		Base:       entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:       req.Name,
		Rows:       req.Rows,
		SeatsInRow: req.SeatsInRow,
		TypeID:     typeID,
	}

	if err := s.repo.Spaceship.Create(ctx, ship); err != nil {
		return nil, err
	}

	if len(crewIDs) > 0 {
		if err := s.repo.SpaceshipCrew.Replace(ctx, ship.ID, crewIDs); err != nil {
			return nil, err
		}
	}

	s.log.Info("Spaceship created",
		zap.String("spaceship_id", ship.ID.String()),
		zap.String("name", ship.Name),
		zap.Int("num_seats", ship.NumSeats()),
	)

	resp := response.SpaceshipToResponse(ship)
	resp.TypeName = shipType.Name
	return &resp, nil
}

func (s *fleetService) GetSpaceship(ctx context.Context, shipID string) (*response.SpaceshipResponse, error) {
	id, err := uuid.Parse(shipID)
	if err != nil {
		return nil, apperr.NewValidation("invalid spaceship ID %s", shipID)
	}

	ship, err := s.repo.Spaceship.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ship == nil {
		return nil, &apperr.NotFound{Resource: "spaceship", ID: shipID}
	}

	resp := response.SpaceshipToResponse(ship)

	if shipType, err := s.repo.SpaceshipType.FindByID(ctx, ship.TypeID); err == nil && shipType != nil {
		resp.TypeName = shipType.Name
	}

	crewIDs, err := s.repo.SpaceshipCrew.FindCrewIDsByShip(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, crewID := range crewIDs {
		crew, err := s.repo.Crew.FindByID(ctx, crewID)
		if err != nil {
			return nil, err
		}
		if crew != nil {
			resp.Crews = append(resp.Crews, response.CrewToResponse(crew))
		}
	}

	return &resp, nil
}

func (s *fleetService) ListSpaceships(ctx context.Context, crewIDs []string) ([]response.SpaceshipResponse, error) {
	crewFilter := make([]uuid.UUID, 0, len(crewIDs))
	for _, raw := range crewIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, apperr.NewValidation("invalid crew ID %s", raw)
		}
		crewFilter = append(crewFilter, id)
	}

	ships, err := s.repo.Spaceship.FindAll(ctx, crewFilter)
	if err != nil {
		return nil, err
	}

	shipResponses := make([]response.SpaceshipResponse, len(ships))
	for i, ship := range ships {
		shipResponses[i] = response.SpaceshipToResponse(ship)
	}

	return shipResponses, nil
}

func (s *fleetService) UpdateSpaceship(ctx context.Context, shipID string, req *request.UpdateSpaceshipRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperr.NewValidation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(shipID)
	if err != nil {
		return apperr.NewValidation("invalid spaceship ID %s", shipID)
	}

	typeID, err := uuid.Parse(req.TypeID)
	if err != nil {
		return apperr.NewValidation("invalid spaceship type ID %s", req.TypeID)
	}

	shipType, err := s.repo.SpaceshipType.FindByID(ctx, typeID)
	if err != nil {
		return err
	}
	if shipType == nil {
		return &apperr.NotFound{Resource: "spaceship type", ID: req.TypeID}
	}

	ship := &entity.Spaceship{
		Base:   entity.Base{ID: id, UpdatedAt: time.Now()},
		Name:   req.Name,
		TypeID: typeID,
	}

	return s.repo.Spaceship.Update(ctx, ship)
}

func (s *fleetService) AssignCrews(ctx context.Context, shipID string, req *request.AssignCrewsRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperr.NewValidation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(shipID)
	if err != nil {
		return apperr.NewValidation("invalid spaceship ID %s", shipID)
	}

	ship, err := s.repo.Spaceship.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if ship == nil {
		return &apperr.NotFound{Resource: "spaceship", ID: shipID}
	}

	crewIDs, err := s.resolveCrewIDs(ctx, req.CrewIDs)
	if err != nil {
		return err
	}

	if err := s.repo.SpaceshipCrew.Replace(ctx, id, crewIDs); err != nil {
		return err
	}

	s.log.Info("Spaceship crew assigned",
		zap.String("spaceship_id", shipID),
		zap.Int("crew_count", len(crewIDs)),
	)
	return nil
}

func (s *fleetService) UploadSpaceshipImage(ctx context.Context, shipID, originalName string, file io.Reader) (string, error) {
	id, err := uuid.Parse(shipID)
	if err != nil {
		return "", apperr.NewValidation("invalid spaceship ID %s", shipID)
	}

	ship, err := s.repo.Spaceship.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	if ship == nil {
		return "", &apperr.NotFound{Resource: "spaceship", ID: shipID}
	}

	path := utils.SpaceshipImagePath(s.uploadDir, ship.Name, originalName)
	if err := utils.SaveUploadedFile(file, path); err != nil {
		s.log.Error("Failed to save spaceship image",
			zap.Error(err),
			zap.String("spaceship_id", shipID),
		)
		return "", apperr.NewStorage("save spaceship image", err)
	}

	if err := s.repo.Spaceship.UpdateImage(ctx, id, path); err != nil {
		return "", err
	}

	s.log.Info("Spaceship image uploaded",
		zap.String("spaceship_id", shipID),
		zap.String("path", path),
	)
	return path, nil
}

func (s *fleetService) DeleteSpaceship(ctx context.Context, shipID string) error {
	id, err := uuid.Parse(shipID)
	if err != nil {
		return apperr.NewValidation("invalid spaceship ID %s", shipID)
	}

	return s.repo.Spaceship.Delete(ctx, id)
}

// resolveCrewIDs parses and existence-checks every requested crew member.
func (s *fleetService) resolveCrewIDs(ctx context.Context, raw []string) ([]uuid.UUID, error) {
	crewIDs := make([]uuid.UUID, 0, len(raw))
	for _, rawID := range raw {
		id, err := uuid.Parse(rawID)
		if err != nil {
			return nil, apperr.NewValidation("invalid crew ID %s", rawID)
		}
		crew, err := s.repo.Crew.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if crew == nil {
			return nil, &apperr.NotFound{Resource: "crew", ID: rawID}
		}
		crewIDs = append(crewIDs, id)
	}
	return crewIDs, nil
}
