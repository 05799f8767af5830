package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"spaceport-booking/internal/dto/request"
	"spaceport-booking/internal/usecase"
	"spaceport-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxImageSize caps spaceship image uploads at 5 MB.
const maxImageSize = 5 << 20

type FleetHandler struct {
	service usecase.FleetService
	log     *zap.Logger
}

func NewFleetHandler(service usecase.FleetService, log *zap.Logger) *FleetHandler {
	return &FleetHandler{
		service: service,
		log:     log,
	}
}

// ==================== SPACESHIP TYPES ====================

// CreateSpaceshipType handles POST /api/admin/spaceship-types
func (h *FleetHandler) CreateSpaceshipType(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSpaceshipTypeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.CreateSpaceshipType(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create spaceship type")
		return
	}

	utils.ResponseCreated(w, "Spaceship type created successfully", resp)
}

// GetSpaceshipType handles GET /api/spaceship-types/{id}
func (h *FleetHandler) GetSpaceshipType(w http.ResponseWriter, r *http.Request) {
	typeID := chi.URLParam(r, "id")

	resp, err := h.service.GetSpaceshipType(r.Context(), typeID)
	if err != nil {
		handleServiceError(w, h.log, err, "get spaceship type")
		return
	}

	utils.ResponseSuccess(w, "Spaceship type retrieved successfully", resp)
}

// ListSpaceshipTypes handles GET /api/spaceship-types
func (h *FleetHandler) ListSpaceshipTypes(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListSpaceshipTypes(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list spaceship types")
		return
	}

	utils.ResponseSuccess(w, "Spaceship types retrieved successfully", resp)
}

// UpdateSpaceshipType handles PUT /api/admin/spaceship-types/{id}
func (h *FleetHandler) UpdateSpaceshipType(w http.ResponseWriter, r *http.Request) {
	typeID := chi.URLParam(r, "id")

	var req request.UpdateSpaceshipTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpdateSpaceshipType(r.Context(), typeID, &req); err != nil {
		handleServiceError(w, h.log, err, "update spaceship type")
		return
	}

	utils.ResponseSuccess(w, "Spaceship type updated successfully", nil)
}

// DeleteSpaceshipType handles DELETE /api/admin/spaceship-types/{id}
func (h *FleetHandler) DeleteSpaceshipType(w http.ResponseWriter, r *http.Request) {
	typeID := chi.URLParam(r, "id")

	if err := h.service.DeleteSpaceshipType(r.Context(), typeID); err != nil {
		handleServiceError(w, h.log, err, "delete spaceship type")
		return
	}

	utils.ResponseSuccess(w, "Spaceship type deleted successfully", nil)
}

// ==================== CREWS ====================

// CreateCrew handles POST /api/admin/crews
func (h *FleetHandler) CreateCrew(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCrewRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.CreateCrew(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create crew")
		return
	}

	utils.ResponseCreated(w, "Crew member created successfully", resp)
}

// GetCrew handles GET /api/crews/{id}
func (h *FleetHandler) GetCrew(w http.ResponseWriter, r *http.Request) {
	crewID := chi.URLParam(r, "id")

	resp, err := h.service.GetCrew(r.Context(), crewID)
	if err != nil {
		handleServiceError(w, h.log, err, "get crew")
		return
	}

	utils.ResponseSuccess(w, "Crew member retrieved successfully", resp)
}

// ListCrews handles GET /api/crews
func (h *FleetHandler) ListCrews(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListCrews(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list crews")
		return
	}

	utils.ResponseSuccess(w, "Crew members retrieved successfully", resp)
}

// UpdateCrew handles PUT /api/admin/crews/{id}
func (h *FleetHandler) UpdateCrew(w http.ResponseWriter, r *http.Request) {
	crewID := chi.URLParam(r, "id")

	var req request.UpdateCrewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpdateCrew(r.Context(), crewID, &req); err != nil {
		handleServiceError(w, h.log, err, "update crew")
		return
	}

	utils.ResponseSuccess(w, "Crew member updated successfully", nil)
}

// DeleteCrew handles DELETE /api/admin/crews/{id}
func (h *FleetHandler) DeleteCrew(w http.ResponseWriter, r *http.Request) {
	crewID := chi.URLParam(r, "id")

	if err := h.service.DeleteCrew(r.Context(), crewID); err != nil {
		handleServiceError(w, h.log, err, "delete crew")
		return
	}

	utils.ResponseSuccess(w, "Crew member deleted successfully", nil)
}

// ==================== SPACESHIPS ====================

// CreateSpaceship handles POST /api/admin/spaceships
func (h *FleetHandler) CreateSpaceship(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSpaceshipRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.CreateSpaceship(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create spaceship")
		return
	}

	utils.ResponseCreated(w, "Spaceship created successfully", resp)
}

// GetSpaceship handles GET /api/spaceships/{id}
func (h *FleetHandler) GetSpaceship(w http.ResponseWriter, r *http.Request) {
	shipID := chi.URLParam(r, "id")

	resp, err := h.service.GetSpaceship(r.Context(), shipID)
	if err != nil {
		handleServiceError(w, h.log, err, "get spaceship")
		return
	}

	utils.ResponseSuccess(w, "Spaceship retrieved successfully", resp)
}

// ListSpaceships handles GET /api/spaceships?crews=a,b
func (h *FleetHandler) ListSpaceships(w http.ResponseWriter, r *http.Request) {
	var crewIDs []string
	if raw := r.URL.Query().Get("crews"); raw != "" {
		crewIDs = strings.Split(raw, ",")
	}

	resp, err := h.service.ListSpaceships(r.Context(), crewIDs)
	if err != nil {
		handleServiceError(w, h.log, err, "list spaceships")
		return
	}

	utils.ResponseSuccess(w, "Spaceships retrieved successfully", resp)
}

// UpdateSpaceship handles PUT /api/admin/spaceships/{id}
func (h *FleetHandler) UpdateSpaceship(w http.ResponseWriter, r *http.Request) {
	shipID := chi.URLParam(r, "id")

	var req request.UpdateSpaceshipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpdateSpaceship(r.Context(), shipID, &req); err != nil {
		handleServiceError(w, h.log, err, "update spaceship")
		return
	}

	utils.ResponseSuccess(w, "Spaceship updated successfully", nil)
}

// AssignCrews handles PUT /api/admin/spaceships/{id}/crews
func (h *FleetHandler) AssignCrews(w http.ResponseWriter, r *http.Request) {
	shipID := chi.URLParam(r, "id")

	var req request.AssignCrewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.AssignCrews(r.Context(), shipID, &req); err != nil {
		handleServiceError(w, h.log, err, "assign crews")
		return
	}

	utils.ResponseSuccess(w, "Spaceship crew assigned successfully", nil)
}

// UploadImage handles POST /api/admin/spaceships/{id}/image
func (h *FleetHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	shipID := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.ResponseBadRequest(w, "Image file is required", nil)
		return
	}
	defer file.Close()

	path, err := h.service.UploadSpaceshipImage(r.Context(), shipID, header.Filename, file)
	if err != nil {
		handleServiceError(w, h.log, err, "upload spaceship image")
		return
	}

	utils.ResponseSuccess(w, "Spaceship image uploaded successfully", map[string]string{"path": path})
}

// DeleteSpaceship handles DELETE /api/admin/spaceships/{id}
func (h *FleetHandler) DeleteSpaceship(w http.ResponseWriter, r *http.Request) {
	shipID := chi.URLParam(r, "id")

	if err := h.service.DeleteSpaceship(r.Context(), shipID); err != nil {
		handleServiceError(w, h.log, err, "delete spaceship")
		return
	}

	utils.ResponseSuccess(w, "Spaceship deleted successfully", nil)
}
