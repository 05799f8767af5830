package adaptor

import (
	"encoding/json"
	"net/http"

	"spaceport-booking/internal/dto/request"
	"spaceport-booking/internal/usecase"
	"spaceport-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log,
	}
}

// ==================== PLANETS ====================

// CreatePlanet handles POST /api/admin/planets
func (h *CatalogHandler) CreatePlanet(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlanetRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.CreatePlanet(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create planet")
		return
	}

	utils.ResponseCreated(w, "Planet created successfully", resp)
}

// GetPlanet handles GET /api/planets/{id}
func (h *CatalogHandler) GetPlanet(w http.ResponseWriter, r *http.Request) {
	planetID := chi.URLParam(r, "id")

	resp, err := h.service.GetPlanet(r.Context(), planetID)
	if err != nil {
		handleServiceError(w, h.log, err, "get planet")
		return
	}

	utils.ResponseSuccess(w, "Planet retrieved successfully", resp)
}

// ListPlanets handles GET /api/planets
func (h *CatalogHandler) ListPlanets(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListPlanets(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list planets")
		return
	}

	utils.ResponseSuccess(w, "Planets retrieved successfully", resp)
}

// UpdatePlanet handles PUT /api/admin/planets/{id}
func (h *CatalogHandler) UpdatePlanet(w http.ResponseWriter, r *http.Request) {
	planetID := chi.URLParam(r, "id")

	var req request.UpdatePlanetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpdatePlanet(r.Context(), planetID, &req); err != nil {
		handleServiceError(w, h.log, err, "update planet")
		return
	}

	utils.ResponseSuccess(w, "Planet updated successfully", nil)
}

// DeletePlanet handles DELETE /api/admin/planets/{id}
func (h *CatalogHandler) DeletePlanet(w http.ResponseWriter, r *http.Request) {
	planetID := chi.URLParam(r, "id")

	if err := h.service.DeletePlanet(r.Context(), planetID); err != nil {
		handleServiceError(w, h.log, err, "delete planet")
		return
	}

	utils.ResponseSuccess(w, "Planet deleted successfully", nil)
}

// ==================== SPACEPORTS ====================

// CreateSpaceport handles POST /api/admin/spaceports
func (h *CatalogHandler) CreateSpaceport(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSpaceportRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.CreateSpaceport(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create spaceport")
		return
	}

	utils.ResponseCreated(w, "Spaceport created successfully", resp)
}

// GetSpaceport handles GET /api/spaceports/{id}
func (h *CatalogHandler) GetSpaceport(w http.ResponseWriter, r *http.Request) {
	spaceportID := chi.URLParam(r, "id")

	resp, err := h.service.GetSpaceport(r.Context(), spaceportID)
	if err != nil {
		handleServiceError(w, h.log, err, "get spaceport")
		return
	}

	utils.ResponseSuccess(w, "Spaceport retrieved successfully", resp)
}

// ListSpaceports handles GET /api/spaceports
func (h *CatalogHandler) ListSpaceports(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListSpaceports(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list spaceports")
		return
	}

	utils.ResponseSuccess(w, "Spaceports retrieved successfully", resp)
}

// DeleteSpaceport handles DELETE /api/admin/spaceports/{id}
func (h *CatalogHandler) DeleteSpaceport(w http.ResponseWriter, r *http.Request) {
	spaceportID := chi.URLParam(r, "id")

	if err := h.service.DeleteSpaceport(r.Context(), spaceportID); err != nil {
		handleServiceError(w, h.log, err, "delete spaceport")
		return
	}

	utils.ResponseSuccess(w, "Spaceport deleted successfully", nil)
}

// ==================== ROUTES ====================

// CreateRoute handles POST /api/admin/routes
func (h *CatalogHandler) CreateRoute(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRouteRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.CreateRoute(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create route")
		return
	}

	utils.ResponseCreated(w, "Route created successfully", resp)
}

// GetRoute handles GET /api/routes/{id}
func (h *CatalogHandler) GetRoute(w http.ResponseWriter, r *http.Request) {
	routeID := chi.URLParam(r, "id")

	resp, err := h.service.GetRoute(r.Context(), routeID)
	if err != nil {
		handleServiceError(w, h.log, err, "get route")
		return
	}

	utils.ResponseSuccess(w, "Route retrieved successfully", resp)
}

// ListRoutes handles GET /api/routes
func (h *CatalogHandler) ListRoutes(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListRoutes(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list routes")
		return
	}

	utils.ResponseSuccess(w, "Routes retrieved successfully", resp)
}

// DeleteRoute handles DELETE /api/admin/routes/{id}
func (h *CatalogHandler) DeleteRoute(w http.ResponseWriter, r *http.Request) {
	routeID := chi.URLParam(r, "id")

	if err := h.service.DeleteRoute(r.Context(), routeID); err != nil {
		handleServiceError(w, h.log, err, "delete route")
		return
	}

	utils.ResponseSuccess(w, "Route deleted successfully", nil)
}
