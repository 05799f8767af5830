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

type FlightHandler struct {
	service usecase.FlightService
	log     *zap.Logger
}

func NewFlightHandler(service usecase.FlightService, log *zap.Logger) *FlightHandler {
	return &FlightHandler{
		service: service,
		log:     log,
	}
}

// ListFlights handles GET /api/spaceflights?route_id=...&spaceship_id=...
func (h *FlightHandler) ListFlights(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	resp, err := h.service.ListFlights(r.Context(), query.Get("route_id"), query.Get("spaceship_id"))
	if err != nil {
		handleServiceError(w, h.log, err, "list spaceflights")
		return
	}

	utils.ResponseSuccess(w, "Spaceflights retrieved successfully", resp)
}

// GetFlight handles GET /api/spaceflights/{id}
func (h *FlightHandler) GetFlight(w http.ResponseWriter, r *http.Request) {
	flightID := chi.URLParam(r, "id")

	resp, err := h.service.GetFlight(r.Context(), flightID)
	if err != nil {
		handleServiceError(w, h.log, err, "get spaceflight")
		return
	}

	utils.ResponseSuccess(w, "Spaceflight retrieved successfully", resp)
}

// GetAvailability handles GET /api/spaceflights/{id}/availability
func (h *FlightHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	flightID := chi.URLParam(r, "id")

	resp, err := h.service.GetFlightAvailability(r.Context(), flightID)
	if err != nil {
		handleServiceError(w, h.log, err, "get spaceflight availability")
		return
	}

	utils.ResponseSuccess(w, "Spaceflight availability retrieved successfully", resp)
}

// CreateFlight handles POST /api/admin/spaceflights
func (h *FlightHandler) CreateFlight(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSpaceflightRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.CreateFlight(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create spaceflight")
		return
	}

	utils.ResponseCreated(w, "Spaceflight created successfully", resp)
}

// UpdateFlightTimes handles PUT /api/admin/spaceflights/{id}
func (h *FlightHandler) UpdateFlightTimes(w http.ResponseWriter, r *http.Request) {
	flightID := chi.URLParam(r, "id")

	var req request.UpdateSpaceflightTimesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpdateFlightTimes(r.Context(), flightID, &req); err != nil {
		handleServiceError(w, h.log, err, "update spaceflight times")
		return
	}

	utils.ResponseSuccess(w, "Spaceflight updated successfully", nil)
}

// DeleteFlight handles DELETE /api/admin/spaceflights/{id}
func (h *FlightHandler) DeleteFlight(w http.ResponseWriter, r *http.Request) {
	flightID := chi.URLParam(r, "id")

	if err := h.service.DeleteFlight(r.Context(), flightID); err != nil {
		handleServiceError(w, h.log, err, "delete spaceflight")
		return
	}

	utils.ResponseSuccess(w, "Spaceflight deleted successfully", nil)
}
