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

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log,
	}
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	identity := identityFromRequest(r)
	if !identity.IsAuthenticated() {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.CreateOrder(r.Context(), identity, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create order")
		return
	}

	utils.ResponseCreated(w, "Order created successfully", resp)
}

// GetOrder handles GET /api/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	identity := identityFromRequest(r)
	if !identity.IsAuthenticated() {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	orderID := chi.URLParam(r, "id")

	resp, err := h.service.GetOrder(r.Context(), identity, orderID)
	if err != nil {
		handleServiceError(w, h.log, err, "get order")
		return
	}

	utils.ResponseSuccess(w, "Order retrieved successfully", resp)
}

// ListOrders handles GET /api/orders?page=...&per_page=...
// Customers see their own orders; admins see everyone's.
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	identity := identityFromRequest(r)
	if !identity.IsAuthenticated() {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 5),
	}

	resp, err := h.service.ListOrders(r.Context(), identity, req)
	if err != nil {
		handleServiceError(w, h.log, err, "list orders")
		return
	}

	utils.ResponseSuccess(w, "Orders retrieved successfully", resp)
}

// DeleteOrder handles DELETE /api/admin/orders/{id}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	if err := h.service.DeleteOrder(r.Context(), orderID); err != nil {
		handleServiceError(w, h.log, err, "delete order")
		return
	}

	utils.ResponseSuccess(w, "Order deleted successfully", nil)
}
