package adaptor

import (
	"errors"
	"net/http"

	"spaceport-booking/internal/access"
	"spaceport-booking/internal/usecase"
	"spaceport-booking/pkg/apperr"
	"spaceport-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Catalog *CatalogHandler
	Fleet   *FleetHandler
	Flight  *FlightHandler
	Order   *OrderHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Catalog: NewCatalogHandler(service.Catalog, log),
		Fleet:   NewFleetHandler(service.Fleet, log),
		Flight:  NewFlightHandler(service.Flight, log),
		Order:   NewOrderHandler(service.Order, log),
	}
}

// handleServiceError maps the service error kinds onto HTTP statuses.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var (
		validationErr *apperr.Validation
		conflictErr   *apperr.Conflict
		notFoundErr   *apperr.NotFound
		forbiddenErr  *apperr.Forbidden
	)

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" failed - validation", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.As(err, &conflictErr):
		log.Warn(operation+" failed - seat conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.As(err, &notFoundErr):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.As(err, &forbiddenErr):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	default:
		log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// identityFromRequest resolves the caller set by the auth middleware. An
// unauthenticated request yields the anonymous identity.
func identityFromRequest(r *http.Request) access.Identity {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return access.Identity{}
	}

	role, _ := utils.GetRoleFromContext(r.Context())
	return access.Identity{
		UserID: userID,
		Role:   access.Role(role),
	}
}
