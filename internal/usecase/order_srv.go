package usecase

import (
	"context"
	"time"

	"spaceport-booking/internal/access"
	"spaceport-booking/internal/data/entity"
	"spaceport-booking/internal/data/repository"
	"spaceport-booking/internal/dto/request"
	"spaceport-booking/internal/dto/response"
	"spaceport-booking/pkg/apperr"
	"spaceport-booking/pkg/queue"
	"spaceport-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderService is the reservation engine. CreateOrder is the only
// operation that coordinates between concurrent callers; everything it
// validates is re-checked by the seat uniqueness constraint at commit.
type OrderService interface {
	CreateOrder(ctx context.Context, identity access.Identity, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	GetOrder(ctx context.Context, identity access.Identity, orderID string) (*response.OrderResponse, error)
	ListOrders(ctx context.Context, identity access.Identity, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error)

	// Admin
	DeleteOrder(ctx context.Context, orderID string) error
}

type orderService struct {
	repo      *repository.Repository
	publisher *queue.Publisher
	log       *zap.Logger
}

func NewOrderService(repo *repository.Repository, publisher *queue.Publisher, log *zap.Logger) OrderService {
	return &orderService{
		repo:      repo,
		publisher: publisher,
		log:       log.With(zap.String("service", "order")),
	}
}

// seatKey identifies one seat on one flight for duplicate detection.
type seatKey struct {
	spaceflightID uuid.UUID
	seat          int
}

func (s *orderService) CreateOrder(ctx context.Context, identity access.Identity, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	if !access.CanPerform(identity, access.ActionCreate, access.ResourceOrder) {
		return nil, &apperr.Forbidden{Msg: "not allowed to create orders"}
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create order validation failed", zap.Any("errors", errs))
		return nil, apperr.NewValidation("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	if len(req.Tickets) == 0 {
		return nil, apperr.NewValidation("tickets required")
	}

	// Resolve each distinct flight once: its ship geometry and the seats
	// already committed. The constraint at commit is the authority; this
	// pass exists to fail fast with a precise error.
	flights := make(map[uuid.UUID]*entity.Spaceflight)
	ships := make(map[uuid.UUID]*entity.Spaceship)
	taken := make(map[seatKey]bool)

	for _, ticketReq := range req.Tickets {
		flightID, err := uuid.Parse(ticketReq.SpaceflightID)
		if err != nil {
			return nil, apperr.NewValidation("invalid spaceflight ID %s", ticketReq.SpaceflightID)
		}

		if _, seen := flights[flightID]; seen {
			continue
		}

		flight, err := s.repo.Spaceflight.FindByID(ctx, flightID)
		if err != nil {
			return nil, err
		}
		if flight == nil {
			return nil, &apperr.NotFound{Resource: "spaceflight", ID: flightID.String()}
		}

		ship, err := s.repo.Spaceship.FindByID(ctx, flight.SpaceshipID)
		if err != nil {
			return nil, err
		}
		if ship == nil {
			return nil, &apperr.NotFound{Resource: "spaceship", ID: flight.SpaceshipID.String()}
		}

		soldSeats, err := s.repo.Ticket.FindTakenSeats(ctx, flightID)
		if err != nil {
			return nil, err
		}
		for _, seat := range soldSeats {
			taken[seatKey{spaceflightID: flightID, seat: seat}] = true
		}

		flights[flightID] = flight
		ships[flight.SpaceshipID] = ship
	}

	// Validate every requested seat against the layout, then claim it in
	// the batch-local set so duplicates within one request collide too.
	now := time.Now()
	order := &entity.Order{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID: identity.UserID,
	}

	tickets := make([]*entity.Ticket, len(req.Tickets))
	for i, ticketReq := range req.Tickets {
		flightID, _ := uuid.Parse(ticketReq.SpaceflightID)
		flight := flights[flightID]
		ship := ships[flight.SpaceshipID]

		if ticketReq.Seat < 1 || ticketReq.Seat > ship.NumSeats() {
			return nil, apperr.NewValidation(
				"seat must be in range [1, %d], not %d", ship.NumSeats(), ticketReq.Seat)
		}
		if ticketReq.Row < 1 || ticketReq.Row > ship.Rows {
			return nil, apperr.NewValidation(
				"row must be in range [1, %d], not %d", ship.Rows, ticketReq.Row)
		}

		key := seatKey{spaceflightID: flightID, seat: ticketReq.Seat}
		if taken[key] {
			return nil, &apperr.Conflict{SpaceflightID: flightID, Seat: ticketReq.Seat}
		}
		taken[key] = true

		tickets[i] = &entity.Ticket{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			SpaceflightID: flightID,
			OrderID:       order.ID,
			Row:           ticketReq.Row,
			Seat:          ticketReq.Seat,
		}
	}

	// All-or-nothing: a lost commit race surfaces as Conflict from the
	// repository and nothing is persisted.
	if err := s.repo.Order.CreateWithTickets(ctx, order, tickets); err != nil {
		return nil, err
	}

	s.log.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", identity.UserID.String()),
		zap.Int("ticket_count", len(tickets)),
	)

	s.publishOrderCreated(ctx, order, tickets)

	resp := response.OrderToResponse(order, tickets)
	return &resp, nil
}

func (s *orderService) GetOrder(ctx context.Context, identity access.Identity, orderID string) (*response.OrderResponse, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, apperr.NewValidation("invalid order ID %s", orderID)
	}

	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, &apperr.NotFound{Resource: "order", ID: orderID}
	}

	// Customers see only their own orders.
	if !identity.IsAdmin() && order.UserID != identity.UserID {
		return nil, &apperr.Forbidden{Msg: "not allowed to view this order"}
	}

	tickets, err := s.repo.Ticket.FindByOrderID(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	resp := response.OrderToResponse(order, tickets)
	return &resp, nil
}

func (s *orderService) ListOrders(ctx context.Context, identity access.Identity, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	if !access.CanPerform(identity, access.ActionRead, access.ResourceOrder) {
		return nil, &apperr.Forbidden{Msg: "not allowed to list orders"}
	}

	limit := req.Limit()
	offset := req.Offset()

	var (
		orders []*entity.Order
		total  int64
		err    error
	)

	if identity.IsAdmin() {
		orders, err = s.repo.Order.FindAll(ctx, limit, offset)
		if err != nil {
			return nil, err
		}
		total, err = s.repo.Order.CountAll(ctx)
	} else {
		orders, err = s.repo.Order.FindByUserID(ctx, identity.UserID, limit, offset)
		if err != nil {
			return nil, err
		}
		total, err = s.repo.Order.CountByUserID(ctx, identity.UserID)
	}
	if err != nil {
		return nil, err
	}

	orderResponses := make([]response.OrderResponse, len(orders))
	for i, order := range orders {
		tickets, err := s.repo.Ticket.FindByOrderID(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		orderResponses[i] = response.OrderToResponse(order, tickets)
	}

	return response.NewPaginatedResponse(orderResponses, req.Page, req.PerPage, total), nil
}

// ==================== ADMIN METHODS ====================

func (s *orderService) DeleteOrder(ctx context.Context, orderID string) error {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return apperr.NewValidation("invalid order ID %s", orderID)
	}

	if err := s.repo.Order.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("Order deleted by admin", zap.String("order_id", orderID))
	return nil
}

// ==================== HELPER METHODS ====================

func (s *orderService) publishOrderCreated(ctx context.Context, order *entity.Order, tickets []*entity.Ticket) {
	if s.publisher == nil {
		return
	}

	event := queue.OrderCreatedEvent{
		OrderID:     order.ID.String(),
		UserID:      order.UserID.String(),
		TicketCount: len(tickets),
		CreatedAt:   order.CreatedAt.UTC().Format(time.RFC3339),
	}
	for _, ticket := range tickets {
		event.Tickets = append(event.Tickets, queue.OrderEventSeat{
			SpaceflightID: ticket.SpaceflightID.String(),
			Row:           ticket.Row,
			Seat:          ticket.Seat,
		})
	}

	// Best effort; the order is already committed.
	if err := s.publisher.PublishOrderCreated(ctx, event); err != nil {
		s.log.Warn("Failed to publish order event",
			zap.Error(err),
			zap.String("order_id", order.ID.String()),
		)
	}
}
