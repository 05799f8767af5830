package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"spaceport-booking/internal/access"
	"spaceport-booking/internal/data/entity"
	"spaceport-booking/internal/dto/request"
	"spaceport-booking/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// seedFlight creates a ship with the given layout and one flight on it,
// returning the flight ID.
func seedFlight(t *testing.T, store *memStore, rows, seatsInRow int) uuid.UUID {
	t.Helper()

	now := time.Now()
	ship := &entity.Spaceship{
		Base:       entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:       "Aurora",
		Rows:       rows,
		SeatsInRow: seatsInRow,
		TypeID:     uuid.New(),
	}
	flight := &entity.Spaceflight{
		Base:          entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		RouteID:       uuid.New(),
		SpaceshipID:   ship.ID,
		DepartureTime: now.Add(24 * time.Hour),
		ArrivalTime:   now.Add(30 * time.Hour),
	}

	store.ships[ship.ID] = ship
	store.flights[flight.ID] = flight
	return flight.ID
}

func customer() access.Identity {
	return access.Identity{UserID: uuid.New(), Role: access.RoleCustomer}
}

func newOrderServiceForTest(store *memStore) OrderService {
	return NewOrderService(newMemRepository(store), nil, zap.NewNop())
}

func TestCreateOrderRejectsAnonymous(t *testing.T) {
	store := newMemStore()
	flightID := seedFlight(t, store, 10, 6)
	svc := newOrderServiceForTest(store)

	_, err := svc.CreateOrder(context.Background(), access.Identity{}, &request.CreateOrderRequest{
		Tickets: []request.TicketRequest{{SpaceflightID: flightID.String(), Row: 1, Seat: 1}},
	})

	var forbidden *apperr.Forbidden
	if !errors.As(err, &forbidden) {
		t.Fatalf("expected Forbidden, got %v", err)
	}
}

func TestCreateOrderRejectsEmptyTickets(t *testing.T) {
	store := newMemStore()
	seedFlight(t, store, 10, 6)
	svc := newOrderServiceForTest(store)

	_, err := svc.CreateOrder(context.Background(), customer(), &request.CreateOrderRequest{})

	var validation *apperr.Validation
	if !errors.As(err, &validation) {
		t.Fatalf("expected Validation, got %v", err)
	}
	if len(store.orders) != 0 {
		t.Fatalf("expected no orders persisted, got %d", len(store.orders))
	}
}

func TestCreateOrderSeatBounds(t *testing.T) {
	tests := []struct {
		name string
		row  int
		seat int
	}{
		{"seat past capacity", 1, 61},
		{"seat zero", 1, 0},
		{"seat negative", 1, -3},
		{"row past layout", 11, 5},
		{"row zero", 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			flightID := seedFlight(t, store, 10, 6)
			svc := newOrderServiceForTest(store)

			_, err := svc.CreateOrder(context.Background(), customer(), &request.CreateOrderRequest{
				Tickets: []request.TicketRequest{{SpaceflightID: flightID.String(), Row: tt.row, Seat: tt.seat}},
			})

			var validation *apperr.Validation
			if !errors.As(err, &validation) {
				t.Fatalf("expected Validation, got %v", err)
			}
			if len(store.tickets) != 0 {
				t.Fatalf("expected no tickets persisted, got %d", len(store.tickets))
			}
		})
	}
}

// A 10x6 ship seats 60; seat 60 is the last valid one.
func TestCreateOrderSeatAtCapacityBoundary(t *testing.T) {
	store := newMemStore()
	flightID := seedFlight(t, store, 10, 6)
	svc := newOrderServiceForTest(store)

	resp, err := svc.CreateOrder(context.Background(), customer(), &request.CreateOrderRequest{
		Tickets: []request.TicketRequest{{SpaceflightID: flightID.String(), Row: 10, Seat: 60}},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if len(resp.Tickets) != 1 || resp.Tickets[0].Seat != 60 {
		t.Fatalf("unexpected tickets in response: %+v", resp.Tickets)
	}
}

func TestCreateOrderUnknownFlight(t *testing.T) {
	store := newMemStore()
	svc := newOrderServiceForTest(store)

	_, err := svc.CreateOrder(context.Background(), customer(), &request.CreateOrderRequest{
		Tickets: []request.TicketRequest{{SpaceflightID: uuid.New().String(), Row: 1, Seat: 1}},
	})

	var notFound *apperr.NotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestCreateOrderDuplicateSeatInBatch(t *testing.T) {
	store := newMemStore()
	flightID := seedFlight(t, store, 10, 6)
	svc := newOrderServiceForTest(store)

	_, err := svc.CreateOrder(context.Background(), customer(), &request.CreateOrderRequest{
		Tickets: []request.TicketRequest{
			{SpaceflightID: flightID.String(), Row: 1, Seat: 5},
			{SpaceflightID: flightID.String(), Row: 2, Seat: 5},
		},
	})

	var conflict *apperr.Conflict
	if !errors.As(err, &conflict) {
		t.Fatalf("expected Conflict, got %v", err)
	}
	if conflict.Seat != 5 {
		t.Fatalf("expected conflict on seat 5, got %d", conflict.Seat)
	}
	// All-or-nothing: the first ticket must not survive the failed batch.
	if len(store.tickets) != 0 || len(store.orders) != 0 {
		t.Fatalf("expected nothing persisted, got %d tickets, %d orders",
			len(store.tickets), len(store.orders))
	}
}

func TestCreateOrderSeatAlreadySold(t *testing.T) {
	store := newMemStore()
	flightID := seedFlight(t, store, 10, 6)
	svc := newOrderServiceForTest(store)
	ctx := context.Background()

	first := &request.CreateOrderRequest{
		Tickets: []request.TicketRequest{{SpaceflightID: flightID.String(), Row: 1, Seat: 5}},
	}
	if _, err := svc.CreateOrder(ctx, customer(), first); err != nil {
		t.Fatalf("first order: %v", err)
	}

	_, err := svc.CreateOrder(ctx, customer(), first)
	var conflict *apperr.Conflict
	if !errors.As(err, &conflict) {
		t.Fatalf("expected Conflict on resold seat, got %v", err)
	}
	if conflict.SpaceflightID != flightID || conflict.Seat != 5 {
		t.Fatalf("conflict names wrong seat: %+v", conflict)
	}
	if len(store.tickets) != 1 {
		t.Fatalf("expected exactly 1 ticket, got %d", len(store.tickets))
	}
}

func TestCreateOrderConcurrentSameSeat(t *testing.T) {
	store := newMemStore()
	flightID := seedFlight(t, store, 10, 6)
	svc := newOrderServiceForTest(store)

	req := func() *request.CreateOrderRequest {
		return &request.CreateOrderRequest{
			Tickets: []request.TicketRequest{{SpaceflightID: flightID.String(), Row: 3, Seat: 17}},
		}
	}

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateOrder(context.Background(), customer(), req())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		switch {
		case err == nil:
			successes++
		default:
			var conflict *apperr.Conflict
			if !errors.As(err, &conflict) {
				t.Fatalf("unexpected error kind: %v", err)
			}
			conflicts++
		}
	}

	if successes != 1 || conflicts != 1 {
		t.Fatalf("expected exactly one winner, got %d successes, %d conflicts", successes, conflicts)
	}
	if len(store.tickets) != 1 {
		t.Fatalf("expected 1 committed ticket, got %d", len(store.tickets))
	}
}

func TestCreateOrderReducesAvailability(t *testing.T) {
	store := newMemStore()
	flightID := seedFlight(t, store, 10, 6)
	orderSvc := newOrderServiceForTest(store)
	flightSvc := NewFlightService(newMemRepository(store), zap.NewNop())
	ctx := context.Background()

	_, err := orderSvc.CreateOrder(ctx, customer(), &request.CreateOrderRequest{
		Tickets: []request.TicketRequest{
			{SpaceflightID: flightID.String(), Row: 1, Seat: 1},
			{SpaceflightID: flightID.String(), Row: 1, Seat: 2},
			{SpaceflightID: flightID.String(), Row: 1, Seat: 3},
		},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	avail, err := flightSvc.GetFlightAvailability(ctx, flightID.String())
	if err != nil {
		t.Fatalf("GetFlightAvailability: %v", err)
	}
	if avail.Capacity != 60 || avail.Sold != 3 || avail.Available != 57 {
		t.Fatalf("unexpected availability: %+v", avail)
	}
}

func TestGetOrderOwnership(t *testing.T) {
	store := newMemStore()
	flightID := seedFlight(t, store, 10, 6)
	svc := newOrderServiceForTest(store)
	ctx := context.Background()

	owner := customer()
	resp, err := svc.CreateOrder(ctx, owner, &request.CreateOrderRequest{
		Tickets: []request.TicketRequest{{SpaceflightID: flightID.String(), Row: 1, Seat: 1}},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if _, err := svc.GetOrder(ctx, owner, resp.ID); err != nil {
		t.Fatalf("owner should read own order: %v", err)
	}

	_, err = svc.GetOrder(ctx, customer(), resp.ID)
	var forbidden *apperr.Forbidden
	if !errors.As(err, &forbidden) {
		t.Fatalf("expected Forbidden for another customer, got %v", err)
	}

	admin := access.Identity{UserID: uuid.New(), Role: access.RoleAdmin}
	if _, err := svc.GetOrder(ctx, admin, resp.ID); err != nil {
		t.Fatalf("admin should read any order: %v", err)
	}
}

func TestListOrdersScopedToCustomer(t *testing.T) {
	store := newMemStore()
	flightID := seedFlight(t, store, 10, 6)
	svc := newOrderServiceForTest(store)
	ctx := context.Background()

	alice := customer()
	bob := customer()

	for seat := 1; seat <= 3; seat++ {
		identity := alice
		if seat == 3 {
			identity = bob
		}
		_, err := svc.CreateOrder(ctx, identity, &request.CreateOrderRequest{
			Tickets: []request.TicketRequest{{SpaceflightID: flightID.String(), Row: 1, Seat: seat}},
		})
		if err != nil {
			t.Fatalf("seed order seat %d: %v", seat, err)
		}
	}

	page, err := svc.ListOrders(ctx, alice, &request.PaginatedRequest{Page: 1, PerPage: 10})
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(page.Data) != 2 || page.Pagination.Total != 2 {
		t.Fatalf("alice should see 2 orders, got %d (total %d)", len(page.Data), page.Pagination.Total)
	}
	for _, order := range page.Data {
		if order.UserID != alice.UserID.String() {
			t.Fatalf("leaked foreign order %s", order.ID)
		}
	}

	admin := access.Identity{UserID: uuid.New(), Role: access.RoleAdmin}
	all, err := svc.ListOrders(ctx, admin, &request.PaginatedRequest{Page: 1, PerPage: 10})
	if err != nil {
		t.Fatalf("ListOrders admin: %v", err)
	}
	if all.Pagination.Total != 3 {
		t.Fatalf("admin should see 3 orders, got total %d", all.Pagination.Total)
	}
}

func TestDeleteOrderRemovesTickets(t *testing.T) {
	store := newMemStore()
	flightID := seedFlight(t, store, 10, 6)
	svc := newOrderServiceForTest(store)
	ctx := context.Background()

	resp, err := svc.CreateOrder(ctx, customer(), &request.CreateOrderRequest{
		Tickets: []request.TicketRequest{
			{SpaceflightID: flightID.String(), Row: 1, Seat: 1},
			{SpaceflightID: flightID.String(), Row: 1, Seat: 2},
		},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if err := svc.DeleteOrder(ctx, resp.ID); err != nil {
		t.Fatalf("DeleteOrder: %v", err)
	}
	if len(store.orders) != 0 || len(store.tickets) != 0 {
		t.Fatalf("expected cascade delete, got %d orders, %d tickets",
			len(store.orders), len(store.tickets))
	}

	// The freed seats are sellable again.
	if _, err := svc.CreateOrder(ctx, customer(), &request.CreateOrderRequest{
		Tickets: []request.TicketRequest{{SpaceflightID: flightID.String(), Row: 1, Seat: 1}},
	}); err != nil {
		t.Fatalf("reselling freed seat: %v", err)
	}
}
