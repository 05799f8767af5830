package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"spaceport-booking/internal/data/entity"
	"spaceport-booking/internal/dto/request"
	"spaceport-booking/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func seedRoute(store *memStore) uuid.UUID {
	now := time.Now()
	route := &entity.Route{
		Base:          entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		SourceID:      uuid.New(),
		DestinationID: uuid.New(),
		Distance:      42,
	}
	store.routes[route.ID] = route
	return route.ID
}

func seedShip(store *memStore, rows, seatsInRow int) uuid.UUID {
	now := time.Now()
	ship := &entity.Spaceship{
		Base:       entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:       "Meridian",
		Rows:       rows,
		SeatsInRow: seatsInRow,
		TypeID:     uuid.New(),
	}
	store.ships[ship.ID] = ship
	return ship.ID
}

func TestCreateFlightRejectsBadTimes(t *testing.T) {
	store := newMemStore()
	routeID := seedRoute(store)
	shipID := seedShip(store, 5, 4)
	svc := NewFlightService(newMemRepository(store), zap.NewNop())

	departure := time.Now().Add(24 * time.Hour)

	tests := []struct {
		name    string
		arrival time.Time
	}{
		{"arrival before departure", departure.Add(-time.Hour)},
		{"arrival equals departure", departure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateFlight(context.Background(), &request.CreateSpaceflightRequest{
				RouteID:       routeID.String(),
				SpaceshipID:   shipID.String(),
				DepartureTime: departure,
				ArrivalTime:   tt.arrival,
			})
			var validation *apperr.Validation
			if !errors.As(err, &validation) {
				t.Fatalf("expected Validation, got %v", err)
			}
		})
	}
}

func TestCreateFlightUnknownRefs(t *testing.T) {
	store := newMemStore()
	routeID := seedRoute(store)
	shipID := seedShip(store, 5, 4)
	svc := NewFlightService(newMemRepository(store), zap.NewNop())

	departure := time.Now().Add(24 * time.Hour)
	arrival := departure.Add(6 * time.Hour)

	tests := []struct {
		name        string
		routeID     string
		spaceshipID string
	}{
		{"unknown route", uuid.New().String(), shipID.String()},
		{"unknown ship", routeID.String(), uuid.New().String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateFlight(context.Background(), &request.CreateSpaceflightRequest{
				RouteID:       tt.routeID,
				SpaceshipID:   tt.spaceshipID,
				DepartureTime: departure,
				ArrivalTime:   arrival,
			})
			var notFound *apperr.NotFound
			if !errors.As(err, &notFound) {
				t.Fatalf("expected NotFound, got %v", err)
			}
		})
	}
}

func TestGetFlightDetail(t *testing.T) {
	store := newMemStore()
	flightID := seedFlight(t, store, 5, 4)
	// Re-point the flight at a real route so the detail join resolves.
	routeID := seedRoute(store)
	store.flights[flightID].RouteID = routeID
	svc := NewFlightService(newMemRepository(store), zap.NewNop())

	detail, err := svc.GetFlight(context.Background(), flightID.String())
	if err != nil {
		t.Fatalf("GetFlight: %v", err)
	}

	if detail.Capacity != 20 {
		t.Fatalf("expected capacity 20, got %d", detail.Capacity)
	}
	if detail.TakenSeats == nil {
		t.Fatal("taken_seats must be an empty slice, not nil")
	}
	if len(detail.TakenSeats) != 0 {
		t.Fatalf("expected no taken seats, got %v", detail.TakenSeats)
	}
	if !detail.Spaceship.IsMini {
		t.Fatal("a 20-seat ship should be flagged mini")
	}
}

func TestListFlightsFilters(t *testing.T) {
	store := newMemStore()
	routeA := seedRoute(store)
	routeB := seedRoute(store)
	shipID := seedShip(store, 5, 4)
	svc := NewFlightService(newMemRepository(store), zap.NewNop())
	ctx := context.Background()

	now := time.Now()
	for i, routeID := range []uuid.UUID{routeA, routeA, routeB} {
		flight := &entity.Spaceflight{
			Base:          entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			RouteID:       routeID,
			SpaceshipID:   shipID,
			DepartureTime: now.Add(time.Duration(i+1) * 24 * time.Hour),
			ArrivalTime:   now.Add(time.Duration(i+1)*24*time.Hour + 6*time.Hour),
		}
		store.flights[flight.ID] = flight
	}

	all, err := svc.ListFlights(ctx, "", "")
	if err != nil {
		t.Fatalf("ListFlights: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 flights, got %d", len(all))
	}
	for _, flight := range all {
		if flight.TicketsAvailable == nil || *flight.TicketsAvailable != 20 {
			t.Fatalf("expected 20 available on empty flight, got %v", flight.TicketsAvailable)
		}
	}

	byRoute, err := svc.ListFlights(ctx, routeA.String(), "")
	if err != nil {
		t.Fatalf("ListFlights by route: %v", err)
	}
	if len(byRoute) != 2 {
		t.Fatalf("expected 2 flights on route, got %d", len(byRoute))
	}

	_, err = svc.ListFlights(ctx, "not-a-uuid", "")
	var validation *apperr.Validation
	if !errors.As(err, &validation) {
		t.Fatalf("expected Validation for bad route filter, got %v", err)
	}
}

func TestUpdateFlightTimes(t *testing.T) {
	store := newMemStore()
	flightID := seedFlight(t, store, 5, 4)
	svc := NewFlightService(newMemRepository(store), zap.NewNop())
	ctx := context.Background()

	departure := time.Now().Add(48 * time.Hour)

	err := svc.UpdateFlightTimes(ctx, flightID.String(), &request.UpdateSpaceflightTimesRequest{
		DepartureTime: departure,
		ArrivalTime:   departure.Add(-time.Hour),
	})
	var validation *apperr.Validation
	if !errors.As(err, &validation) {
		t.Fatalf("expected Validation, got %v", err)
	}

	arrival := departure.Add(8 * time.Hour)
	if err := svc.UpdateFlightTimes(ctx, flightID.String(), &request.UpdateSpaceflightTimesRequest{
		DepartureTime: departure,
		ArrivalTime:   arrival,
	}); err != nil {
		t.Fatalf("UpdateFlightTimes: %v", err)
	}

	if !store.flights[flightID].DepartureTime.Equal(departure) {
		t.Fatal("departure not persisted")
	}
}

func TestDeleteFlightPrunesEmptiedOrders(t *testing.T) {
	store := newMemStore()
	flightID := seedFlight(t, store, 5, 4)
	orderSvc := newOrderServiceForTest(store)
	flightSvc := NewFlightService(newMemRepository(store), zap.NewNop())
	ctx := context.Background()

	_, err := orderSvc.CreateOrder(ctx, customer(), &request.CreateOrderRequest{
		Tickets: []request.TicketRequest{{SpaceflightID: flightID.String(), Row: 1, Seat: 1}},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if err := flightSvc.DeleteFlight(ctx, flightID.String()); err != nil {
		t.Fatalf("DeleteFlight: %v", err)
	}

	if len(store.tickets) != 0 {
		t.Fatalf("expected tickets cascaded, got %d", len(store.tickets))
	}
	if len(store.orders) != 0 {
		t.Fatalf("expected emptied order pruned, got %d", len(store.orders))
	}
}
