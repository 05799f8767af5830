package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"spaceport-booking/internal/data/entity"
	"spaceport-booking/internal/data/repository"
	"spaceport-booking/pkg/apperr"

	"github.com/google/uuid"
)

// memStore backs the in-memory repositories the service tests run
// against. CreateWithTickets enforces the same commit-time seat
// uniqueness the database constraint does, under one lock, so racing
// callers resolve the same way: exactly one wins.
type memStore struct {
	mu      sync.Mutex
	users   map[uuid.UUID]*entity.User
	ships   map[uuid.UUID]*entity.Spaceship
	routes  map[uuid.UUID]*entity.Route
	planets map[uuid.UUID]*entity.Planet
	ports   map[uuid.UUID]*entity.Spaceport
	flights map[uuid.UUID]*entity.Spaceflight
	orders  map[uuid.UUID]*entity.Order
	tickets map[uuid.UUID]*entity.Ticket
	types   map[uuid.UUID]*entity.SpaceshipType
	crews   map[uuid.UUID]*entity.Crew
	crewing map[uuid.UUID][]uuid.UUID
}

func newMemStore() *memStore {
	return &memStore{
		users:   make(map[uuid.UUID]*entity.User),
		ships:   make(map[uuid.UUID]*entity.Spaceship),
		routes:  make(map[uuid.UUID]*entity.Route),
		planets: make(map[uuid.UUID]*entity.Planet),
		ports:   make(map[uuid.UUID]*entity.Spaceport),
		flights: make(map[uuid.UUID]*entity.Spaceflight),
		orders:  make(map[uuid.UUID]*entity.Order),
		tickets: make(map[uuid.UUID]*entity.Ticket),
		types:   make(map[uuid.UUID]*entity.SpaceshipType),
		crews:   make(map[uuid.UUID]*entity.Crew),
		crewing: make(map[uuid.UUID][]uuid.UUID),
	}
}

func newMemRepository(store *memStore) *repository.Repository {
	return &repository.Repository{
		User:          &memUserRepo{store},
		SpaceshipType: &memSpaceshipTypeRepo{store},
		Crew:          &memCrewRepo{store},
		Spaceship:     &memSpaceshipRepo{store},
		SpaceshipCrew: &memSpaceshipCrewRepo{store},
		Planet:        &memPlanetRepo{store},
		Spaceport:     &memSpaceportRepo{store},
		Route:         &memRouteRepo{store},
		Spaceflight:   &memSpaceflightRepo{store},
		Order:         &memOrderRepo{store},
		Ticket:        &memTicketRepo{store},
	}
}

// takenSeatsLocked reports the committed seats on a flight. Callers hold
// the lock.
func (s *memStore) takenSeatsLocked(flightID uuid.UUID) []int {
	var seats []int
	for _, ticket := range s.tickets {
		if ticket.SpaceflightID == flightID {
			seats = append(seats, ticket.Seat)
		}
	}
	sort.Ints(seats)
	return seats
}

func (s *memStore) pruneEmptyOrdersLocked() {
	for orderID := range s.orders {
		empty := true
		for _, ticket := range s.tickets {
			if ticket.OrderID == orderID {
				empty = false
				break
			}
		}
		if empty {
			delete(s.orders, orderID)
		}
	}
}

// The delete*Locked helpers mirror the schema's ON DELETE CASCADE chain:
// planet → spaceport → route → spaceflight → ticket. Callers hold the
// lock and prune emptied orders afterwards.
func (s *memStore) deleteFlightLocked(flightID uuid.UUID) {
	delete(s.flights, flightID)
	for ticketID, ticket := range s.tickets {
		if ticket.SpaceflightID == flightID {
			delete(s.tickets, ticketID)
		}
	}
}

func (s *memStore) deleteRouteLocked(routeID uuid.UUID) {
	delete(s.routes, routeID)
	for flightID, flight := range s.flights {
		if flight.RouteID == routeID {
			s.deleteFlightLocked(flightID)
		}
	}
}

func (s *memStore) deleteSpaceportLocked(portID uuid.UUID) {
	delete(s.ports, portID)
	for routeID, route := range s.routes {
		if route.SourceID == portID || route.DestinationID == portID {
			s.deleteRouteLocked(routeID)
		}
	}
}

// ==================== USERS ====================

type memUserRepo struct{ store *memStore }

func (r *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *user
	r.store.users[user.ID] = &copied
	return nil
}

func (r *memUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user, ok := r.store.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, user := range r.store.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

// ==================== SPACESHIP TYPES ====================

type memSpaceshipTypeRepo struct{ store *memStore }

func (r *memSpaceshipTypeRepo) Create(ctx context.Context, shipType *entity.SpaceshipType) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *shipType
	r.store.types[shipType.ID] = &copied
	return nil
}

func (r *memSpaceshipTypeRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.SpaceshipType, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	shipType, ok := r.store.types[id]
	if !ok {
		return nil, nil
	}
	copied := *shipType
	return &copied, nil
}

func (r *memSpaceshipTypeRepo) FindAll(ctx context.Context) ([]*entity.SpaceshipType, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var types []*entity.SpaceshipType
	for _, shipType := range r.store.types {
		copied := *shipType
		types = append(types, &copied)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].Name < types[j].Name })
	return types, nil
}

func (r *memSpaceshipTypeRepo) Update(ctx context.Context, shipType *entity.SpaceshipType) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	existing, ok := r.store.types[shipType.ID]
	if !ok {
		return &apperr.NotFound{Resource: "spaceship type", ID: shipType.ID.String()}
	}
	existing.Name = shipType.Name
	existing.UpdatedAt = shipType.UpdatedAt
	return nil
}

func (r *memSpaceshipTypeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.types[id]; !ok {
		return &apperr.NotFound{Resource: "spaceship type", ID: id.String()}
	}
	delete(r.store.types, id)
	return nil
}

// ==================== CREWS ====================

type memCrewRepo struct{ store *memStore }

func (r *memCrewRepo) Create(ctx context.Context, crew *entity.Crew) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *crew
	r.store.crews[crew.ID] = &copied
	return nil
}

func (r *memCrewRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Crew, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	crew, ok := r.store.crews[id]
	if !ok {
		return nil, nil
	}
	copied := *crew
	return &copied, nil
}

func (r *memCrewRepo) FindAll(ctx context.Context) ([]*entity.Crew, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var crews []*entity.Crew
	for _, crew := range r.store.crews {
		copied := *crew
		crews = append(crews, &copied)
	}
	sort.Slice(crews, func(i, j int) bool { return crews[i].LastName < crews[j].LastName })
	return crews, nil
}

func (r *memCrewRepo) Update(ctx context.Context, crew *entity.Crew) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	existing, ok := r.store.crews[crew.ID]
	if !ok {
		return &apperr.NotFound{Resource: "crew", ID: crew.ID.String()}
	}
	existing.FirstName = crew.FirstName
	existing.LastName = crew.LastName
	existing.UpdatedAt = crew.UpdatedAt
	return nil
}

func (r *memCrewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.crews[id]; !ok {
		return &apperr.NotFound{Resource: "crew", ID: id.String()}
	}
	delete(r.store.crews, id)
	return nil
}

// ==================== SPACESHIP CREWS ====================

type memSpaceshipCrewRepo struct{ store *memStore }

func (r *memSpaceshipCrewRepo) Replace(ctx context.Context, spaceshipID uuid.UUID, crewIDs []uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.crewing[spaceshipID] = append([]uuid.UUID(nil), crewIDs...)
	return nil
}

func (r *memSpaceshipCrewRepo) FindCrewIDsByShip(ctx context.Context, spaceshipID uuid.UUID) ([]uuid.UUID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return append([]uuid.UUID(nil), r.store.crewing[spaceshipID]...), nil
}

// ==================== SPACESHIPS ====================

type memSpaceshipRepo struct{ store *memStore }

func (r *memSpaceshipRepo) Create(ctx context.Context, ship *entity.Spaceship) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *ship
	r.store.ships[ship.ID] = &copied
	return nil
}

func (r *memSpaceshipRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Spaceship, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	ship, ok := r.store.ships[id]
	if !ok {
		return nil, nil
	}
	copied := *ship
	return &copied, nil
}

func (r *memSpaceshipRepo) FindAll(ctx context.Context, crewIDs []uuid.UUID) ([]*entity.Spaceship, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var ships []*entity.Spaceship
	for _, ship := range r.store.ships {
		copied := *ship
		ships = append(ships, &copied)
	}
	sort.Slice(ships, func(i, j int) bool { return ships[i].Name < ships[j].Name })
	return ships, nil
}

// Update mirrors the production repository: name and type only, never
// seat geometry.
func (r *memSpaceshipRepo) Update(ctx context.Context, ship *entity.Spaceship) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	existing, ok := r.store.ships[ship.ID]
	if !ok {
		return &apperr.NotFound{Resource: "spaceship", ID: ship.ID.String()}
	}
	existing.Name = ship.Name
	existing.TypeID = ship.TypeID
	existing.UpdatedAt = ship.UpdatedAt
	return nil
}

func (r *memSpaceshipRepo) UpdateImage(ctx context.Context, id uuid.UUID, imagePath string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	ship, ok := r.store.ships[id]
	if !ok {
		return &apperr.NotFound{Resource: "spaceship", ID: id.String()}
	}
	ship.ImagePath = &imagePath
	return nil
}

func (r *memSpaceshipRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.ships[id]; !ok {
		return &apperr.NotFound{Resource: "spaceship", ID: id.String()}
	}
	delete(r.store.ships, id)
	for flightID, flight := range r.store.flights {
		if flight.SpaceshipID == id {
			r.store.deleteFlightLocked(flightID)
		}
	}
	r.store.pruneEmptyOrdersLocked()
	return nil
}

// ==================== PLANETS ====================

type memPlanetRepo struct{ store *memStore }

func (r *memPlanetRepo) Create(ctx context.Context, planet *entity.Planet) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *planet
	r.store.planets[planet.ID] = &copied
	return nil
}

func (r *memPlanetRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Planet, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	planet, ok := r.store.planets[id]
	if !ok {
		return nil, nil
	}
	copied := *planet
	return &copied, nil
}

func (r *memPlanetRepo) FindAll(ctx context.Context) ([]*entity.Planet, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var planets []*entity.Planet
	for _, planet := range r.store.planets {
		copied := *planet
		planets = append(planets, &copied)
	}
	sort.Slice(planets, func(i, j int) bool { return planets[i].Name < planets[j].Name })
	return planets, nil
}

func (r *memPlanetRepo) Update(ctx context.Context, planet *entity.Planet) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	existing, ok := r.store.planets[planet.ID]
	if !ok {
		return &apperr.NotFound{Resource: "planet", ID: planet.ID.String()}
	}
	existing.Name = planet.Name
	existing.UpdatedAt = planet.UpdatedAt
	return nil
}

func (r *memPlanetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.planets[id]; !ok {
		return &apperr.NotFound{Resource: "planet", ID: id.String()}
	}
	delete(r.store.planets, id)
	for portID, port := range r.store.ports {
		if port.PlanetID == id {
			r.store.deleteSpaceportLocked(portID)
		}
	}
	r.store.pruneEmptyOrdersLocked()
	return nil
}

// ==================== SPACEPORTS ====================

type memSpaceportRepo struct{ store *memStore }

func (r *memSpaceportRepo) Create(ctx context.Context, spaceport *entity.Spaceport) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *spaceport
	r.store.ports[spaceport.ID] = &copied
	return nil
}

func (r *memSpaceportRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Spaceport, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	spaceport, ok := r.store.ports[id]
	if !ok {
		return nil, nil
	}
	copied := *spaceport
	return &copied, nil
}

func (r *memSpaceportRepo) FindAll(ctx context.Context) ([]*repository.SpaceportWithPlanet, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var ports []*repository.SpaceportWithPlanet
	for _, spaceport := range r.store.ports {
		row := &repository.SpaceportWithPlanet{Spaceport: *spaceport}
		if planet, ok := r.store.planets[spaceport.PlanetID]; ok {
			row.PlanetName = planet.Name
		}
		ports = append(ports, row)
	}
	sort.Slice(ports, func(i, j int) bool { return ports[i].Name < ports[j].Name })
	return ports, nil
}

func (r *memSpaceportRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.ports[id]; !ok {
		return &apperr.NotFound{Resource: "spaceport", ID: id.String()}
	}
	r.store.deleteSpaceportLocked(id)
	r.store.pruneEmptyOrdersLocked()
	return nil
}

// ==================== ROUTES ====================

type memRouteRepo struct{ store *memStore }

func (r *memRouteRepo) Create(ctx context.Context, route *entity.Route) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *route
	r.store.routes[route.ID] = &copied
	return nil
}

func (r *memRouteRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Route, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	route, ok := r.store.routes[id]
	if !ok {
		return nil, nil
	}
	copied := *route
	return &copied, nil
}

func (r *memRouteRepo) FindAll(ctx context.Context) ([]*repository.RouteWithPorts, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var routes []*repository.RouteWithPorts
	for _, route := range r.store.routes {
		row := &repository.RouteWithPorts{Route: *route}
		if src, ok := r.store.ports[route.SourceID]; ok {
			row.SourceName = src.Name
		}
		if dst, ok := r.store.ports[route.DestinationID]; ok {
			row.DestinationName = dst.Name
		}
		routes = append(routes, row)
	}
	sort.Slice(routes, func(i, j int) bool { return routes[i].SourceName < routes[j].SourceName })
	return routes, nil
}

func (r *memRouteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.routes[id]; !ok {
		return &apperr.NotFound{Resource: "route", ID: id.String()}
	}
	r.store.deleteRouteLocked(id)
	r.store.pruneEmptyOrdersLocked()
	return nil
}

// ==================== SPACEFLIGHTS ====================

type memSpaceflightRepo struct{ store *memStore }

func (r *memSpaceflightRepo) Create(ctx context.Context, flight *entity.Spaceflight) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *flight
	r.store.flights[flight.ID] = &copied
	return nil
}

func (r *memSpaceflightRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Spaceflight, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	flight, ok := r.store.flights[id]
	if !ok {
		return nil, nil
	}
	copied := *flight
	return &copied, nil
}

func (r *memSpaceflightRepo) FindAll(ctx context.Context, filter repository.SpaceflightFilter) ([]*repository.SpaceflightWithAvailability, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var flights []*repository.SpaceflightWithAvailability
	for _, flight := range r.store.flights {
		if filter.RouteID != nil && flight.RouteID != *filter.RouteID {
			continue
		}
		if filter.SpaceshipID != nil && flight.SpaceshipID != *filter.SpaceshipID {
			continue
		}
		row := &repository.SpaceflightWithAvailability{Spaceflight: *flight}
		if ship, ok := r.store.ships[flight.SpaceshipID]; ok {
			row.SpaceshipName = ship.Name
			row.Capacity = ship.NumSeats()
			row.TicketsAvailable = ship.NumSeats() - len(r.store.takenSeatsLocked(flight.ID))
		}
		flights = append(flights, row)
	}
	sort.Slice(flights, func(i, j int) bool {
		return strings.Compare(flights[i].ID.String(), flights[j].ID.String()) < 0
	})
	return flights, nil
}

func (r *memSpaceflightRepo) CountTickets(ctx context.Context, id uuid.UUID) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return len(r.store.takenSeatsLocked(id)), nil
}

func (r *memSpaceflightRepo) UpdateTimes(ctx context.Context, id uuid.UUID, departure, arrival time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	flight, ok := r.store.flights[id]
	if !ok {
		return &apperr.NotFound{Resource: "spaceflight", ID: id.String()}
	}
	flight.DepartureTime = departure
	flight.ArrivalTime = arrival
	return nil
}

func (r *memSpaceflightRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.flights[id]; !ok {
		return &apperr.NotFound{Resource: "spaceflight", ID: id.String()}
	}
	r.store.deleteFlightLocked(id)
	r.store.pruneEmptyOrdersLocked()
	return nil
}

// ==================== ORDERS ====================

type memOrderRepo struct{ store *memStore }

func (r *memOrderRepo) CreateWithTickets(ctx context.Context, order *entity.Order, tickets []*entity.Ticket) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, ticket := range tickets {
		for _, existing := range r.store.tickets {
			if existing.SpaceflightID == ticket.SpaceflightID && existing.Seat == ticket.Seat {
				return &apperr.Conflict{SpaceflightID: ticket.SpaceflightID, Seat: ticket.Seat}
			}
		}
	}

	copied := *order
	r.store.orders[order.ID] = &copied
	for _, ticket := range tickets {
		copiedTicket := *ticket
		r.store.tickets[ticket.ID] = &copiedTicket
	}
	return nil
}

func (r *memOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	order, ok := r.store.orders[id]
	if !ok {
		return nil, nil
	}
	copied := *order
	return &copied, nil
}

func (r *memOrderRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var orders []*entity.Order
	for _, order := range r.store.orders {
		if order.UserID == userID {
			copied := *order
			orders = append(orders, &copied)
		}
	}
	return pageOrders(orders, limit, offset), nil
}

func (r *memOrderRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var count int64
	for _, order := range r.store.orders {
		if order.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *memOrderRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var orders []*entity.Order
	for _, order := range r.store.orders {
		copied := *order
		orders = append(orders, &copied)
	}
	return pageOrders(orders, limit, offset), nil
}

func (r *memOrderRepo) CountAll(ctx context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.orders)), nil
}

func (r *memOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.orders[id]; !ok {
		return &apperr.NotFound{Resource: "order", ID: id.String()}
	}
	delete(r.store.orders, id)
	for ticketID, ticket := range r.store.tickets {
		if ticket.OrderID == id {
			delete(r.store.tickets, ticketID)
		}
	}
	return nil
}

// pageOrders sorts newest first and applies limit/offset.
func pageOrders(orders []*entity.Order, limit, offset int) []*entity.Order {
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].ID.String() < orders[j].ID.String()
	})
	if offset >= len(orders) {
		return nil
	}
	orders = orders[offset:]
	if limit < len(orders) {
		orders = orders[:limit]
	}
	return orders
}

// ==================== TICKETS ====================

type memTicketRepo struct{ store *memStore }

func (r *memTicketRepo) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.Ticket, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var tickets []*entity.Ticket
	for _, ticket := range r.store.tickets {
		if ticket.OrderID == orderID {
			copied := *ticket
			tickets = append(tickets, &copied)
		}
	}
	sort.Slice(tickets, func(i, j int) bool { return tickets[i].Seat < tickets[j].Seat })
	return tickets, nil
}

func (r *memTicketRepo) FindTakenSeats(ctx context.Context, spaceflightID uuid.UUID) ([]int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.takenSeatsLocked(spaceflightID), nil
}
