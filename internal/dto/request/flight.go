package request

import "time"

type CreateSpaceflightRequest struct {
	RouteID       string    `json:"route_id" validate:"required,uuid4"`
	SpaceshipID   string    `json:"spaceship_id" validate:"required,uuid4"`
	DepartureTime time.Time `json:"departure_time" validate:"required"`
	ArrivalTime   time.Time `json:"arrival_time" validate:"required"`
}

// UpdateSpaceflightTimesRequest reschedules a flight. Route and ship
// binding is immutable once the flight exists.
type UpdateSpaceflightTimesRequest struct {
	DepartureTime time.Time `json:"departure_time" validate:"required"`
	ArrivalTime   time.Time `json:"arrival_time" validate:"required"`
}
