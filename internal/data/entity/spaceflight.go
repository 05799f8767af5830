package entity

import (
	"time"

	"github.com/google/uuid"
)

type Spaceflight struct {
	Base
	RouteID       uuid.UUID `db:"route_id"`
	SpaceshipID   uuid.UUID `db:"spaceship_id"`
	DepartureTime time.Time `db:"departure_time"`
	ArrivalTime   time.Time `db:"arrival_time"`
}
