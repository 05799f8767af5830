package entity

import "github.com/google/uuid"

// Ticket reserves one seat on one spaceflight. (spaceflight_id, seat) is
// unique across all tickets; tickets are never updated in place.
type Ticket struct {
	BaseSimple
	SpaceflightID uuid.UUID `db:"spaceflight_id"`
	OrderID       uuid.UUID `db:"order_id"`
	Row           int       `db:"row"`
	Seat          int       `db:"seat"`
}
