package entity

import "github.com/google/uuid"

type Route struct {
	Base
	SourceID      uuid.UUID `db:"source_id"`
	DestinationID uuid.UUID `db:"destination_id"`
	Distance      int       `db:"distance"`
}
