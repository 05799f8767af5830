package entity

import "github.com/google/uuid"

type Spaceport struct {
	Base
	Name     string    `db:"name"`
	PlanetID uuid.UUID `db:"planet_id"`
}
