package entity

import "github.com/google/uuid"

type Spaceship struct {
	Base
	Name       string    `db:"name"`
	Rows       int       `db:"rows"`
	SeatsInRow int       `db:"seats_in_row"`
	TypeID     uuid.UUID `db:"type_id"`
	ImagePath  *string   `db:"image_path"`
}

// NumSeats is the seat capacity of the ship. Computed, never stored.
func (s *Spaceship) NumSeats() int {
	return s.Rows * s.SeatsInRow
}

// IsMini reports whether the ship is a small-capacity craft.
func (s *Spaceship) IsMini() bool {
	return s.NumSeats() <= 30
}

// SpaceshipCrew is the many-to-many join row between ships and crews.
type SpaceshipCrew struct {
	SpaceshipID uuid.UUID `db:"spaceship_id"`
	CrewID      uuid.UUID `db:"crew_id"`
}
