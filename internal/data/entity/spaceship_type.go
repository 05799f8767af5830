package entity

type SpaceshipType struct {
	Base
	Name string `db:"name"`
}
