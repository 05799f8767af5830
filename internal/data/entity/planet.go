package entity

type Planet struct {
	Base
	Name string `db:"name"`
}
