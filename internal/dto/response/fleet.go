package response

import (
	"spaceport-booking/internal/data/entity"
)

type SpaceshipTypeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func SpaceshipTypeToResponse(shipType *entity.SpaceshipType) SpaceshipTypeResponse {
	return SpaceshipTypeResponse{
		ID:   shipType.ID.String(),
		Name: shipType.Name,
	}
}

type CrewResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
}

func CrewToResponse(crew *entity.Crew) CrewResponse {
	return CrewResponse{
		ID:        crew.ID.String(),
		FirstName: crew.FirstName,
		LastName:  crew.LastName,
		FullName:  crew.FullName(),
	}
}

type SpaceshipResponse struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Rows       int            `json:"rows"`
	SeatsInRow int            `json:"seats_in_row"`
	NumSeats   int            `json:"num_seats"`
	IsMini     bool           `json:"is_mini"`
	TypeID     string         `json:"type_id"`
	TypeName   string         `json:"type_name,omitempty"`
	ImageURL   *string        `json:"image,omitempty"`
	Crews      []CrewResponse `json:"crews,omitempty"`
}

// SpaceshipToResponse derives num_seats and is_mini at read time.
func SpaceshipToResponse(ship *entity.Spaceship) SpaceshipResponse {
	return SpaceshipResponse{
		ID:         ship.ID.String(),
		Name:       ship.Name,
		Rows:       ship.Rows,
		SeatsInRow: ship.SeatsInRow,
		NumSeats:   ship.NumSeats(),
		IsMini:     ship.IsMini(),
		TypeID:     ship.TypeID.String(),
		ImageURL:   ship.ImagePath,
	}
}
