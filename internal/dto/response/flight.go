package response

import (
	"time"

	"spaceport-booking/internal/data/repository"
)

type SpaceflightResponse struct {
	ID               string    `json:"id"`
	RouteID          string    `json:"route_id"`
	SpaceshipID      string    `json:"spaceship_id"`
	SpaceshipName    string    `json:"spaceship_name,omitempty"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
	Capacity         int       `json:"spaceship_num_seats,omitempty"`
	TicketsAvailable *int      `json:"tickets_available,omitempty"`
}

func SpaceflightWithAvailabilityToResponse(flight *repository.SpaceflightWithAvailability) SpaceflightResponse {
	available := flight.TicketsAvailable
	return SpaceflightResponse{
		ID:               flight.ID.String(),
		RouteID:          flight.RouteID.String(),
		SpaceshipID:      flight.SpaceshipID.String(),
		SpaceshipName:    flight.SpaceshipName,
		DepartureTime:    flight.DepartureTime,
		ArrivalTime:      flight.ArrivalTime,
		Capacity:         flight.Capacity,
		TicketsAvailable: &available,
	}
}

type SpaceflightDetailResponse struct {
	SpaceflightResponse
	Spaceship  SpaceshipResponse `json:"spaceship"`
	Route      RouteResponse     `json:"route"`
	TakenSeats []int             `json:"taken_seats"`
}

// AvailabilityResponse is the {capacity, sold, available} projection for
// one flight, computed from committed tickets at query time.
type AvailabilityResponse struct {
	SpaceflightID string `json:"spaceflight_id"`
	Capacity      int    `json:"capacity"`
	Sold          int    `json:"sold"`
	Available     int    `json:"available"`
}
