package response

import (
	"spaceport-booking/internal/data/entity"
	"spaceport-booking/internal/data/repository"
)

type PlanetResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func PlanetToResponse(planet *entity.Planet) PlanetResponse {
	return PlanetResponse{
		ID:   planet.ID.String(),
		Name: planet.Name,
	}
}

type SpaceportResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PlanetID   string `json:"planet_id"`
	PlanetName string `json:"planet,omitempty"`
}

func SpaceportToResponse(sp *entity.Spaceport) SpaceportResponse {
	return SpaceportResponse{
		ID:       sp.ID.String(),
		Name:     sp.Name,
		PlanetID: sp.PlanetID.String(),
	}
}

func SpaceportWithPlanetToResponse(sp *repository.SpaceportWithPlanet) SpaceportResponse {
	resp := SpaceportToResponse(&sp.Spaceport)
	resp.PlanetName = sp.PlanetName
	return resp
}

type RouteResponse struct {
	ID            string `json:"id"`
	SourceID      string `json:"source_id"`
	DestinationID string `json:"destination_id"`
	Distance      int    `json:"distance"`
	SourceName    string `json:"source_name,omitempty"`
	Destination   string `json:"destination,omitempty"`
	FullRoute     string `json:"full_route,omitempty"`
}

func RouteToResponse(route *entity.Route) RouteResponse {
	return RouteResponse{
		ID:            route.ID.String(),
		SourceID:      route.SourceID.String(),
		DestinationID: route.DestinationID.String(),
		Distance:      route.Distance,
	}
}

// RouteWithPortsToResponse includes the derived full_route display
// string; it is computed here, never stored.
func RouteWithPortsToResponse(route *repository.RouteWithPorts) RouteResponse {
	resp := RouteToResponse(&route.Route)
	resp.SourceName = route.SourceName
	resp.Destination = route.DestinationName
	resp.FullRoute = route.SourceName + " - " + route.DestinationName
	return resp
}
