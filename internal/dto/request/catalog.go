package request

type CreatePlanetRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

type UpdatePlanetRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

type CreateSpaceportRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	PlanetID string `json:"planet_id" validate:"required,uuid4"`
}

type CreateRouteRequest struct {
	SourceID      string `json:"source_id" validate:"required,uuid4"`
	DestinationID string `json:"destination_id" validate:"required,uuid4"`
	Distance      int    `json:"distance" validate:"gte=0"`
}
