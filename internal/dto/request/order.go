package request

// TicketRequest asks for one seat on one flight. Row and seat bounds are
// checked by the reservation engine against the ship's layout, not here.
type TicketRequest struct {
	SpaceflightID string `json:"spaceflight_id" validate:"required,uuid4"`
	Row           int    `json:"row"`
	Seat          int    `json:"seat"`
}

type CreateOrderRequest struct {
	Tickets []TicketRequest `json:"tickets" validate:"required,min=1,dive"`
}
