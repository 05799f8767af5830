package response

import (
	"time"

	"spaceport-booking/internal/data/entity"
)

type TicketResponse struct {
	ID            string `json:"id"`
	SpaceflightID string `json:"spaceflight_id"`
	Row           int    `json:"row"`
	Seat          int    `json:"seat"`
}

func TicketToResponse(ticket *entity.Ticket) TicketResponse {
	return TicketResponse{
		ID:            ticket.ID.String(),
		SpaceflightID: ticket.SpaceflightID.String(),
		Row:           ticket.Row,
		Seat:          ticket.Seat,
	}
}

type OrderResponse struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	CreatedAt time.Time        `json:"created_at"`
	Tickets   []TicketResponse `json:"tickets"`
}

func OrderToResponse(order *entity.Order, tickets []*entity.Ticket) OrderResponse {
	ticketResponses := make([]TicketResponse, len(tickets))
	for i, ticket := range tickets {
		ticketResponses[i] = TicketToResponse(ticket)
	}

	return OrderResponse{
		ID:        order.ID.String(),
		UserID:    order.UserID.String(),
		CreatedAt: order.CreatedAt,
		Tickets:   ticketResponses,
	}
}
