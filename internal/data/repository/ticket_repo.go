package repository

import (
	"context"

	"spaceport-booking/internal/data/entity"
	"spaceport-booking/pkg/apperr"
	"spaceport-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TicketRepository interface {
	FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.Ticket, error)
	// FindTakenSeats returns the committed seat numbers for a flight,
	// ascending.
	FindTakenSeats(ctx context.Context, spaceflightID uuid.UUID) ([]int, error)
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

func (r *ticketRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.Ticket, error) {
	query := `
		SELECT id, spaceflight_id, order_id, "row", seat, created_at
		FROM tickets
		WHERE order_id = $1
		ORDER BY seat
	`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		r.log.Error("Failed to find tickets by order ID",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
		)
		return nil, apperr.NewStorage("find tickets by order ID", err)
	}
	defer rows.Close()

	var tickets []*entity.Ticket
	for rows.Next() {
		var ticket entity.Ticket
		err := rows.Scan(
			&ticket.ID,
			&ticket.SpaceflightID,
			&ticket.OrderID,
			&ticket.Row,
			&ticket.Seat,
			&ticket.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan ticket row", zap.Error(err))
			return nil, apperr.NewStorage("scan ticket row", err)
		}
		tickets = append(tickets, &ticket)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, apperr.NewStorage("iterate ticket rows", err)
	}

	return tickets, nil
}

func (r *ticketRepository) FindTakenSeats(ctx context.Context, spaceflightID uuid.UUID) ([]int, error) {
	query := `
		SELECT seat
		FROM tickets
		WHERE spaceflight_id = $1
		ORDER BY seat
	`

	rows, err := r.db.Query(ctx, query, spaceflightID)
	if err != nil {
		r.log.Error("Failed to find taken seats",
			zap.Error(err),
			zap.String("spaceflight_id", spaceflightID.String()),
		)
		return nil, apperr.NewStorage("find taken seats", err)
	}
	defer rows.Close()

	var seats []int
	for rows.Next() {
		var seat int
		if err := rows.Scan(&seat); err != nil {
			r.log.Error("Failed to scan seat row", zap.Error(err))
			return nil, apperr.NewStorage("scan seat row", err)
		}
		seats = append(seats, seat)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, apperr.NewStorage("iterate seat rows", err)
	}

	return seats, nil
}
