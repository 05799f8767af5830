package repository

import (
	"context"
	"fmt"
	"time"

	"spaceport-booking/internal/data/entity"
	"spaceport-booking/pkg/apperr"
	"spaceport-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// SpaceflightFilter narrows flight listings. Nil fields match everything.
type SpaceflightFilter struct {
	RouteID     *uuid.UUID
	SpaceshipID *uuid.UUID
}

// SpaceflightWithAvailability carries the seats-left projection computed
// per query from committed tickets only. Never stored.
type SpaceflightWithAvailability struct {
	entity.Spaceflight
	SpaceshipName    string
	Capacity         int
	TicketsAvailable int
}

type SpaceflightRepository interface {
	Create(ctx context.Context, flight *entity.Spaceflight) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Spaceflight, error)
	FindAll(ctx context.Context, filter SpaceflightFilter) ([]*SpaceflightWithAvailability, error)
	CountTickets(ctx context.Context, id uuid.UUID) (int, error)
	UpdateTimes(ctx context.Context, id uuid.UUID, departure, arrival time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type spaceflightRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSpaceflightRepository(db database.PgxIface, log *zap.Logger) SpaceflightRepository {
	return &spaceflightRepository{
		db:  db,
		log: log.With(zap.String("repository", "spaceflight")),
	}
}

func (r *spaceflightRepository) Create(ctx context.Context, flight *entity.Spaceflight) error {
	query := `
		INSERT INTO spaceflights (id, route_id, spaceship_id, departure_time, arrival_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		flight.ID,
		flight.RouteID,
		flight.SpaceshipID,
		flight.DepartureTime,
		flight.ArrivalTime,
		flight.CreatedAt,
		flight.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create spaceflight",
			zap.Error(err),
			zap.String("route_id", flight.RouteID.String()),
			zap.String("spaceship_id", flight.SpaceshipID.String()),
		)
		return apperr.NewStorage("create spaceflight", err)
	}

	return nil
}

func (r *spaceflightRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Spaceflight, error) {
	query := `
		SELECT id, route_id, spaceship_id, departure_time, arrival_time, created_at, updated_at
		FROM spaceflights
		WHERE id = $1
	`

	var flight entity.Spaceflight
	err := r.db.QueryRow(ctx, query, id).Scan(
		&flight.ID,
		&flight.RouteID,
		&flight.SpaceshipID,
		&flight.DepartureTime,
		&flight.ArrivalTime,
		&flight.CreatedAt,
		&flight.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find spaceflight by ID",
			zap.Error(err),
			zap.String("spaceflight_id", id.String()),
		)
		return nil, apperr.NewStorage("find spaceflight by ID", err)
	}

	return &flight, nil
}

// FindAll lists flights by id ascending with tickets_available derived in
// SQL from the ship geometry minus committed tickets.
func (r *spaceflightRepository) FindAll(ctx context.Context, filter SpaceflightFilter) ([]*SpaceflightWithAvailability, error) {
	query := `
		SELECT sf.id, sf.route_id, sf.spaceship_id, sf.departure_time, sf.arrival_time,
		       sf.created_at, sf.updated_at, s.name,
		       s.rows * s.seats_in_row AS capacity,
		       s.rows * s.seats_in_row - COUNT(t.id) AS tickets_available
		FROM spaceflights sf
		INNER JOIN spaceships s ON sf.spaceship_id = s.id
		LEFT JOIN tickets t ON t.spaceflight_id = sf.id
	`

	var args []any
	var conditions []string

	if filter.RouteID != nil {
		args = append(args, *filter.RouteID)
		conditions = append(conditions, fmt.Sprintf("sf.route_id = $%d", len(args)))
	}
	if filter.SpaceshipID != nil {
		args = append(args, *filter.SpaceshipID)
		conditions = append(conditions, fmt.Sprintf("sf.spaceship_id = $%d", len(args)))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	query += `
		GROUP BY sf.id, sf.route_id, sf.spaceship_id, sf.departure_time, sf.arrival_time,
		         sf.created_at, sf.updated_at, s.name, s.rows, s.seats_in_row
		ORDER BY sf.id
	`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find spaceflights", zap.Error(err))
		return nil, apperr.NewStorage("find spaceflights", err)
	}
	defer rows.Close()

	var flights []*SpaceflightWithAvailability
	for rows.Next() {
		var flight SpaceflightWithAvailability
		err := rows.Scan(
			&flight.ID,
			&flight.RouteID,
			&flight.SpaceshipID,
			&flight.DepartureTime,
			&flight.ArrivalTime,
			&flight.CreatedAt,
			&flight.UpdatedAt,
			&flight.SpaceshipName,
			&flight.Capacity,
			&flight.TicketsAvailable,
		)
		if err != nil {
			r.log.Error("Failed to scan spaceflight row", zap.Error(err))
			return nil, apperr.NewStorage("scan spaceflight row", err)
		}
		flights = append(flights, &flight)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, apperr.NewStorage("iterate spaceflight rows", err)
	}

	return flights, nil
}

// CountTickets counts committed tickets only; an uncommitted order's
// tickets are invisible here.
func (r *spaceflightRepository) CountTickets(ctx context.Context, id uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM tickets WHERE spaceflight_id = $1`

	var count int
	if err := r.db.QueryRow(ctx, query, id).Scan(&count); err != nil {
		r.log.Error("Failed to count tickets",
			zap.Error(err),
			zap.String("spaceflight_id", id.String()),
		)
		return 0, apperr.NewStorage("count tickets", err)
	}

	return count, nil
}

// UpdateTimes is the only mutable part of a flight; route and ship
// binding stays fixed after creation.
func (r *spaceflightRepository) UpdateTimes(ctx context.Context, id uuid.UUID, departure, arrival time.Time) error {
	query := `
		UPDATE spaceflights
		SET departure_time = $2, arrival_time = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, departure, arrival)
	if err != nil {
		r.log.Error("Failed to update spaceflight times",
			zap.Error(err),
			zap.String("spaceflight_id", id.String()),
		)
		return apperr.NewStorage("update spaceflight times", err)
	}

	if result.RowsAffected() == 0 {
		return &apperr.NotFound{Resource: "spaceflight", ID: id.String()}
	}

	return nil
}

// Delete cascades to the flight's tickets; emptied orders are pruned
// in-tx.
func (r *spaceflightRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperr.NewStorage("begin delete spaceflight", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx, `DELETE FROM spaceflights WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete spaceflight",
			zap.Error(err),
			zap.String("spaceflight_id", id.String()),
		)
		return apperr.NewStorage("delete spaceflight", err)
	}

	if result.RowsAffected() == 0 {
		return &apperr.NotFound{Resource: "spaceflight", ID: id.String()}
	}

	pruned, err := pruneEmptyOrders(ctx, tx)
	if err != nil {
		return apperr.NewStorage("prune empty orders", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperr.NewStorage("commit delete spaceflight", err)
	}

	r.log.Info("Spaceflight deleted",
		zap.String("spaceflight_id", id.String()),
		zap.Int64("orders_pruned", pruned),
	)
	return nil
}
