package repository

import (
	"context"

	"spaceport-booking/internal/data/entity"
	"spaceport-booking/pkg/apperr"
	"spaceport-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// RouteWithPorts carries the endpoint names joined in for listings.
type RouteWithPorts struct {
	entity.Route
	SourceName      string
	DestinationName string
}

type RouteRepository interface {
	Create(ctx context.Context, route *entity.Route) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Route, error)
	FindAll(ctx context.Context) ([]*RouteWithPorts, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type routeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRouteRepository(db database.PgxIface, log *zap.Logger) RouteRepository {
	return &routeRepository{
		db:  db,
		log: log.With(zap.String("repository", "route")),
	}
}

func (r *routeRepository) Create(ctx context.Context, route *entity.Route) error {
	query := `
		INSERT INTO routes (id, source_id, destination_id, distance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		route.ID,
		route.SourceID,
		route.DestinationID,
		route.Distance,
		route.CreatedAt,
		route.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create route",
			zap.Error(err),
			zap.String("source_id", route.SourceID.String()),
			zap.String("destination_id", route.DestinationID.String()),
		)
		return apperr.NewStorage("create route", err)
	}

	return nil
}

func (r *routeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Route, error) {
	query := `
		SELECT id, source_id, destination_id, distance, created_at, updated_at
		FROM routes
		WHERE id = $1
	`

	var route entity.Route
	err := r.db.QueryRow(ctx, query, id).Scan(
		&route.ID,
		&route.SourceID,
		&route.DestinationID,
		&route.Distance,
		&route.CreatedAt,
		&route.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find route by ID",
			zap.Error(err),
			zap.String("route_id", id.String()),
		)
		return nil, apperr.NewStorage("find route by ID", err)
	}

	return &route, nil
}

func (r *routeRepository) FindAll(ctx context.Context) ([]*RouteWithPorts, error) {
	query := `
		SELECT rt.id, rt.source_id, rt.destination_id, rt.distance, rt.created_at, rt.updated_at,
		       src.name, dst.name
		FROM routes rt
		INNER JOIN spaceports src ON rt.source_id = src.id
		INNER JOIN spaceports dst ON rt.destination_id = dst.id
		ORDER BY src.name, dst.name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find routes", zap.Error(err))
		return nil, apperr.NewStorage("find routes", err)
	}
	defer rows.Close()

	var routes []*RouteWithPorts
	for rows.Next() {
		var route RouteWithPorts
		err := rows.Scan(
			&route.ID,
			&route.SourceID,
			&route.DestinationID,
			&route.Distance,
			&route.CreatedAt,
			&route.UpdatedAt,
			&route.SourceName,
			&route.DestinationName,
		)
		if err != nil {
			r.log.Error("Failed to scan route row", zap.Error(err))
			return nil, apperr.NewStorage("scan route row", err)
		}
		routes = append(routes, &route)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, apperr.NewStorage("iterate route rows", err)
	}

	return routes, nil
}

// Delete cascades to this route's flights and their tickets; emptied
// orders are pruned in-tx.
func (r *routeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperr.NewStorage("begin delete route", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx, `DELETE FROM routes WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete route",
			zap.Error(err),
			zap.String("route_id", id.String()),
		)
		return apperr.NewStorage("delete route", err)
	}

	if result.RowsAffected() == 0 {
		return &apperr.NotFound{Resource: "route", ID: id.String()}
	}

	pruned, err := pruneEmptyOrders(ctx, tx)
	if err != nil {
		return apperr.NewStorage("prune empty orders", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperr.NewStorage("commit delete route", err)
	}

	r.log.Info("Route deleted",
		zap.String("route_id", id.String()),
		zap.Int64("orders_pruned", pruned),
	)
	return nil
}
