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

// SpaceportWithPlanet carries the planet name joined in for listings.
type SpaceportWithPlanet struct {
	entity.Spaceport
	PlanetName string
}

type SpaceportRepository interface {
	Create(ctx context.Context, spaceport *entity.Spaceport) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Spaceport, error)
	FindAll(ctx context.Context) ([]*SpaceportWithPlanet, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type spaceportRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSpaceportRepository(db database.PgxIface, log *zap.Logger) SpaceportRepository {
	return &spaceportRepository{
		db:  db,
		log: log.With(zap.String("repository", "spaceport")),
	}
}

func (r *spaceportRepository) Create(ctx context.Context, spaceport *entity.Spaceport) error {
	query := `
		INSERT INTO spaceports (id, name, planet_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		spaceport.ID,
		spaceport.Name,
		spaceport.PlanetID,
		spaceport.CreatedAt,
		spaceport.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create spaceport",
			zap.Error(err),
			zap.String("name", spaceport.Name),
		)
		return apperr.NewStorage("create spaceport", err)
	}

	return nil
}

func (r *spaceportRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Spaceport, error) {
	query := `
		SELECT id, name, planet_id, created_at, updated_at
		FROM spaceports
		WHERE id = $1
	`

	var spaceport entity.Spaceport
	err := r.db.QueryRow(ctx, query, id).Scan(
		&spaceport.ID,
		&spaceport.Name,
		&spaceport.PlanetID,
		&spaceport.CreatedAt,
		&spaceport.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find spaceport by ID",
			zap.Error(err),
			zap.String("spaceport_id", id.String()),
		)
		return nil, apperr.NewStorage("find spaceport by ID", err)
	}

	return &spaceport, nil
}

func (r *spaceportRepository) FindAll(ctx context.Context) ([]*SpaceportWithPlanet, error) {
	query := `
		SELECT sp.id, sp.name, sp.planet_id, sp.created_at, sp.updated_at, p.name
		FROM spaceports sp
		INNER JOIN planets p ON sp.planet_id = p.id
		ORDER BY sp.name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find spaceports", zap.Error(err))
		return nil, apperr.NewStorage("find spaceports", err)
	}
	defer rows.Close()

	var spaceports []*SpaceportWithPlanet
	for rows.Next() {
		var sp SpaceportWithPlanet
		err := rows.Scan(
			&sp.ID,
			&sp.Name,
			&sp.PlanetID,
			&sp.CreatedAt,
			&sp.UpdatedAt,
			&sp.PlanetName,
		)
		if err != nil {
			r.log.Error("Failed to scan spaceport row", zap.Error(err))
			return nil, apperr.NewStorage("scan spaceport row", err)
		}
		spaceports = append(spaceports, &sp)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, apperr.NewStorage("iterate spaceport rows", err)
	}

	return spaceports, nil
}

// Delete cascades to routes touching this port (as source or destination),
// their flights and tickets; emptied orders are pruned in-tx.
func (r *spaceportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperr.NewStorage("begin delete spaceport", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx, `DELETE FROM spaceports WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete spaceport",
			zap.Error(err),
			zap.String("spaceport_id", id.String()),
		)
		return apperr.NewStorage("delete spaceport", err)
	}

	if result.RowsAffected() == 0 {
		return &apperr.NotFound{Resource: "spaceport", ID: id.String()}
	}

	pruned, err := pruneEmptyOrders(ctx, tx)
	if err != nil {
		return apperr.NewStorage("prune empty orders", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperr.NewStorage("commit delete spaceport", err)
	}

	r.log.Info("Spaceport deleted",
		zap.String("spaceport_id", id.String()),
		zap.Int64("orders_pruned", pruned),
	)
	return nil
}
