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

type PlanetRepository interface {
	Create(ctx context.Context, planet *entity.Planet) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Planet, error)
	FindAll(ctx context.Context) ([]*entity.Planet, error)
	Update(ctx context.Context, planet *entity.Planet) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type planetRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPlanetRepository(db database.PgxIface, log *zap.Logger) PlanetRepository {
	return &planetRepository{
		db:  db,
		log: log.With(zap.String("repository", "planet")),
	}
}

func (r *planetRepository) Create(ctx context.Context, planet *entity.Planet) error {
	query := `
		INSERT INTO planets (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		planet.ID,
		planet.Name,
		planet.CreatedAt,
		planet.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create planet",
			zap.Error(err),
			zap.String("name", planet.Name),
		)
		return apperr.NewStorage("create planet", err)
	}

	return nil
}

func (r *planetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Planet, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM planets
		WHERE id = $1
	`

	var planet entity.Planet
	err := r.db.QueryRow(ctx, query, id).Scan(
		&planet.ID,
		&planet.Name,
		&planet.CreatedAt,
		&planet.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find planet by ID",
			zap.Error(err),
			zap.String("planet_id", id.String()),
		)
		return nil, apperr.NewStorage("find planet by ID", err)
	}

	return &planet, nil
}

func (r *planetRepository) FindAll(ctx context.Context) ([]*entity.Planet, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM planets
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find planets", zap.Error(err))
		return nil, apperr.NewStorage("find planets", err)
	}
	defer rows.Close()

	var planets []*entity.Planet
	for rows.Next() {
		var planet entity.Planet
		err := rows.Scan(
			&planet.ID,
			&planet.Name,
			&planet.CreatedAt,
			&planet.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan planet row", zap.Error(err))
			return nil, apperr.NewStorage("scan planet row", err)
		}
		planets = append(planets, &planet)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, apperr.NewStorage("iterate planet rows", err)
	}

	return planets, nil
}

func (r *planetRepository) Update(ctx context.Context, planet *entity.Planet) error {
	query := `
		UPDATE planets
		SET name = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, planet.ID, planet.Name, planet.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update planet",
			zap.Error(err),
			zap.String("planet_id", planet.ID.String()),
		)
		return apperr.NewStorage("update planet", err)
	}

	if result.RowsAffected() == 0 {
		return &apperr.NotFound{Resource: "planet", ID: planet.ID.String()}
	}

	return nil
}

// Delete cascades through spaceports, routes, flights and tickets; orders
// emptied by the cascade are pruned in the same transaction.
func (r *planetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperr.NewStorage("begin delete planet", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx, `DELETE FROM planets WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete planet",
			zap.Error(err),
			zap.String("planet_id", id.String()),
		)
		return apperr.NewStorage("delete planet", err)
	}

	if result.RowsAffected() == 0 {
		return &apperr.NotFound{Resource: "planet", ID: id.String()}
	}

	pruned, err := pruneEmptyOrders(ctx, tx)
	if err != nil {
		return apperr.NewStorage("prune empty orders", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperr.NewStorage("commit delete planet", err)
	}

	r.log.Info("Planet deleted",
		zap.String("planet_id", id.String()),
		zap.Int64("orders_pruned", pruned),
	)
	return nil
}
