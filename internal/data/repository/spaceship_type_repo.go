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

type SpaceshipTypeRepository interface {
	Create(ctx context.Context, shipType *entity.SpaceshipType) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SpaceshipType, error)
	FindAll(ctx context.Context) ([]*entity.SpaceshipType, error)
	Update(ctx context.Context, shipType *entity.SpaceshipType) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type spaceshipTypeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSpaceshipTypeRepository(db database.PgxIface, log *zap.Logger) SpaceshipTypeRepository {
	return &spaceshipTypeRepository{
		db:  db,
		log: log.With(zap.String("repository", "spaceship_type")),
	}
}

func (r *spaceshipTypeRepository) Create(ctx context.Context, shipType *entity.SpaceshipType) error {
	query := `
		INSERT INTO spaceship_types (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		shipType.ID,
		shipType.Name,
		shipType.CreatedAt,
		shipType.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create spaceship type",
			zap.Error(err),
			zap.String("name", shipType.Name),
		)
		return apperr.NewStorage("create spaceship type", err)
	}

	return nil
}

func (r *spaceshipTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SpaceshipType, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM spaceship_types
		WHERE id = $1
	`

	var shipType entity.SpaceshipType
	err := r.db.QueryRow(ctx, query, id).Scan(
		&shipType.ID,
		&shipType.Name,
		&shipType.CreatedAt,
		&shipType.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find spaceship type by ID",
			zap.Error(err),
			zap.String("type_id", id.String()),
		)
		return nil, apperr.NewStorage("find spaceship type by ID", err)
	}

	return &shipType, nil
}

func (r *spaceshipTypeRepository) FindAll(ctx context.Context) ([]*entity.SpaceshipType, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM spaceship_types
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find spaceship types", zap.Error(err))
		return nil, apperr.NewStorage("find spaceship types", err)
	}
	defer rows.Close()

	var shipTypes []*entity.SpaceshipType
	for rows.Next() {
		var shipType entity.SpaceshipType
		err := rows.Scan(
			&shipType.ID,
			&shipType.Name,
			&shipType.CreatedAt,
			&shipType.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan spaceship type row", zap.Error(err))
			return nil, apperr.NewStorage("scan spaceship type row", err)
		}
		shipTypes = append(shipTypes, &shipType)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, apperr.NewStorage("iterate spaceship type rows", err)
	}

	return shipTypes, nil
}

func (r *spaceshipTypeRepository) Update(ctx context.Context, shipType *entity.SpaceshipType) error {
	query := `
		UPDATE spaceship_types
		SET name = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, shipType.ID, shipType.Name, shipType.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update spaceship type",
			zap.Error(err),
			zap.String("type_id", shipType.ID.String()),
		)
		return apperr.NewStorage("update spaceship type", err)
	}

	if result.RowsAffected() == 0 {
		return &apperr.NotFound{Resource: "spaceship type", ID: shipType.ID.String()}
	}

	return nil
}

// Delete cascades to spaceships, their flights and tickets; orders left
// without tickets are pruned in the same transaction.
func (r *spaceshipTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperr.NewStorage("begin delete spaceship type", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx, `DELETE FROM spaceship_types WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete spaceship type",
			zap.Error(err),
			zap.String("type_id", id.String()),
		)
		return apperr.NewStorage("delete spaceship type", err)
	}

	if result.RowsAffected() == 0 {
		return &apperr.NotFound{Resource: "spaceship type", ID: id.String()}
	}

	pruned, err := pruneEmptyOrders(ctx, tx)
	if err != nil {
		return apperr.NewStorage("prune empty orders", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperr.NewStorage("commit delete spaceship type", err)
	}

	r.log.Info("Spaceship type deleted",
		zap.String("type_id", id.String()),
		zap.Int64("orders_pruned", pruned),
	)
	return nil
}
