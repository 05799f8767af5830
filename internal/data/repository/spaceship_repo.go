package repository

import (
	"context"
	"fmt"
	"strings"

	"spaceport-booking/internal/data/entity"
	"spaceport-booking/pkg/apperr"
	"spaceport-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SpaceshipRepository interface {
	Create(ctx context.Context, ship *entity.Spaceship) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Spaceship, error)
	// FindAll with a non-empty crewIDs filter returns only ships crewed by
	// at least one of the given members.
	FindAll(ctx context.Context, crewIDs []uuid.UUID) ([]*entity.Spaceship, error)
	Update(ctx context.Context, ship *entity.Spaceship) error
	UpdateImage(ctx context.Context, id uuid.UUID, imagePath string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type spaceshipRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSpaceshipRepository(db database.PgxIface, log *zap.Logger) SpaceshipRepository {
	return &spaceshipRepository{
		db:  db,
		log: log.With(zap.String("repository", "spaceship")),
	}
}

func (r *spaceshipRepository) Create(ctx context.Context, ship *entity.Spaceship) error {
	query := `
		INSERT INTO spaceships (id, name, rows, seats_in_row, type_id, image_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		ship.ID,
		ship.Name,
		ship.Rows,
		ship.SeatsInRow,
		ship.TypeID,
		ship.ImagePath,
		ship.CreatedAt,
		ship.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create spaceship",
			zap.Error(err),
			zap.String("name", ship.Name),
		)
		return apperr.NewStorage("create spaceship", err)
	}

	return nil
}

func (r *spaceshipRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Spaceship, error) {
	query := `
		SELECT id, name, rows, seats_in_row, type_id, image_path, created_at, updated_at
		FROM spaceships
		WHERE id = $1
	`

	var ship entity.Spaceship
	err := r.db.QueryRow(ctx, query, id).Scan(
		&ship.ID,
		&ship.Name,
		&ship.Rows,
		&ship.SeatsInRow,
		&ship.TypeID,
		&ship.ImagePath,
		&ship.CreatedAt,
		&ship.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find spaceship by ID",
			zap.Error(err),
			zap.String("spaceship_id", id.String()),
		)
		return nil, apperr.NewStorage("find spaceship by ID", err)
	}

	return &ship, nil
}

func (r *spaceshipRepository) FindAll(ctx context.Context, crewIDs []uuid.UUID) ([]*entity.Spaceship, error) {
	query := `
		SELECT DISTINCT s.id, s.name, s.rows, s.seats_in_row, s.type_id, s.image_path, s.created_at, s.updated_at
		FROM spaceships s
	`
	var args []any

	if len(crewIDs) > 0 {
		placeholders := make([]string, len(crewIDs))
		for i, crewID := range crewIDs {
			placeholders[i] = fmt.Sprintf("$%d", i+1)
			args = append(args, crewID)
		}
		query += fmt.Sprintf(`
		INNER JOIN spaceship_crews sc ON sc.spaceship_id = s.id
		WHERE sc.crew_id IN (%s)
	`, strings.Join(placeholders, ", "))
	}

	query += ` ORDER BY s.name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find spaceships", zap.Error(err))
		return nil, apperr.NewStorage("find spaceships", err)
	}
	defer rows.Close()

	var ships []*entity.Spaceship
	for rows.Next() {
		var ship entity.Spaceship
		err := rows.Scan(
			&ship.ID,
			&ship.Name,
			&ship.Rows,
			&ship.SeatsInRow,
			&ship.TypeID,
			&ship.ImagePath,
			&ship.CreatedAt,
			&ship.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan spaceship row", zap.Error(err))
			return nil, apperr.NewStorage("scan spaceship row", err)
		}
		ships = append(ships, &ship)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, apperr.NewStorage("iterate spaceship rows", err)
	}

	return ships, nil
}

// Update never touches rows/seats_in_row: seat geometry is immutable once
// flights may reference the ship.
func (r *spaceshipRepository) Update(ctx context.Context, ship *entity.Spaceship) error {
	query := `
		UPDATE spaceships
		SET name = $2, type_id = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, ship.ID, ship.Name, ship.TypeID, ship.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update spaceship",
			zap.Error(err),
			zap.String("spaceship_id", ship.ID.String()),
		)
		return apperr.NewStorage("update spaceship", err)
	}

	if result.RowsAffected() == 0 {
		return &apperr.NotFound{Resource: "spaceship", ID: ship.ID.String()}
	}

	return nil
}

func (r *spaceshipRepository) UpdateImage(ctx context.Context, id uuid.UUID, imagePath string) error {
	query := `UPDATE spaceships SET image_path = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, imagePath)
	if err != nil {
		r.log.Error("Failed to update spaceship image",
			zap.Error(err),
			zap.String("spaceship_id", id.String()),
		)
		return apperr.NewStorage("update spaceship image", err)
	}

	if result.RowsAffected() == 0 {
		return &apperr.NotFound{Resource: "spaceship", ID: id.String()}
	}

	return nil
}

// Delete cascades to this ship's flights and their tickets; emptied
// orders are pruned in-tx.
func (r *spaceshipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperr.NewStorage("begin delete spaceship", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx, `DELETE FROM spaceships WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete spaceship",
			zap.Error(err),
			zap.String("spaceship_id", id.String()),
		)
		return apperr.NewStorage("delete spaceship", err)
	}

	if result.RowsAffected() == 0 {
		return &apperr.NotFound{Resource: "spaceship", ID: id.String()}
	}

	pruned, err := pruneEmptyOrders(ctx, tx)
	if err != nil {
		return apperr.NewStorage("prune empty orders", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperr.NewStorage("commit delete spaceship", err)
	}

	r.log.Info("Spaceship deleted",
		zap.String("spaceship_id", id.String()),
		zap.Int64("orders_pruned", pruned),
	)
	return nil
}
