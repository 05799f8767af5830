package repository

import (
	"context"

	"spaceport-booking/pkg/apperr"
	"spaceport-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SpaceshipCrewRepository interface {
	// Replace swaps the ship's crew set for the given members atomically.
	Replace(ctx context.Context, spaceshipID uuid.UUID, crewIDs []uuid.UUID) error
	FindCrewIDsByShip(ctx context.Context, spaceshipID uuid.UUID) ([]uuid.UUID, error)
}

type spaceshipCrewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSpaceshipCrewRepository(db database.PgxIface, log *zap.Logger) SpaceshipCrewRepository {
	return &spaceshipCrewRepository{
		db:  db,
		log: log.With(zap.String("repository", "spaceship_crew")),
	}
}

func (r *spaceshipCrewRepository) Replace(ctx context.Context, spaceshipID uuid.UUID, crewIDs []uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperr.NewStorage("begin replace spaceship crews", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM spaceship_crews WHERE spaceship_id = $1`, spaceshipID); err != nil {
		r.log.Error("Failed to clear spaceship crews",
			zap.Error(err),
			zap.String("spaceship_id", spaceshipID.String()),
		)
		return apperr.NewStorage("clear spaceship crews", err)
	}

	for _, crewID := range crewIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO spaceship_crews (spaceship_id, crew_id) VALUES ($1, $2)`,
			spaceshipID, crewID,
		)
		if err != nil {
			r.log.Error("Failed to assign crew",
				zap.Error(err),
				zap.String("spaceship_id", spaceshipID.String()),
				zap.String("crew_id", crewID.String()),
			)
			return apperr.NewStorage("assign crew", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return apperr.NewStorage("commit replace spaceship crews", err)
	}

	return nil
}

func (r *spaceshipCrewRepository) FindCrewIDsByShip(ctx context.Context, spaceshipID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT crew_id
		FROM spaceship_crews
		WHERE spaceship_id = $1
	`

	rows, err := r.db.Query(ctx, query, spaceshipID)
	if err != nil {
		r.log.Error("Failed to find crew IDs by ship",
			zap.Error(err),
			zap.String("spaceship_id", spaceshipID.String()),
		)
		return nil, apperr.NewStorage("find crew IDs by ship", err)
	}
	defer rows.Close()

	var crewIDs []uuid.UUID
	for rows.Next() {
		var crewID uuid.UUID
		if err := rows.Scan(&crewID); err != nil {
			r.log.Error("Failed to scan crew ID row", zap.Error(err))
			return nil, apperr.NewStorage("scan crew ID row", err)
		}
		crewIDs = append(crewIDs, crewID)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, apperr.NewStorage("iterate crew ID rows", err)
	}

	return crewIDs, nil
}
