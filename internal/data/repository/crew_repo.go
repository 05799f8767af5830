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

type CrewRepository interface {
	Create(ctx context.Context, crew *entity.Crew) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Crew, error)
	FindAll(ctx context.Context) ([]*entity.Crew, error)
	Update(ctx context.Context, crew *entity.Crew) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type crewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCrewRepository(db database.PgxIface, log *zap.Logger) CrewRepository {
	return &crewRepository{
		db:  db,
		log: log.With(zap.String("repository", "crew")),
	}
}

func (r *crewRepository) Create(ctx context.Context, crew *entity.Crew) error {
	query := `
		INSERT INTO crews (id, first_name, last_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		crew.ID,
		crew.FirstName,
		crew.LastName,
		crew.CreatedAt,
		crew.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create crew",
			zap.Error(err),
			zap.String("name", crew.FullName()),
		)
		return apperr.NewStorage("create crew", err)
	}

	return nil
}

func (r *crewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Crew, error) {
	query := `
		SELECT id, first_name, last_name, created_at, updated_at
		FROM crews
		WHERE id = $1
	`

	var crew entity.Crew
	err := r.db.QueryRow(ctx, query, id).Scan(
		&crew.ID,
		&crew.FirstName,
		&crew.LastName,
		&crew.CreatedAt,
		&crew.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find crew by ID",
			zap.Error(err),
			zap.String("crew_id", id.String()),
		)
		return nil, apperr.NewStorage("find crew by ID", err)
	}

	return &crew, nil
}

func (r *crewRepository) FindAll(ctx context.Context) ([]*entity.Crew, error) {
	query := `
		SELECT id, first_name, last_name, created_at, updated_at
		FROM crews
		ORDER BY last_name, first_name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find crews", zap.Error(err))
		return nil, apperr.NewStorage("find crews", err)
	}
	defer rows.Close()

	var crews []*entity.Crew
	for rows.Next() {
		var crew entity.Crew
		err := rows.Scan(
			&crew.ID,
			&crew.FirstName,
			&crew.LastName,
			&crew.CreatedAt,
			&crew.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan crew row", zap.Error(err))
			return nil, apperr.NewStorage("scan crew row", err)
		}
		crews = append(crews, &crew)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, apperr.NewStorage("iterate crew rows", err)
	}

	return crews, nil
}

func (r *crewRepository) Update(ctx context.Context, crew *entity.Crew) error {
	query := `
		UPDATE crews
		SET first_name = $2, last_name = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, crew.ID, crew.FirstName, crew.LastName, crew.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update crew",
			zap.Error(err),
			zap.String("crew_id", crew.ID.String()),
		)
		return apperr.NewStorage("update crew", err)
	}

	if result.RowsAffected() == 0 {
		return &apperr.NotFound{Resource: "crew", ID: crew.ID.String()}
	}

	return nil
}

// Delete removes the crew member; only join rows cascade, ships stay.
func (r *crewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM crews WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete crew",
			zap.Error(err),
			zap.String("crew_id", id.String()),
		)
		return apperr.NewStorage("delete crew", err)
	}

	if result.RowsAffected() == 0 {
		return &apperr.NotFound{Resource: "crew", ID: id.String()}
	}

	r.log.Info("Crew deleted", zap.String("crew_id", id.String()))
	return nil
}
