package repository

import (
	"context"
	"errors"

	"spaceport-booking/internal/data/entity"
	"spaceport-booking/pkg/apperr"
	"spaceport-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// uniqueViolation is the SQLSTATE raised when the seat constraint aborts
// a commit.
const uniqueViolation = "23505"

const seatConstraint = "uq_tickets_spaceflight_seat"

type OrderRepository interface {
	// CreateWithTickets persists the order and all its tickets in one
	// transaction. The unique (spaceflight_id, seat) constraint is the
	// commit-time authority: of two racing callers exactly one commits,
	// the other gets apperr.Conflict.
	CreateWithTickets(ctx context.Context, order *entity.Order, tickets []*entity.Ticket) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Order, error)
	CountAll(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

func (r *orderRepository) CreateWithTickets(ctx context.Context, order *entity.Order, tickets []*entity.Ticket) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperr.NewStorage("begin create order", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO orders (id, user_id, created_at) VALUES ($1, $2, $3)`,
		order.ID, order.UserID, order.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert order",
			zap.Error(err),
			zap.String("order_id", order.ID.String()),
		)
		return apperr.NewStorage("insert order", err)
	}

	for _, ticket := range tickets {
		_, err := tx.Exec(ctx,
			`INSERT INTO tickets (id, spaceflight_id, order_id, "row", seat, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			ticket.ID, ticket.SpaceflightID, ticket.OrderID, ticket.Row, ticket.Seat, ticket.CreatedAt,
		)
		if err != nil {
			if isSeatConflict(err) {
				r.log.Warn("Seat conflict on insert",
					zap.String("spaceflight_id", ticket.SpaceflightID.String()),
					zap.Int("seat", ticket.Seat),
				)
				return &apperr.Conflict{SpaceflightID: ticket.SpaceflightID, Seat: ticket.Seat}
			}
			r.log.Error("Failed to insert ticket",
				zap.Error(err),
				zap.String("order_id", order.ID.String()),
				zap.String("spaceflight_id", ticket.SpaceflightID.String()),
			)
			return apperr.NewStorage("insert ticket", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		// A deferred constraint check can also surface here.
		if isSeatConflict(err) {
			return &apperr.Conflict{}
		}
		return apperr.NewStorage("commit create order", err)
	}

	return nil
}

func isSeatConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == uniqueViolation && pgErr.ConstraintName == seatConstraint
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := `
		SELECT id, user_id, created_at
		FROM orders
		WHERE id = $1
	`

	var order entity.Order
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.UserID,
		&order.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, apperr.NewStorage("find order by ID", err)
	}

	return &order, nil
}

func (r *orderRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, user_id, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find orders by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, apperr.NewStorage("find orders by user ID", err)
	}
	defer rows.Close()

	return scanOrders(rows, r.log)
}

func (r *orderRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM orders WHERE user_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		r.log.Error("Failed to count orders by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, apperr.NewStorage("count orders by user ID", err)
	}

	return count, nil
}

func (r *orderRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, user_id, created_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find orders", zap.Error(err))
		return nil, apperr.NewStorage("find orders", err)
	}
	defer rows.Close()

	return scanOrders(rows, r.log)
}

func (r *orderRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count); err != nil {
		r.log.Error("Failed to count orders", zap.Error(err))
		return 0, apperr.NewStorage("count orders", err)
	}

	return count, nil
}

// Delete cascades to the order's tickets.
func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete order",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return apperr.NewStorage("delete order", err)
	}

	if result.RowsAffected() == 0 {
		return &apperr.NotFound{Resource: "order", ID: id.String()}
	}

	r.log.Info("Order deleted", zap.String("order_id", id.String()))
	return nil
}

func scanOrders(rows pgx.Rows, log *zap.Logger) ([]*entity.Order, error) {
	var orders []*entity.Order
	for rows.Next() {
		var order entity.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.CreatedAt); err != nil {
			log.Error("Failed to scan order row", zap.Error(err))
			return nil, apperr.NewStorage("scan order row", err)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		log.Error("Rows iteration error", zap.Error(err))
		return nil, apperr.NewStorage("iterate order rows", err)
	}

	return orders, nil
}
