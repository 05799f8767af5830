package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// pruneEmptyOrders removes orders whose last ticket was cascade-deleted.
// Every delete that can transitively remove tickets (flight, route, ship,
// spaceport, planet, ship type) runs this inside its own transaction so
// readers never observe an order without tickets.
func pruneEmptyOrders(ctx context.Context, tx pgx.Tx) (int64, error) {
	query := `
		DELETE FROM orders o
		WHERE NOT EXISTS (
			SELECT 1 FROM tickets t WHERE t.order_id = o.id
		)
	`

	tag, err := tx.Exec(ctx, query)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
