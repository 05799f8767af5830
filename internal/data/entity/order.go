package entity

import "github.com/google/uuid"

// Order is a user's atomic purchase unit. It always owns at least one
// ticket; orders emptied by cascade deletes are pruned.
type Order struct {
	BaseSimple
	UserID uuid.UUID `db:"user_id"`
}
