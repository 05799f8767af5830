// Package access is the authorization predicate consumed before any
// service call. It is pure: no state, no storage.
package access

import "github.com/google/uuid"

type Role string

const (
	RoleAnonymous Role = ""
	RoleCustomer  Role = "customer"
	RoleAdmin     Role = "admin"
)

// Identity is the resolved caller. A zero Identity is anonymous.
type Identity struct {
	UserID uuid.UUID
	Role   Role
}

func (i Identity) IsAuthenticated() bool {
	return i.UserID != uuid.Nil && i.Role != RoleAnonymous
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type Resource string

const (
	ResourceCatalog Resource = "catalog" // planets, spaceports, routes, crews, types, ships
	ResourceFlight  Resource = "flight"
	ResourceOrder   Resource = "order"
)

// CanPerform decides whether identity may take action on resource.
// Anonymous callers read reference data; customers additionally create
// and read their own orders; admins do everything. Order ownership is
// checked by the order service, not here.
func CanPerform(identity Identity, action Action, resource Resource) bool {
	if identity.IsAdmin() {
		return true
	}

	switch resource {
	case ResourceCatalog, ResourceFlight:
		return action == ActionRead
	case ResourceOrder:
		if !identity.IsAuthenticated() {
			return false
		}
		return action == ActionRead || action == ActionCreate
	}

	return false
}
