package access

import (
	"testing"

	"github.com/google/uuid"
)

func TestCanPerform(t *testing.T) {
	anonymous := Identity{}
	customerID := uuid.New()
	customer := Identity{UserID: customerID, Role: RoleCustomer}
	admin := Identity{UserID: uuid.New(), Role: RoleAdmin}

	tests := []struct {
		name     string
		identity Identity
		action   Action
		resource Resource
		want     bool
	}{
		{"anonymous reads catalog", anonymous, ActionRead, ResourceCatalog, true},
		{"anonymous reads flights", anonymous, ActionRead, ResourceFlight, true},
		{"anonymous cannot create flights", anonymous, ActionCreate, ResourceFlight, false},
		{"anonymous cannot read orders", anonymous, ActionRead, ResourceOrder, false},
		{"anonymous cannot create orders", anonymous, ActionCreate, ResourceOrder, false},

		{"customer reads catalog", customer, ActionRead, ResourceCatalog, true},
		{"customer cannot write catalog", customer, ActionCreate, ResourceCatalog, false},
		{"customer cannot delete catalog", customer, ActionDelete, ResourceCatalog, false},
		{"customer creates orders", customer, ActionCreate, ResourceOrder, true},
		{"customer reads orders", customer, ActionRead, ResourceOrder, true},
		{"customer cannot delete orders", customer, ActionDelete, ResourceOrder, false},
		{"customer cannot create flights", customer, ActionCreate, ResourceFlight, false},

		{"admin writes catalog", admin, ActionCreate, ResourceCatalog, true},
		{"admin deletes flights", admin, ActionDelete, ResourceFlight, true},
		{"admin deletes orders", admin, ActionDelete, ResourceOrder, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanPerform(tt.identity, tt.action, tt.resource); got != tt.want {
				t.Fatalf("CanPerform(%v, %s, %s) = %v, want %v",
					tt.identity.Role, tt.action, tt.resource, got, tt.want)
			}
		})
	}
}

func TestIdentityPredicates(t *testing.T) {
	if (Identity{}).IsAuthenticated() {
		t.Fatal("zero identity must not be authenticated")
	}
	if (Identity{UserID: uuid.New()}).IsAuthenticated() {
		t.Fatal("identity without role must not be authenticated")
	}
	if !(Identity{UserID: uuid.New(), Role: RoleCustomer}).IsAuthenticated() {
		t.Fatal("customer identity must be authenticated")
	}
	if (Identity{UserID: uuid.New(), Role: RoleCustomer}).IsAdmin() {
		t.Fatal("customer is not admin")
	}
	if !(Identity{UserID: uuid.New(), Role: RoleAdmin}).IsAdmin() {
		t.Fatal("admin identity must be admin")
	}
}
