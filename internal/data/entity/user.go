package entity

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	Base
	Email    string `db:"email"`
	Password string `db:"password"` // bcrypt hash
	FullName string `db:"full_name"`
	Role     string `db:"role"`
}
