package entity

import "time"

// Valid roles for User.
const (
	RoleAdmin    = "admin"
	RoleSalesRep = "sales_rep"
	RoleCustomer = "customer"
)

// User represents a system account. Customer-role users are linked to a
// Customer record that carries the commercial data (price list, terms).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, never plain after persisting
	Name         string
	Role         string // admin, sales_rep, customer
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
