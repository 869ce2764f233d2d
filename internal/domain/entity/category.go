package entity

import "time"

// Category represents a product category (optionally hierarchical).
type Category struct {
	ID        string
	ParentID  string // empty when root
	Name      string
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
