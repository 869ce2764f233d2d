package dto

import "time"

// UpdateUserRequest changes a user's role or status (admin).
type UpdateUserRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=2,max=200"`
	Role   *string `json:"role" validate:"omitempty,oneof=admin sales_rep customer"`
	Status *string `json:"status" validate:"omitempty,oneof=active inactive suspended"`
}

// UserResponse is the user view (no password hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserListResponse is a paginated user listing.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
