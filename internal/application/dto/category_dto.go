package dto

import "time"

// CreateCategoryRequest creates a category.
type CreateCategoryRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	ParentID string `json:"parent_id" validate:"omitempty,uuid"`
}

// UpdateCategoryRequest updates a category.
type UpdateCategoryRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=100"`
	Status *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// CategoryResponse is the category view.
type CategoryResponse struct {
	ID        string    `json:"id"`
	ParentID  string    `json:"parent_id,omitempty"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
