package dto

// RegisterRequest creates a customer account with its login user.
type RegisterRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	Name         string `json:"name" validate:"required,min=2,max=200"`
	Kind         string `json:"kind" validate:"required,oneof=individual corporate"`
	TaxNumber    string `json:"tax_number" validate:"omitempty,max=20"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	City         string `json:"city"`
	PaymentTerms string `json:"payment_terms" validate:"omitempty,oneof=cash credit"`
}

// LoginRequest authenticates a user.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries the signed token and the authenticated identity.
type AuthResponse struct {
	Token      string `json:"token"`
	UserID     string `json:"user_id"`
	CustomerID string `json:"customer_id,omitempty"`
	Role       string `json:"role"`
	Name       string `json:"name"`
}
