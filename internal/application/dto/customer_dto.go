package dto

import "time"

// UpdateCustomerRequest updates a customer's commercial data (admin).
type UpdateCustomerRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=2,max=200"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	PaymentTerms *string `json:"payment_terms" validate:"omitempty,oneof=cash credit"`
	PriceListID  *string `json:"price_list_id" validate:"omitempty,uuid"`
	SalesRepID   *string `json:"sales_rep_id" validate:"omitempty,uuid"`
}

// CustomerResponse is the customer view.
type CustomerResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id,omitempty"`
	Kind         string    `json:"kind"`
	Name         string    `json:"name"`
	TaxNumber    string    `json:"tax_number,omitempty"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	City         string    `json:"city,omitempty"`
	PaymentTerms string    `json:"payment_terms"`
	PriceListID  string    `json:"price_list_id,omitempty"`
	SalesRepID   string    `json:"sales_rep_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CustomerListResponse is a paginated customer listing.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
