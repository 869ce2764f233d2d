package entity

import "time"

// Customer kinds and payment terms.
const (
	CustomerIndividual = "individual"
	CustomerCorporate  = "corporate"

	PaymentCash   = "cash"
	PaymentCredit = "credit"
)

// Customer represents a buying account. Kind discriminates individual vs
// corporate; the pricing engine only ever looks at PriceListID and
// PaymentTerms.
type Customer struct {
	ID           string
	UserID       string // login account, empty for offline customers
	Kind         string // individual, corporate
	Name         string
	TaxNumber    string // corporate tax number or national ID
	Email        string
	Phone        string
	Address      string
	City         string
	PaymentTerms string // cash, credit
	PriceListID  string // empty means the default list applies
	SalesRepID   string // assigned sales representative, optional
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
