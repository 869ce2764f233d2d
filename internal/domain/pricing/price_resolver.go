// Package pricing holds the pure price and cost resolution logic. Both
// resolvers compute over data supplied by the caller; they never touch
// storage and never mutate their inputs.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Buyer exposes the two customer fields pricing depends on. Customer
// subtypes (individual, corporate) all collapse into this view.
type Buyer struct {
	PriceListID  string
	PaymentTerms string // cash, credit
}

// BuyerOf builds the pricing view of a customer. A nil customer is an
// anonymous cash buyer with no list.
func BuyerOf(c *entity.Customer) Buyer {
	if c == nil {
		return Buyer{PaymentTerms: entity.PaymentCash}
	}
	return Buyer{PriceListID: c.PriceListID, PaymentTerms: c.PaymentTerms}
}

// ResolvePrice computes the price the buyer pays for the product right now.
//
// Precedence, strictly ordered:
//  1. start from the product's base price
//  2. within the effective list, a product-specific override replaces the
//     base price outright (no discount layering on top)
//  3. otherwise the matching category discount applies, falling back to the
//     list's global discount
//  4. credit-terms buyers pay one month's interest on top
//
// list is the already-effective price list (the buyer's own, or the system
// default) and may be nil: the base price then stands. settings may be nil:
// no interest is charged. Rounding to 2 decimals happens once, at the end.
func ResolvePrice(product *entity.Product, buyer Buyer, list *entity.PriceList, settings *entity.Settings) (decimal.Decimal, error) {
	if product == nil || product.Price.IsNegative() {
		return decimal.Decimal{}, domain.ErrInvalidInput
	}

	price := product.Price
	if list != nil {
		if override, ok := list.ProductPriceFor(product.ID); ok {
			price = override
		} else {
			discount := list.GlobalDiscountPercentage
			if d, ok := list.CategoryDiscountFor(product.CategoryID); ok {
				discount = d
			}
			if discount.IsPositive() {
				price = price.Mul(hundred.Sub(discount)).Div(hundred)
			}
		}
	}

	// Flat single-period surcharge, independent of any order term length.
	if buyer.PaymentTerms == entity.PaymentCredit && settings != nil && settings.MonthlyInterestRate.IsPositive() {
		price = price.Mul(hundred.Add(settings.MonthlyInterestRate)).Div(hundred)
	}

	return price.Round(2), nil
}
