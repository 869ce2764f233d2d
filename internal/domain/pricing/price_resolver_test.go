package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/pricing"
)

func product(price string) *entity.Product {
	return &entity.Product{
		ID:         "prod-1",
		CategoryID: "cat-1",
		Price:      decimal.RequireFromString(price),
	}
}

func cashBuyer() pricing.Buyer {
	return pricing.Buyer{PaymentTerms: entity.PaymentCash}
}

func creditBuyer() pricing.Buyer {
	return pricing.Buyer{PaymentTerms: entity.PaymentCredit}
}

func settingsWithRate(monthly string) *entity.Settings {
	return &entity.Settings{MonthlyInterestRate: decimal.RequireFromString(monthly)}
}

// With no list, no discount and cash terms the base price stands unmodified.
func TestResolvePrice_BasePriceStands(t *testing.T) {
	got, err := pricing.ResolvePrice(product("149.90"), cashBuyer(), nil, nil)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("149.90").Equal(got), "got %s", got)
}

func TestResolvePrice_NilProductIsInvalid(t *testing.T) {
	_, err := pricing.ResolvePrice(nil, cashBuyer(), nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestResolvePrice_NegativeBasePriceIsInvalid(t *testing.T) {
	_, err := pricing.ResolvePrice(product("-1"), cashBuyer(), nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// A product-specific override replaces the base price outright; a matching
// category discount on the same list must not stack on top of it.
func TestResolvePrice_OverrideWinsOverCategoryDiscount(t *testing.T) {
	list := &entity.PriceList{
		ProductPrices: []entity.ProductPrice{
			{ProductID: "prod-1", Price: decimal.RequireFromString("80")},
		},
		CategoryDiscounts: []entity.CategoryDiscount{
			{CategoryID: "cat-1", DiscountPercentage: decimal.RequireFromString("50")},
		},
		GlobalDiscountPercentage: decimal.RequireFromString("25"),
	}
	got, err := pricing.ResolvePrice(product("100"), cashBuyer(), list, nil)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("80").Equal(got), "got %s", got)
}

// Category discount beats the global discount when both could apply.
func TestResolvePrice_CategoryDiscountBeatsGlobal(t *testing.T) {
	list := &entity.PriceList{
		CategoryDiscounts: []entity.CategoryDiscount{
			{CategoryID: "cat-1", DiscountPercentage: decimal.RequireFromString("10")},
		},
		GlobalDiscountPercentage: decimal.RequireFromString("30"),
	}
	got, err := pricing.ResolvePrice(product("200"), cashBuyer(), list, nil)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("180").Equal(got), "got %s", got)
}

// Global discount applies only when no category entry matches.
func TestResolvePrice_GlobalDiscountFallback(t *testing.T) {
	list := &entity.PriceList{
		CategoryDiscounts: []entity.CategoryDiscount{
			{CategoryID: "other-cat", DiscountPercentage: decimal.RequireFromString("50")},
		},
		GlobalDiscountPercentage: decimal.RequireFromString("30"),
	}
	got, err := pricing.ResolvePrice(product("200"), cashBuyer(), list, nil)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("140").Equal(got), "got %s", got)
}

// Credit surcharge applies once, after any discount:
// 100 * 0.9 * 1.05 = 94.50.
func TestResolvePrice_CreditSurchargeAfterDiscount(t *testing.T) {
	list := &entity.PriceList{
		GlobalDiscountPercentage: decimal.RequireFromString("10"),
	}
	got, err := pricing.ResolvePrice(product("100"), creditBuyer(), list, settingsWithRate("5"))
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("94.50").Equal(got), "got %s", got)
}

// No surcharge for cash buyers even when an interest rate is configured.
func TestResolvePrice_NoSurchargeForCashBuyer(t *testing.T) {
	got, err := pricing.ResolvePrice(product("100"), cashBuyer(), nil, settingsWithRate("5"))
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("100").Equal(got), "got %s", got)
}

// Missing settings degrade to zero interest rather than failing: this sits
// on the customer-facing display path.
func TestResolvePrice_MissingSettingsMeansNoInterest(t *testing.T) {
	got, err := pricing.ResolvePrice(product("100"), creditBuyer(), nil, nil)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("100").Equal(got), "got %s", got)
}

// The surcharge also applies on top of a product-specific override.
func TestResolvePrice_SurchargeOnOverride(t *testing.T) {
	list := &entity.PriceList{
		ProductPrices: []entity.ProductPrice{
			{ProductID: "prod-1", Price: decimal.RequireFromString("80")},
		},
	}
	got, err := pricing.ResolvePrice(product("100"), creditBuyer(), list, settingsWithRate("5"))
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("84").Equal(got), "got %s", got)
}

// Rounding happens once at the end, half-up to 2 decimals.
func TestResolvePrice_RoundsAtTheEndOnly(t *testing.T) {
	list := &entity.PriceList{
		GlobalDiscountPercentage: decimal.RequireFromString("33"),
	}
	// 9.99 * 0.67 = 6.6933 -> 6.69
	got, err := pricing.ResolvePrice(product("9.99"), cashBuyer(), list, nil)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("6.69").Equal(got), "got %s", got)
}

// Two calls with unchanged inputs return identical results and leave the
// inputs untouched.
func TestResolvePrice_IdempotentAndPure(t *testing.T) {
	p := product("123.45")
	list := &entity.PriceList{
		GlobalDiscountPercentage: decimal.RequireFromString("7"),
	}
	s := settingsWithRate("3")

	first, err1 := pricing.ResolvePrice(p, creditBuyer(), list, s)
	second, err2 := pricing.ResolvePrice(p, creditBuyer(), list, s)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.True(t, first.Equal(second))
	assert.True(t, decimal.RequireFromString("123.45").Equal(p.Price), "input product must not be mutated")
}
