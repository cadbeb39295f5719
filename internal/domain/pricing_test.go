package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func priceTable(prices map[int64]decimal.Decimal) func(int64) (decimal.Decimal, bool) {
	return func(productID int64) (decimal.Decimal, bool) {
		price, ok := prices[productID]
		return price, ok
	}
}

func TestSummarize_EmptyCartIsAllZero(t *testing.T) {
	rules := DefaultPricingRules()

	summary := rules.Summarize(nil, priceTable(nil))

	assert.True(t, summary.Subtotal.IsZero())
	assert.True(t, summary.Shipping.IsZero(), "пустая корзина не оплачивает доставку")
	assert.True(t, summary.Tax.IsZero())
	assert.True(t, summary.Total.IsZero())
}

func TestSummarize_ShippingThresholdIsStrict(t *testing.T) {
	rules := DefaultPricingRules()
	lines := []CartLine{{ProductID: 1, Quantity: 1}}

	// Ровно 50.00 — доставка платная
	summary := rules.Summarize(lines, priceTable(map[int64]decimal.Decimal{1: dec("50.00")}))
	assert.True(t, summary.Shipping.Equal(dec("9.99")))

	// 50.01 — уже бесплатная
	summary = rules.Summarize(lines, priceTable(map[int64]decimal.Decimal{1: dec("50.01")}))
	assert.True(t, summary.Shipping.IsZero())
}

func TestSummarize_TaxIsNotRounded(t *testing.T) {
	rules := DefaultPricingRules()
	lines := []CartLine{{ProductID: 1, Quantity: 1}}

	summary := rules.Summarize(lines, priceTable(map[int64]decimal.Decimal{1: dec("10.01")}))

	assert.True(t, summary.Tax.Equal(dec("0.8008")), "tax = %s", summary.Tax)
}

func TestSummarize_SkipsOrphanedLines(t *testing.T) {
	rules := DefaultPricingRules()
	lines := []CartLine{
		{ProductID: 1, Quantity: 1},
		{ProductID: 99, Quantity: 4}, // товара нет в каталоге
	}

	summary := rules.Summarize(lines, priceTable(map[int64]decimal.Decimal{1: dec("20")}))

	assert.True(t, summary.Subtotal.Equal(dec("20")))
}

// Сквозной сценарий: фильтрация каталога, наполнение корзины, итоги.
func TestStorefrontScenario(t *testing.T) {
	catalog := []Product{
		{ID: 1, Name: "Laptop", Category: "electronics", Price: dec("999"), Rating: 4.8, InStock: true},
		{ID: 2, Name: "T-Shirt", Category: "clothing", Price: dec("29"), Rating: 4.5, InStock: true},
	}

	got := QueryProducts(catalog, FilterCriteria{
		SelectedCategories: []string{"electronics"},
		Sort:               SortPriceAsc,
	})
	require.Len(t, got, 1)
	require.Equal(t, int64(1), got[0].ID)

	cart := NewCart()
	cart.Add(1, 1)
	cart.Add(2, 2)
	require.Equal(t, 3, cart.ItemCount())

	prices := priceTable(map[int64]decimal.Decimal{1: dec("999"), 2: dec("29")})
	summary := DefaultPricingRules().Summarize(cart.Lines(), prices)

	assert.True(t, summary.Subtotal.Equal(dec("1057")), "subtotal = %s", summary.Subtotal)
	assert.True(t, summary.Shipping.IsZero())
	assert.True(t, summary.Tax.Equal(dec("84.56")), "tax = %s", summary.Tax)
	assert.True(t, summary.Total.Equal(dec("1141.56")), "total = %s", summary.Total)
}
