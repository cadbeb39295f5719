package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func testCatalog() []Product {
	return []Product{
		{ID: 1, Name: "iPhone 15 Pro", Description: "The most advanced iPhone yet", Category: "electronics", Price: dec("999"), Rating: 4.8, InStock: true},
		{ID: 2, Name: "MacBook Pro 16", Description: "Supercharged by M3 Max chip", Category: "electronics", Price: dec("2499"), Rating: 4.9, InStock: true},
		{ID: 3, Name: "Premium Cotton T-Shirt", Description: "Soft and comfortable", Category: "clothing", Price: dec("29"), Rating: 4.5, InStock: true},
		{ID: 4, Name: "JavaScript: The Definitive Guide", Description: "The comprehensive guide to JavaScript", Category: "books", Price: dec("45"), Rating: 4.7, InStock: true},
		{ID: 5, Name: "Professional Tennis Racket", Description: "High-performance racket", Category: "sports", Price: dec("149"), Rating: 4.4, InStock: false},
		{ID: 6, Name: "Wireless Bluetooth Headphones", Description: "Premium wireless headphones", Category: "electronics", Price: dec("79"), Rating: 4.3, InStock: true},
	}
}

func ids(products []Product) []int64 {
	result := make([]int64, 0, len(products))
	for _, p := range products {
		result = append(result, p.ID)
	}
	return result
}

func TestQueryProducts_NoCriteriaReturnsCatalogOrder(t *testing.T) {
	catalog := testCatalog()

	got := QueryProducts(catalog, FilterCriteria{})

	assert.Equal(t, ids(catalog), ids(got))
}

func TestQueryProducts_EmptyCatalog(t *testing.T) {
	got := QueryProducts(nil, FilterCriteria{RouteCategory: "electronics"})

	assert.Empty(t, got)
}

func TestQueryProducts_DoesNotMutateCatalog(t *testing.T) {
	catalog := testCatalog()
	original := ids(catalog)

	QueryProducts(catalog, FilterCriteria{Sort: SortPriceDesc})

	assert.Equal(t, original, ids(catalog))
}

func TestQueryProducts_RouteCategory(t *testing.T) {
	got := QueryProducts(testCatalog(), FilterCriteria{RouteCategory: "clothing"})

	assert.Equal(t, []int64{3}, ids(got))
}

func TestQueryProducts_RouteCategoryOrphanYieldsNothing(t *testing.T) {
	got := QueryProducts(testCatalog(), FilterCriteria{RouteCategory: "furniture"})

	assert.Empty(t, got)
}

func TestQueryProducts_SearchCaseInsensitive(t *testing.T) {
	got := QueryProducts(testCatalog(), FilterCriteria{SearchText: "MACBOOK"})
	assert.Equal(t, []int64{2}, ids(got))

	// Подстрока из description тоже совпадает
	got = QueryProducts(testCatalog(), FilterCriteria{SearchText: "comprehensive"})
	assert.Equal(t, []int64{4}, ids(got))
}

func TestQueryProducts_WhitespaceSearchIsAbsent(t *testing.T) {
	got := QueryProducts(testCatalog(), FilterCriteria{SearchText: "   "})

	assert.Len(t, got, len(testCatalog()))
}

func TestQueryProducts_CategoryFacetOR(t *testing.T) {
	got := QueryProducts(testCatalog(), FilterCriteria{
		SelectedCategories: []string{"clothing", "books"},
	})

	assert.Equal(t, []int64{3, 4}, ids(got))
}

func TestQueryProducts_RouteAndFacetAreConjunctive(t *testing.T) {
	got := QueryProducts(testCatalog(), FilterCriteria{
		RouteCategory:      "electronics",
		SelectedCategories: []string{"clothing"},
	})

	assert.Empty(t, got)
}

func TestQueryProducts_PriceRangeInclusive(t *testing.T) {
	got := QueryProducts(testCatalog(), FilterCriteria{
		PriceMin: decPtr("29"),
		PriceMax: decPtr("149"),
	})

	assert.Equal(t, []int64{3, 4, 5, 6}, ids(got))
}

func TestQueryProducts_PriceRangeMinAboveMaxMatchesNothing(t *testing.T) {
	got := QueryProducts(testCatalog(), FilterCriteria{
		PriceMin: decPtr("1000"),
		PriceMax: decPtr("100"),
	})

	assert.Empty(t, got)
}

func TestQueryProducts_MinRating(t *testing.T) {
	got := QueryProducts(testCatalog(), FilterCriteria{MinRating: 4.7})

	assert.Equal(t, []int64{1, 2, 4}, ids(got))
}

func TestQueryProducts_InStockOnly(t *testing.T) {
	got := QueryProducts(testCatalog(), FilterCriteria{InStockOnly: true})

	assert.NotContains(t, ids(got), int64(5))
	assert.Len(t, got, 5)
}

func TestQueryProducts_ConjunctionAcrossStages(t *testing.T) {
	catalog := testCatalog()
	criteria := FilterCriteria{
		SelectedCategories: []string{"electronics"},
		PriceMin:           decPtr("50"),
		PriceMax:           decPtr("1500"),
		MinRating:          4.5,
		InStockOnly:        true,
	}

	got := QueryProducts(catalog, criteria)

	require.Equal(t, []int64{1}, ids(got))
	for _, p := range got {
		assert.Equal(t, "electronics", p.Category)
		assert.True(t, p.Price.GreaterThanOrEqual(dec("50")))
		assert.True(t, p.Price.LessThanOrEqual(dec("1500")))
		assert.GreaterOrEqual(t, p.Rating, 4.5)
		assert.True(t, p.InStock)
	}
}

func TestQueryProducts_Idempotent(t *testing.T) {
	criteria := FilterCriteria{
		SelectedCategories: []string{"electronics"},
		MinRating:          4.5,
		Sort:               SortPriceAsc,
	}

	once := QueryProducts(testCatalog(), criteria)
	twice := QueryProducts(once, criteria)

	assert.Equal(t, once, twice)
}

func TestQueryProducts_SortPriceAsc(t *testing.T) {
	got := QueryProducts(testCatalog(), FilterCriteria{Sort: SortPriceAsc})

	assert.Equal(t, []int64{3, 4, 6, 5, 1, 2}, ids(got))
}

func TestQueryProducts_SortPriceDesc(t *testing.T) {
	got := QueryProducts(testCatalog(), FilterCriteria{Sort: SortPriceDesc})

	assert.Equal(t, []int64{2, 1, 5, 6, 4, 3}, ids(got))
}

func TestQueryProducts_SortRatingDesc(t *testing.T) {
	got := QueryProducts(testCatalog(), FilterCriteria{Sort: SortRatingDesc})

	assert.Equal(t, []int64{2, 1, 4, 3, 5, 6}, ids(got))
}

func TestQueryProducts_SortNameAsc(t *testing.T) {
	got := QueryProducts(testCatalog(), FilterCriteria{Sort: SortNameAsc})

	require.Len(t, got, 6)
	assert.Equal(t, "iPhone 15 Pro", got[0].Name)
	assert.Equal(t, "JavaScript: The Definitive Guide", got[1].Name)
}

func TestQueryProducts_SortIsStable(t *testing.T) {
	catalog := []Product{
		{ID: 10, Name: "First", Price: dec("100"), Rating: 4.0},
		{ID: 11, Name: "Second", Price: dec("100"), Rating: 4.0},
		{ID: 12, Name: "Third", Price: dec("100"), Rating: 4.0},
	}

	got := QueryProducts(catalog, FilterCriteria{Sort: SortPriceAsc})
	assert.Equal(t, []int64{10, 11, 12}, ids(got))

	got = QueryProducts(catalog, FilterCriteria{Sort: SortRatingDesc})
	assert.Equal(t, []int64{10, 11, 12}, ids(got))
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortPriceAsc, ParseSortKey("price-asc"))
	assert.Equal(t, SortFeatured, ParseSortKey("featured"))

	// Неизвестный ключ откатывается к featured, а не к ошибке
	assert.Equal(t, SortFeatured, ParseSortKey("cheapest-first"))
	assert.Equal(t, SortFeatured, ParseSortKey(""))
}

func TestRelatedProducts(t *testing.T) {
	catalog := testCatalog()

	got := RelatedProducts(catalog, &catalog[0], 4)

	assert.Equal(t, []int64{2, 6}, ids(got))
}

func TestRelatedProducts_Limit(t *testing.T) {
	catalog := testCatalog()

	got := RelatedProducts(catalog, &catalog[0], 1)

	assert.Equal(t, []int64{2}, ids(got))
}
