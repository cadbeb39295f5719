package http

import (
	"net/http/httptest"
	"testing"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilterCriteria_Empty(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/products", nil)

	criteria, err := parseFilterCriteria(r)
	require.NoError(t, err)

	assert.Empty(t, criteria.RouteCategory)
	assert.Empty(t, criteria.SearchText)
	assert.Empty(t, criteria.SelectedCategories)
	assert.Nil(t, criteria.PriceMin)
	assert.Nil(t, criteria.PriceMax)
	assert.Zero(t, criteria.MinRating)
	assert.False(t, criteria.InStockOnly)
	assert.Equal(t, domain.SortFeatured, criteria.Sort)
}

func TestParseFilterCriteria_AllParams(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/api/v1/products?category=electronics&search=phone&categories=books,%20sports&price_min=10&price_max=99.99&min_rating=4.5&in_stock=true&sort=price-asc", nil)

	criteria, err := parseFilterCriteria(r)
	require.NoError(t, err)

	assert.Equal(t, "electronics", criteria.RouteCategory)
	assert.Equal(t, "phone", criteria.SearchText)
	assert.Equal(t, []string{"books", "sports"}, criteria.SelectedCategories)
	require.NotNil(t, criteria.PriceMin)
	require.NotNil(t, criteria.PriceMax)
	assert.True(t, criteria.PriceMin.Equal(decimal.NewFromInt(10)))
	assert.True(t, criteria.PriceMax.Equal(decimal.RequireFromString("99.99")))
	assert.Equal(t, 4.5, criteria.MinRating)
	assert.True(t, criteria.InStockOnly)
	assert.Equal(t, domain.SortPriceAsc, criteria.Sort)
}

func TestParseFilterCriteria_UnknownSortFallsBack(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/products?sort=cheapest-first", nil)

	criteria, err := parseFilterCriteria(r)
	require.NoError(t, err)

	assert.Equal(t, domain.SortFeatured, criteria.Sort)
}

func TestParseFilterCriteria_InvalidPrice(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/products?price_min=ten", nil)

	_, err := parseFilterCriteria(r)
	assert.ErrorIs(t, err, e.ErrInvalidPrice)

	r = httptest.NewRequest("GET", "/api/v1/products?price_max=-5", nil)

	_, err = parseFilterCriteria(r)
	assert.ErrorIs(t, err, e.ErrInvalidPrice)
}

func TestParseFilterCriteria_InvalidRating(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/products?min_rating=7", nil)

	_, err := parseFilterCriteria(r)
	assert.ErrorIs(t, err, e.ErrInvalidRating)
}

func TestToHTTPResponse(t *testing.T) {
	code, _ := ToHTTPResponse(e.ErrProductNotFound)
	assert.Equal(t, 404, code)

	code, _ = ToHTTPResponse(e.Wrap("OrderUseCase.Checkout", e.ErrEmptyCart))
	assert.Equal(t, 400, code)

	code, msg := ToHTTPResponse(assert.AnError)
	assert.Equal(t, 500, code)
	assert.Equal(t, e.ErrInternalServerError.Error(), msg)
}

func TestSessionID_GeneratesAndEchoes(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/v1/cart", nil)

	id := sessionID(w, r)

	assert.NotEmpty(t, id)
	assert.Equal(t, id, w.Header().Get("X-Session-ID"))
}

func TestSessionID_KeepsExisting(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/v1/cart", nil)
	r.Header.Set("X-Session-ID", "session-42")

	assert.Equal(t, "session-42", sessionID(w, r))
	assert.Equal(t, "session-42", w.Header().Get("X-Session-ID"))
}
