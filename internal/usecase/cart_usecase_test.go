package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	products map[int64]domain.Product
}

func (f *fakeCatalog) ProductByID(productID int64) (domain.Product, bool) {
	p, ok := f.products[productID]
	return p, ok
}

// fakeCartStore хранит строки в памяти и считает обращения.
type fakeCartStore struct {
	saved   map[string][]domain.CartLine
	deleted int
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{saved: make(map[string][]domain.CartLine)}
}

func (f *fakeCartStore) Load(_ context.Context, sessionID string) ([]domain.CartLine, error) {
	return f.saved[sessionID], nil
}

func (f *fakeCartStore) Save(_ context.Context, sessionID string, lines []domain.CartLine) error {
	f.saved[sessionID] = lines
	return nil
}

func (f *fakeCartStore) Delete(_ context.Context, sessionID string) error {
	f.deleted++
	delete(f.saved, sessionID)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)        {}
func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

func testCartUC(store *fakeCartStore) *CartUseCase {
	catalog := &fakeCatalog{products: map[int64]domain.Product{
		1: {ID: 1, Name: "Laptop", Price: decimal.NewFromInt(999), Images: []string{"laptop.jpg"}},
		2: {ID: 2, Name: "T-Shirt", Price: decimal.NewFromInt(29)},
	}}

	return NewCartUC(catalog, store, domain.DefaultPricingRules(), nopLogger{})
}

func TestCartUC_AddItemJoinsProductAndTotals(t *testing.T) {
	uc := testCartUC(newFakeCartStore())

	res, err := uc.AddItem(context.Background(), "s1", 1, 1)
	require.NoError(t, err)

	res, err = uc.AddItem(context.Background(), "s1", 2, 2)
	require.NoError(t, err)

	require.Len(t, res.Items, 2)
	assert.Equal(t, 3, res.ItemCount)
	assert.Equal(t, "Laptop", res.Items[0].Product.Name)
	assert.True(t, res.Items[1].LineTotal.Equal(decimal.NewFromInt(58)))
	assert.True(t, res.Summary.Total.Equal(decimal.RequireFromString("1141.56")))
}

func TestCartUC_AddItemUnknownProduct(t *testing.T) {
	uc := testCartUC(newFakeCartStore())

	_, err := uc.AddItem(context.Background(), "s1", 42, 1)

	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestCartUC_SetQuantityZeroRemovesLine(t *testing.T) {
	uc := testCartUC(newFakeCartStore())

	_, err := uc.AddItem(context.Background(), "s1", 1, 1)
	require.NoError(t, err)

	res, err := uc.SetItemQuantity(context.Background(), "s1", 1, 0)
	require.NoError(t, err)

	assert.Empty(t, res.Items)
	assert.True(t, res.Summary.Total.IsZero())
}

func TestCartUC_SessionsAreIsolated(t *testing.T) {
	uc := testCartUC(newFakeCartStore())

	_, err := uc.AddItem(context.Background(), "s1", 1, 1)
	require.NoError(t, err)

	res, err := uc.GetCart(context.Background(), "s2")
	require.NoError(t, err)

	assert.Empty(t, res.Items)
}

func TestCartUC_PersistsLinesToStore(t *testing.T) {
	store := newFakeCartStore()
	uc := testCartUC(store)

	_, err := uc.AddItem(context.Background(), "s1", 1, 2)
	require.NoError(t, err)

	assert.Equal(t, []domain.CartLine{{ProductID: 1, Quantity: 2}}, store.saved["s1"])
}

func TestCartUC_RestoresCartFromStore(t *testing.T) {
	store := newFakeCartStore()
	store.saved["s1"] = []domain.CartLine{{ProductID: 2, Quantity: 3}}
	uc := testCartUC(store)

	res, err := uc.GetCart(context.Background(), "s1")
	require.NoError(t, err)

	require.Len(t, res.Items, 1)
	assert.Equal(t, int64(2), res.Items[0].Product.ID)
	assert.Equal(t, 3, res.ItemCount)
}

func TestCartUC_ClearDeletesStoredCart(t *testing.T) {
	store := newFakeCartStore()
	uc := testCartUC(store)

	_, err := uc.AddItem(context.Background(), "s1", 1, 1)
	require.NoError(t, err)

	res, err := uc.ClearCart(context.Background(), "s1")
	require.NoError(t, err)

	assert.Empty(t, res.Items)
	assert.Equal(t, 1, store.deleted)
}

func TestCartUC_OrphanedLineIsSkippedInView(t *testing.T) {
	store := newFakeCartStore()
	store.saved["s1"] = []domain.CartLine{
		{ProductID: 1, Quantity: 1},
		{ProductID: 99, Quantity: 2}, // товара нет в каталоге
	}
	uc := testCartUC(store)

	res, err := uc.GetCart(context.Background(), "s1")
	require.NoError(t, err)

	require.Len(t, res.Items, 1)
	assert.True(t, res.Summary.Subtotal.Equal(decimal.NewFromInt(999)))
}
