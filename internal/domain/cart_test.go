package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddMergesQuantities(t *testing.T) {
	cart := NewCart()

	cart.Add(1, 2)
	cart.Add(1, 3)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, CartLine{ProductID: 1, Quantity: 5}, lines[0])
}

func TestCart_AddRejectsNonPositiveQuantity(t *testing.T) {
	cart := NewCart()

	cart.Add(1, 0)
	cart.Add(1, -3)

	assert.Empty(t, cart.Lines())
}

func TestCart_AddPreservesInsertionOrder(t *testing.T) {
	cart := NewCart()

	cart.Add(3, 1)
	cart.Add(1, 1)
	cart.Add(2, 1)
	cart.Add(3, 1) // мердж не меняет позицию строки

	lines := cart.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, int64(3), lines[0].ProductID)
	assert.Equal(t, int64(1), lines[1].ProductID)
	assert.Equal(t, int64(2), lines[2].ProductID)
}

func TestCart_SetQuantityToZeroRemovesLine(t *testing.T) {
	cart := NewCart()
	cart.Add(1, 1)

	cart.SetQuantity(1, 0)

	assert.Empty(t, cart.Lines())
	assert.Zero(t, cart.ItemCount())
}

func TestCart_SetQuantityNegativeRemovesLine(t *testing.T) {
	cart := NewCart()
	cart.Add(1, 5)

	cart.SetQuantity(1, -1)

	assert.Empty(t, cart.Lines())
}

func TestCart_SetQuantityUpdatesLine(t *testing.T) {
	cart := NewCart()
	cart.Add(1, 1)

	cart.SetQuantity(1, 7)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].Quantity)
}

func TestCart_SetQuantityUnknownProductIsNoop(t *testing.T) {
	cart := NewCart()
	cart.Add(1, 1)

	cart.SetQuantity(99, 5)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(1), lines[0].ProductID)
}

func TestCart_RemoveIsNoopOnMissingKey(t *testing.T) {
	cart := NewCart()
	cart.Add(1, 2)

	cart.Remove(42)
	assert.Len(t, cart.Lines(), 1)

	cart.Remove(1)
	assert.Empty(t, cart.Lines())
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart()
	cart.Add(1, 2)
	cart.Add(2, 3)

	cart.Clear()

	assert.Empty(t, cart.Lines())
	assert.Zero(t, cart.ItemCount())
}

func TestCart_ItemCountSumsQuantities(t *testing.T) {
	cart := NewCart()
	cart.Add(1, 2)
	cart.Add(2, 3)

	assert.Equal(t, 5, cart.ItemCount())
}

func TestCart_LinesReturnsCopy(t *testing.T) {
	cart := NewCart()
	cart.Add(1, 2)

	lines := cart.Lines()
	lines[0].Quantity = 100

	assert.Equal(t, 2, cart.Lines()[0].Quantity)
}

func TestNewCartFromLines_ReplaysAdds(t *testing.T) {
	cart := NewCartFromLines([]CartLine{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 0}, // битая строка отбрасывается
		{ProductID: 3, Quantity: 1},
	})

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, int64(1), lines[0].ProductID)
	assert.Equal(t, int64(3), lines[1].ProductID)
}
