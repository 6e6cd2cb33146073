package pos_test

import (
	"testing"

	"restro_pos/pos"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddProduct_MergesDuplicates(t *testing.T) {
	engine, _, _, _, _ := newTestEngine()

	engine.AddProduct(productFixture(1, "Pad Thai", 9.50))
	engine.AddProduct(productFixture(1, "Pad Thai", 9.50))

	draft := engine.Draft()
	require.Len(t, draft.Cart.Items, 1)
	assert.Equal(t, 2, draft.Cart.Items[0].Quantity)
	assert.Equal(t, 19.00, draft.Cart.Items[0].Amount)
}

func TestAddProduct_RefreshesDriftedPrice(t *testing.T) {
	engine, _, _, _, _ := newTestEngine()

	engine.AddProduct(productFixture(1, "Pad Thai", 9.50))
	// Catalog refresh changed the price between the two adds.
	engine.AddProduct(productFixture(1, "Pad Thai", 10.00))

	draft := engine.Draft()
	require.Len(t, draft.Cart.Items, 1)
	assert.Equal(t, 10.00, draft.Cart.Items[0].UnitPrice)
	assert.Equal(t, 20.00, draft.Cart.Items[0].Amount)
}

func TestSetQuantity_RejectsBelowOne(t *testing.T) {
	engine, _, _, _, _ := newTestEngine()
	engine.AddProduct(productFixture(1, "Green Curry", 11.00))

	for _, qty := range []int{0, -3} {
		err := engine.SetQuantity(0, qty)
		require.Error(t, err)
		assert.ErrorAs(t, err, &pos.ValidationError{})
		assert.Equal(t, 1, engine.Draft().Cart.Items[0].Quantity, "prior value must be retained")
	}
}

func TestSetQuantity_UnknownIndex(t *testing.T) {
	engine, _, _, _, _ := newTestEngine()
	assert.ErrorIs(t, engine.SetQuantity(3, 2), pos.ErrItemNotFound)
}

func TestTotal_AlwaysCurrent(t *testing.T) {
	engine, _, _, _, _ := newTestEngine()

	engine.AddProduct(productFixture(1, "Spring Rolls", 5.00))
	engine.AddProduct(productFixture(1, "Spring Rolls", 5.00))
	assert.Equal(t, 10.00, engine.Total())

	require.NoError(t, engine.SetQuantity(0, 3))
	assert.Equal(t, 15.00, engine.Total())

	engine.AddProduct(productFixture(2, "Iced Tea", 2.50))
	assert.Equal(t, 17.50, engine.Total())

	require.NoError(t, engine.RemoveItem(1))
	assert.Equal(t, 15.00, engine.Total())
}

func TestRemoveItem_ClearsSelection(t *testing.T) {
	engine, _, _, _, _ := newTestEngine()
	engine.AddProduct(productFixture(1, "Soup", 4.00))
	engine.AddProduct(productFixture(2, "Rice", 3.00))

	engine.SelectNext()
	engine.SelectNext()
	require.Equal(t, 1, engine.Selected())

	require.NoError(t, engine.RemoveItem(1))
	assert.Equal(t, -1, engine.Selected())
}

func TestRemoveItem_ShiftsSelectionAbove(t *testing.T) {
	engine, _, _, _, _ := newTestEngine()
	engine.AddProduct(productFixture(1, "Soup", 4.00))
	engine.AddProduct(productFixture(2, "Rice", 3.00))

	engine.SelectNext()
	engine.SelectNext() // second row selected

	require.NoError(t, engine.RemoveItem(0))
	assert.Equal(t, 0, engine.Selected())
}

func TestSelection_WrapsAndEditsQuantity(t *testing.T) {
	engine, _, _, _, _ := newTestEngine()
	engine.AddProduct(productFixture(1, "Soup", 4.00))
	engine.AddProduct(productFixture(2, "Rice", 3.00))

	assert.Equal(t, -1, engine.Selected())

	engine.SelectPrev()
	assert.Equal(t, 1, engine.Selected(), "prev from nothing wraps to bottom")

	engine.SelectNext()
	assert.Equal(t, 0, engine.Selected(), "next wraps to top")

	require.NoError(t, engine.IncrementSelected())
	require.NoError(t, engine.IncrementSelected())
	assert.Equal(t, 3, engine.Draft().Cart.Items[0].Quantity)

	require.NoError(t, engine.DecrementSelected())
	assert.Equal(t, 2, engine.Draft().Cart.Items[0].Quantity)

	require.NoError(t, engine.RemoveSelected())
	assert.Len(t, engine.Draft().Cart.Items, 1)
	assert.Equal(t, -1, engine.Selected())
}

func TestDecrementSelected_StopsAtOne(t *testing.T) {
	engine, _, _, _, _ := newTestEngine()
	engine.AddProduct(productFixture(1, "Soup", 4.00))
	engine.SelectNext()

	err := engine.DecrementSelected()
	require.Error(t, err)
	assert.Equal(t, 1, engine.Draft().Cart.Items[0].Quantity)
}
