package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/catalog"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/i18n"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/servererrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id string, price float64, stock int) catalog.Product {
	return catalog.Product{
		ID:       id,
		Name:     i18n.Text{EN: "Product " + id, ZH: "产品" + id},
		Category: catalog.CategoryToys,
		Price:    price,
		Stock:    stock,
	}
}

func TestCart_addItem(t *testing.T) {
	c := New()
	productA := testProduct("prod-a", 10, 5)

	require.NoError(t, c.AddItem(productA, 2))
	assert.Equal(t, 2, c.TotalItems())
	assert.Equal(t, 20.0, c.TotalPrice())

	// adding the same product merges into one line, clamped to stock
	require.NoError(t, c.AddItem(productA, 10))
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 50.0, c.TotalPrice())
}

func TestCart_addItem_zeroStock(t *testing.T) {
	c := New()

	err := c.AddItem(testProduct("prod-a", 10, 0), 1)
	assert.ErrorIs(t, err, servererrors.ErrOutOfStock)
	assert.Empty(t, c.Items())
	assert.Equal(t, 0, c.TotalItems())
}

func TestCart_addItem_defaultQuantity(t *testing.T) {
	c := New()

	require.NoError(t, c.AddItem(testProduct("prod-a", 10, 5), 0))
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestCart_updateQuantity(t *testing.T) {
	c := New()
	productA := testProduct("prod-a", 10, 5)
	require.NoError(t, c.AddItem(productA, 2))

	c.UpdateQuantity("prod-a", 1)
	assert.Equal(t, 1, c.TotalItems())
	assert.Equal(t, 10.0, c.TotalPrice())

	// clamps to stock
	c.UpdateQuantity("prod-a", 100)
	assert.Equal(t, 5, c.TotalItems())

	// zero removes the line rather than leaving a zero-quantity entry
	c.UpdateQuantity("prod-a", 0)
	assert.Empty(t, c.Items())

	// unknown id is a no-op
	c.UpdateQuantity("prod-unknown", 3)
	assert.Empty(t, c.Items())
}

func TestCart_removeItem(t *testing.T) {
	c := New()
	productA := testProduct("prod-a", 10, 5)
	productB := testProduct("prod-b", 4, 8)

	require.NoError(t, c.AddItem(productA, 3))
	require.NoError(t, c.AddItem(productB, 1))

	c.RemoveItem("prod-a")
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "prod-b", items[0].Product.ID)

	// removing again is a no-op
	c.RemoveItem("prod-a")
	assert.Len(t, c.Items(), 1)

	// re-adding starts a fresh line, quantity does not accumulate from
	// before the removal
	require.NoError(t, c.AddItem(productA, 2))
	items = c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[1].Quantity)
}

func TestCart_clear(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem(testProduct("prod-a", 10, 5), 2))
	require.NoError(t, c.AddItem(testProduct("prod-b", 4, 8), 3))

	c.Clear()

	assert.Empty(t, c.Items())
	assert.Equal(t, 0, c.TotalItems())
	assert.Equal(t, 0.0, c.TotalPrice())
}

func TestCart_totalsTrackEveryMutation(t *testing.T) {
	c := New()
	productA := testProduct("prod-a", 49.99, 50)
	productB := testProduct("prod-b", 9.99, 80)

	require.NoError(t, c.AddItem(productA, 2))
	require.NoError(t, c.AddItem(productB, 3))
	assert.Equal(t, 5, c.TotalItems())
	assert.Equal(t, 129.95, c.TotalPrice())

	c.UpdateQuantity("prod-b", 1)
	assert.Equal(t, 3, c.TotalItems())
	assert.Equal(t, 109.97, c.TotalPrice())

	c.RemoveItem("prod-a")
	assert.Equal(t, 1, c.TotalItems())
	assert.Equal(t, 9.99, c.TotalPrice())
}

func TestCart_insertionOrderPreserved(t *testing.T) {
	c := New()

	for _, id := range []string{"prod-c", "prod-a", "prod-b"} {
		require.NoError(t, c.AddItem(testProduct(id, 5, 10), 1))
	}

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "prod-c", items[0].Product.ID)
	assert.Equal(t, "prod-a", items[1].Product.ID)
	assert.Equal(t, "prod-b", items[2].Product.ID)
}

func TestManager_sessionIsolation(t *testing.T) {
	m := NewManager()

	sessionA := uuid.New()
	sessionB := uuid.New()

	require.NoError(
		t,
		m.Cart(sessionA).AddItem(testProduct("prod-a", 10, 5), 2),
	)

	assert.Equal(t, 2, m.Cart(sessionA).TotalItems())
	assert.Equal(t, 0, m.Cart(sessionB).TotalItems())

	// same session id always resolves to the same cart
	assert.Same(t, m.Cart(sessionA), m.Cart(sessionA))

	m.Drop(sessionA)
	assert.Equal(t, 0, m.Cart(sessionA).TotalItems())
}
