package cart

import (
	"sync"

	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/catalog"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/servererrors"
	"github.com/shopspring/decimal"
)

// CartItem is one line item: a product snapshot plus a positive quantity.
type CartItem struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart holds one session's line items in insertion order, at most one line
// per product. Quantities never exceed the product's stock and never drop
// below one; an update to zero or less removes the line instead.
type Cart struct {
	mu    sync.Mutex
	lines []*CartItem
	index map[string]*CartItem
}

func New() *Cart {
	return &Cart{
		index: make(map[string]*CartItem),
	}
}

// AddItem merges quantity into an existing line for the product or appends
// a new one, clamping the result to the product's stock. A product with no
// stock is rejected with [servererrors.ErrOutOfStock] and the cart is left
// untouched.
func (c *Cart) AddItem(product catalog.Product, quantity int) error {
	if product.Stock <= 0 {
		return servererrors.ErrOutOfStock
	}

	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if line, exists := c.index[product.ID]; exists {
		line.Product = product // refresh the snapshot, stock may have moved
		line.Quantity = clampToStock(line.Quantity+quantity, product.Stock)
		return nil
	}

	line := &CartItem{
		Product:  product,
		Quantity: clampToStock(quantity, product.Stock),
	}

	c.lines = append(c.lines, line)
	c.index[product.ID] = line

	return nil
}

// UpdateQuantity sets a line's quantity, clamped to the product's stock.
// A quantity of zero or less removes the line; an unknown product id is a
// no-op.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	line, exists := c.index[productID]
	if !exists {
		return
	}

	if quantity <= 0 {
		c.removeLine(productID)
		return
	}

	line.Quantity = clampToStock(quantity, line.Product.Stock)
}

// RemoveItem deletes the line for a product; no-op when absent.
func (c *Cart) RemoveItem(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.removeLine(productID)
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
	c.index = make(map[string]*CartItem)
}

// Items returns a copy of the current line items in insertion order.
func (c *Cart) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]CartItem, 0, len(c.lines))
	for _, line := range c.lines {
		items = append(items, *line)
	}

	return items
}

// TotalItems is the sum of all line quantities.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}

	return total
}

// TotalPrice is the sum of price times quantity over all lines, computed
// with decimal arithmetic so cents never drift.
func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := decimal.Zero
	for _, line := range c.lines {
		lineTotal := decimal.NewFromFloat(line.Product.Price).
			Mul(decimal.NewFromInt(int64(line.Quantity)))

		total = total.Add(lineTotal)
	}

	price, _ := total.Float64()

	return price
}

// removeLine expects c.mu to be held.
func (c *Cart) removeLine(productID string) {
	if _, exists := c.index[productID]; !exists {
		return
	}

	delete(c.index, productID)

	for i, line := range c.lines {
		if line.Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			break
		}
	}
}

func clampToStock(quantity, stock int) int {
	if quantity > stock {
		return stock
	}

	return quantity
}
