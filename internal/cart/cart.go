// Package cart implements per-session shopping carts. An entry snapshots the
// product price at add time, so catalog edits never reprice items already in
// a cart.
package cart

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/velu-medicals/storefront/internal/catalog"
)

var ErrNotFound = errors.New("item not in cart")

// Entry is one product line in a cart. Price is the snapshot taken when the
// product was first added.
type Entry struct {
	ProductID string           `json:"product_id"`
	Name      string           `json:"name"`
	Category  catalog.Category `json:"category"`
	Image     string           `json:"image"`
	Price     decimal.Decimal  `json:"price"`
	Quantity  int              `json:"quantity"`
}

func (e Entry) Subtotal() decimal.Decimal {
	return e.Price.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// Cart holds at most one entry per product ID, in first-add order. Repeated
// adds bump the quantity without moving the entry.
type Cart struct {
	mu      sync.Mutex
	entries []Entry
}

func New() *Cart { return &Cart{} }

// Add merges the product into the cart: an existing entry gains quantity,
// otherwise a new entry with quantity 1 is appended.
func (c *Cart) Add(p catalog.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.entries {
		if c.entries[i].ProductID == p.ID {
			c.entries[i].Quantity++
			return
		}
	}
	c.entries = append(c.entries, Entry{
		ProductID: p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Image:     p.Image,
		Price:     p.Price,
		Quantity:  1,
	})
}

func (c *Cart) Remove(productID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removeLocked(productID)
}

func (c *Cart) removeLocked(productID string) error {
	for i := range c.entries {
		if c.entries[i].ProductID == productID {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// SetQuantity pins the entry's quantity. A quantity of zero or less removes
// the entry; the floor lives here rather than in every caller.
func (c *Cart) SetQuantity(productID string, qty int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if qty <= 0 {
		return c.removeLocked(productID)
	}
	for i := range c.entries {
		if c.entries[i].ProductID == productID {
			c.entries[i].Quantity = qty
			return nil
		}
	}
	return ErrNotFound
}

// Items returns a copy of the entries in first-add order.
func (c *Cart) Items() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// TotalItems is the badge count: the sum of all quantities.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, e := range c.entries {
		n += e.Quantity
	}
	return n
}

// TotalValue sums snapshot price times quantity across the cart.
func (c *Cart) TotalValue() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := decimal.Zero
	for _, e := range c.entries {
		total = total.Add(e.Price.Mul(decimal.NewFromInt(int64(e.Quantity))))
	}
	return total
}
