package cart

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Item is one aggregated cart line: a distinct product id and the
// quantity requested of it.
type Item struct {
	ID        string          `json:"id"`
	Name      string          `json:"nome"`
	Category  string          `json:"categoria"`
	UnitPrice decimal.Decimal `json:"preco"`
	Images    []string        `json:"imagens_urls"`
	Quantity  int             `json:"quantity"`
}

// Subtotal is the line value: unit price times quantity.
func (it Item) Subtotal() decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// Cart holds the line items for one browsing session, in insertion
// order. All methods are safe for concurrent use; a session's mutations
// are serialized by the cart's own mutex.
type Cart struct {
	mu    sync.Mutex
	items []Item
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add normalizes the raw product record and merges it into the cart.
// A record whose id is already present only increments that line's
// quantity by one; the fields captured on the first add are kept, so a
// stale copy of the product never overwrites the line.
func (c *Cart) Add(raw map[string]any) Item {
	normalized := Normalize(raw)

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == normalized.ID {
			c.items[i].Quantity++
			return c.items[i]
		}
	}

	c.items = append(c.items, normalized)
	return normalized
}

// Remove drops the line item with the given id entirely, regardless of
// its quantity. Removing an absent id is a no-op.
func (c *Cart) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len reports the number of distinct line items.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Total sums unit price times quantity over all line items. It is
// derived from the items on every call, never cached.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return total(c.items)
}

func total(items []Item) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Subtotal())
	}
	return sum
}
