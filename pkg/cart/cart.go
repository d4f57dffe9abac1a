// Package cart implements the storefront cart as a deterministic reducer
// over an ordered list of line items keyed by item ID.
//
// Persistence is an injected Store written after every mutation and read
// once at construction, mirroring how the browser cart survives reloads.
package cart

import "fmt"

// LineItem is one cart row.
type LineItem struct {
	ItemID   uint    `json:"itemId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Store persists the cart between sessions.
type Store interface {
	Save(items []LineItem) error
	Load() ([]LineItem, error)
}

// Cart holds the line items in insertion order.
// It is not safe for concurrent use; each client session owns one.
type Cart struct {
	items []LineItem
	store Store
}

// New builds a cart backed by store, loading whatever was saved earlier.
func New(store Store) (*Cart, error) {
	items, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("cart: load: %w", err)
	}
	return &Cart{items: items, store: store}, nil
}

// AddItem adds one unit of the given item. A repeated add increments the
// existing line's quantity instead of appending a second line.
func (c *Cart) AddItem(itemID uint, name string, price float64) error {
	for i := range c.items {
		if c.items[i].ItemID == itemID {
			c.items[i].Quantity++
			return c.persist()
		}
	}

	c.items = append(c.items, LineItem{ItemID: itemID, Name: name, Price: price, Quantity: 1})
	return c.persist()
}

// RemoveItem deletes the line for itemID. Unknown IDs are a no-op and
// are not persisted.
func (c *Cart) RemoveItem(itemID uint) error {
	for i := range c.items {
		if c.items[i].ItemID == itemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return c.persist()
		}
	}
	return nil
}

// UpdateQuantity sets the quantity for itemID. Quantities below 1 and
// unknown IDs leave the cart unchanged.
func (c *Cart) UpdateQuantity(itemID uint, quantity int) error {
	if quantity < 1 {
		return nil
	}
	for i := range c.items {
		if c.items[i].ItemID == itemID {
			c.items[i].Quantity = quantity
			return c.persist()
		}
	}
	return nil
}

// Clear empties the cart.
func (c *Cart) Clear() error {
	c.items = nil
	return c.persist()
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// TotalItems is the sum of all quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, it := range c.items {
		total += it.Quantity
	}
	return total
}

// TotalPrice is the sum of price×quantity over all lines.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, it := range c.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

func (c *Cart) persist() error {
	if err := c.store.Save(c.Items()); err != nil {
		return fmt.Errorf("cart: save: %w", err)
	}
	return nil
}
