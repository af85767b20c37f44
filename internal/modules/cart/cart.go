package cart

import (
	"encoding/json"
	"sync"

	"github.com/georgemunganga/awe-electronics/internal/apperr"
)

// Cart accumulates line items for one shopper. It holds at most one line per product.
type Cart struct {
	mu    sync.Mutex
	items []LineItem
}

func New() *Cart { return &Cart{} }

// AddItem appends item, or adds its quantity to the existing line for the same product.
func (c *Cart) AddItem(item LineItem) (LineItem, error) {
	if item.Quantity <= 0 {
		return LineItem{}, apperr.Invalid("quantity", "must be greater than 0")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexOf(item.ProductID); i >= 0 {
		c.items[i].Quantity += item.Quantity
		return c.items[i], nil
	}
	c.items = append(c.items, item)
	return item, nil
}

// UpdateQuantity sets the quantity of an existing line. A quantity of zero or less removes
// the line and reports ok=false, as does a product that is not in the cart.
func (c *Cart) UpdateQuantity(productID, quantity int) (LineItem, bool) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return LineItem{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(productID)
	if i < 0 {
		return LineItem{}, false
	}
	c.items[i].Quantity = quantity
	return c.items[i], true
}

func (c *Cart) RemoveItem(productID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexOf(productID); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
}

// Items returns a copy of the current lines.
func (c *Cart) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *Cart) Subtotal() float64 { return c.Totals().Subtotal }

// Totals prices the current lines; nothing is cached between calls.
func (c *Cart) Totals() Totals { return Price(c.Items()) }

// MarshalJSON encodes the cart as its list of lines, the shape the browser keeps under "cart".
func (c *Cart) MarshalJSON() ([]byte, error) {
	items := c.Items()
	if items == nil {
		items = []LineItem{}
	}
	return json.Marshal(items)
}

// UnmarshalJSON restores a cart from a list of lines, merging duplicates.
func (c *Cart) UnmarshalJSON(data []byte) error {
	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	c.Clear()
	for _, it := range items {
		if _, err := c.AddItem(it); err != nil {
			return err
		}
	}
	return nil
}

// indexOf must be called with c.mu held.
func (c *Cart) indexOf(productID int) int {
	for i, it := range c.items {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}
