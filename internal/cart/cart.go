// Package cart holds the session-scoped shopping cart. A cart belongs to one
// client session, is never persisted and never shared, so it needs no
// synchronization. It is single-cafeteria for the duration of one checkout.
package cart

import "quickbite/internal/domain"

// Line is one menu item in the cart. UnitPriceCents is snapshotted when the
// item is first added and does not track later price changes.
type Line struct {
	MenuItemID     string
	Name           string
	Cafeteria      string
	UnitPriceCents int64
	Quantity       int
}

// Cart accumulates lines for a single cafeteria. The zero value is usable.
type Cart struct {
	cafeteria string
	lines     []Line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add puts one unit of item into the cart, snapshotting its current price.
// Adding an already-present item increments its quantity instead of creating
// a second line. Unavailable items and items from a different cafeteria than
// the cart's current one are ignored.
func (c *Cart) Add(item domain.MenuItem) {
	if !item.Available {
		return
	}
	if c.cafeteria != "" && item.Cafeteria != c.cafeteria {
		return
	}
	if c.cafeteria == "" {
		c.cafeteria = item.Cafeteria
	}
	for i := range c.lines {
		if c.lines[i].MenuItemID == item.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{
		MenuItemID:     item.ID,
		Name:           item.Name,
		Cafeteria:      item.Cafeteria,
		UnitPriceCents: item.PriceCents,
		Quantity:       1,
	})
}

// ChangeQuantity applies delta to the line for menuItemID. A resulting
// quantity of zero or below removes the line. Missing lines are a no-op.
func (c *Cart) ChangeQuantity(menuItemID string, delta int) {
	for i := range c.lines {
		if c.lines[i].MenuItemID != menuItemID {
			continue
		}
		c.lines[i].Quantity += delta
		if c.lines[i].Quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		return
	}
}

// TotalCents is the sum of unit price times quantity over all lines.
func (c *Cart) TotalCents() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.UnitPriceCents * int64(l.Quantity)
	}
	return total
}

// Lines returns a copy of the cart's lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len is the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Cafeteria is the cafeteria the cart is pinned to, or "" before the first add.
func (c *Cart) Cafeteria() string {
	return c.cafeteria
}

// Clear removes all lines. The cafeteria pin is released so the session can
// start a new order anywhere. Called once after a successful checkout.
func (c *Cart) Clear() {
	c.lines = nil
	c.cafeteria = ""
}
