package client

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/lumina-dine/table-order/models"
	"github.com/lumina-dine/table-order/services"
)

type CartLine struct {
	MenuItem models.MenuItem
	Quantity int
	Notes    string
}

// Cart is the session-scoped pending-order accumulator. It is constructed
// explicitly per session rather than shared process-wide, so concurrent
// sessions (tests, multi-table simulation) never see each other's items.
//
// Its total is advisory, computed from the session's menu snapshot; the
// server-computed total persisted on the order is always authoritative.
type Cart struct {
	mu    sync.Mutex
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// Add puts quantity more of the item in the cart. An item already present has
// its quantity incremented; new notes replace existing ones, empty notes keep
// them.
func (c *Cart) Add(item models.MenuItem, quantity int, notes string) {
	if quantity <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].MenuItem.ID == item.ID {
			c.lines[i].Quantity += quantity
			if notes != "" {
				c.lines[i].Notes = notes
			}
			return
		}
	}
	c.lines = append(c.lines, CartLine{MenuItem: item, Quantity: quantity, Notes: notes})
}

// Decrement lowers a line's quantity; dropping below 1 removes the line.
func (c *Cart) Decrement(menuItemID uint, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].MenuItem.ID == menuItemID {
			c.lines[i].Quantity -= quantity
			if c.lines[i].Quantity < 1 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			}
			return
		}
	}
}

// Remove drops the line entirely regardless of quantity.
func (c *Cart) Remove(menuItemID uint) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].MenuItem.ID == menuItemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines returns a copy of the cart contents for display.
func (c *Cart) Lines() []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Count is the total item quantity, for the cart badge.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, line := range c.lines {
		n += line.Quantity
	}
	return n
}

// Total sums price×quantity over the session's menu snapshot. Display only —
// it may transiently diverge from the server's snapshot total.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.MenuItem.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// Request converts the cart into the order-creation payload verbatim.
func (c *Cart) Request() []services.OrderItemRequest {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]services.OrderItemRequest, 0, len(c.lines))
	for _, line := range c.lines {
		items = append(items, services.OrderItemRequest{
			MenuItemID: line.MenuItem.ID,
			Quantity:   line.Quantity,
			Notes:      line.Notes,
		})
	}
	return items
}
