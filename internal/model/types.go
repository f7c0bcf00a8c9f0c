// Package model defines the core data structures for inv.
package model

// Inventory maps item names to quantities.
// Iteration order is the order in which items were first added or loaded.
type Inventory struct {
	order []string
	qty   map[string]int
}

// NewInventory returns an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{qty: make(map[string]int)}
}

// Len returns the number of items in stock.
func (inv *Inventory) Len() int {
	return len(inv.order)
}

// Get returns the quantity for item and whether it is present.
func (inv *Inventory) Get(item string) (int, bool) {
	q, ok := inv.qty[item]
	return q, ok
}

// Set stores qty for item. New items are appended to the iteration order.
func (inv *Inventory) Set(item string, qty int) {
	if inv.qty == nil {
		inv.qty = make(map[string]int)
	}
	if _, ok := inv.qty[item]; !ok {
		inv.order = append(inv.order, item)
	}
	inv.qty[item] = qty
}

// Delete removes item. Deleting an absent item is a no-op.
func (inv *Inventory) Delete(item string) {
	if _, ok := inv.qty[item]; !ok {
		return
	}
	delete(inv.qty, item)
	for i, name := range inv.order {
		if name == item {
			inv.order = append(inv.order[:i], inv.order[i+1:]...)
			break
		}
	}
}

// Items returns item names in iteration order.
// The returned slice is a copy.
func (inv *Inventory) Items() []string {
	items := make([]string, len(inv.order))
	copy(items, inv.order)
	return items
}

// Entry is a single item and its quantity.
type Entry struct {
	Item     string
	Quantity int
}

// Entries returns all items with their quantities in iteration order.
func (inv *Inventory) Entries() []Entry {
	entries := make([]Entry, 0, len(inv.order))
	for _, name := range inv.order {
		entries = append(entries, Entry{Item: name, Quantity: inv.qty[name]})
	}
	return entries
}

// Map returns a copy of the inventory as a plain map.
func (inv *Inventory) Map() map[string]int {
	m := make(map[string]int, len(inv.qty))
	for k, v := range inv.qty {
		m[k] = v
	}
	return m
}
