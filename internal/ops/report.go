package ops

import (
	"fmt"
	"io"
	"iter"

	"github.com/jacksmith/inv/internal/model"
)

// DefaultLowStockThreshold is the low-stock bound used when none is given.
const DefaultLowStockThreshold = 5

// ListAll writes a report of every item and its quantity to w, in inventory order.
func ListAll(inv *model.Inventory, w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Items Report"); err != nil {
		return err
	}
	for _, e := range inv.Entries() {
		if _, err := fmt.Fprintf(w, "%s -> %d\n", e.Item, e.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// LowStock returns the names of items whose quantity is strictly below
// threshold, in inventory order. The sequence is evaluated on each
// iteration, so it can be ranged over repeatedly.
func LowStock(inv *model.Inventory, threshold int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, e := range inv.Entries() {
			if e.Quantity >= threshold {
				continue
			}
			if !yield(e.Item) {
				return
			}
		}
	}
}

// LowStockItems collects LowStock into a slice.
func LowStockItems(inv *model.Inventory, threshold int) []string {
	items := []string{}
	for item := range LowStock(inv, threshold) {
		items = append(items, item)
	}
	return items
}
