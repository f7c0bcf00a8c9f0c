package ops

import "fmt"

// Status classifies the outcome of a stock mutation.
type Status string

const (
	StatusOK              Status = "ok"
	StatusSkipped         Status = "skipped"
	StatusInvalidItem     Status = "invalid_item"
	StatusInvalidQuantity Status = "invalid_quantity"
	StatusNotInStock      Status = "not_in_stock"
)

// Result reports what a stock mutation did.
// Every failure is recoverable: the inventory is left untouched and Err
// describes why.
type Result struct {
	Status   Status
	Item     string
	Delta    int  // quantity added or removed, when valid
	Quantity int  // quantity after the operation, when the item remains
	Deleted  bool // item was removed from the inventory
	Err      error
}

// OK reports whether the inventory was changed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// InvalidItemError indicates an item name that is not a string.
type InvalidItemError struct {
	Item any
}

func (e *InvalidItemError) Error() string {
	return fmt.Sprintf("invalid item name %v (%T)", e.Item, e.Item)
}

// InvalidQuantityError indicates a quantity that cannot be used as an integer.
type InvalidQuantityError struct {
	Item     string
	Quantity any
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity '%v' for item '%s'", e.Quantity, e.Item)
}

// NotInStockError indicates a removal for an item the inventory does not hold.
type NotInStockError struct {
	Item string
}

func (e *NotInStockError) Error() string {
	return fmt.Sprintf("item '%s' not in stock, cannot remove", e.Item)
}
