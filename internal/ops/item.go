// Package ops implements the stock operations on an inventory.
package ops

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/jacksmith/inv/internal/model"
)

// AddItem adds qty of item to inv.
//
// item and qty are accepted untyped so that values straight from user input
// or decoded documents can be passed through; see ParseQuantity for the
// quantity forms understood. An empty item is skipped. Invalid input leaves
// inv unchanged. On success an entry is appended to log when log is non-nil.
// Additions never delete an item, even when the total drops to zero or below.
func AddItem(inv *model.Inventory, item, qty any, log *model.Log) Result {
	name, res, ok := itemName(item)
	if !ok {
		return res
	}
	if name == "" {
		return Result{Status: StatusSkipped}
	}

	n, ok := ParseQuantity(qty)
	if !ok {
		return Result{
			Status: StatusInvalidQuantity,
			Item:   name,
			Err:    &InvalidQuantityError{Item: name, Quantity: qty},
		}
	}

	current, _ := inv.Get(name)
	total := current + n
	inv.Set(name, total)
	if log != nil {
		log.Added(name, n)
	}

	return Result{Status: StatusOK, Item: name, Delta: n, Quantity: total}
}

// RemoveItem removes qty of item from inv.
// When the remaining quantity is zero or below the item is deleted.
// An item that is not in stock, or an invalid quantity, leaves inv unchanged.
// Names that are not strings can never be in stock and are reported as such.
func RemoveItem(inv *model.Inventory, item, qty any) Result {
	name, res, ok := itemName(item)
	if !ok {
		if res.Status != StatusInvalidItem {
			return res
		}
		name = fmt.Sprint(item)
		return Result{
			Status: StatusNotInStock,
			Item:   name,
			Err:    &NotInStockError{Item: name},
		}
	}

	current, present := inv.Get(name)
	if !present {
		return Result{
			Status: StatusNotInStock,
			Item:   name,
			Err:    &NotInStockError{Item: name},
		}
	}

	n, ok := ParseQuantity(qty)
	if !ok {
		return Result{
			Status: StatusInvalidQuantity,
			Item:   name,
			Err:    &InvalidQuantityError{Item: name, Quantity: qty},
		}
	}

	remaining := current - n
	if remaining <= 0 {
		inv.Delete(name)
		return Result{Status: StatusOK, Item: name, Delta: n, Deleted: true}
	}
	inv.Set(name, remaining)
	return Result{Status: StatusOK, Item: name, Delta: n, Quantity: remaining}
}

// GetQuantity returns the quantity of item and whether it is in stock.
func GetQuantity(inv *model.Inventory, item string) (int, bool) {
	return inv.Get(item)
}

// itemName validates an untyped item name.
func itemName(item any) (string, Result, bool) {
	switch v := item.(type) {
	case nil:
		return "", Result{Status: StatusSkipped}, false
	case string:
		return v, Result{}, true
	default:
		return "", Result{
			Status: StatusInvalidItem,
			Err:    &InvalidItemError{Item: item},
		}, false
	}
}

// ParseQuantity converts an untyped quantity to an int.
// Accepted forms are Go integer types, floats holding a whole number
// and json.Number integers. Everything else, including strings and bools,
// is rejected.
func ParseQuantity(qty any) (int, bool) {
	switch v := qty.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return fromInt64(v)
	case uint:
		return fromUint64(uint64(v))
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return fromUint64(uint64(v))
	case uint64:
		return fromUint64(v)
	case float32:
		return fromFloat64(float64(v))
	case float64:
		return fromFloat64(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return fromInt64(n)
	default:
		return 0, false
	}
}

func fromInt64(n int64) (int, bool) {
	if n < math.MinInt || n > math.MaxInt {
		return 0, false
	}
	return int(n), true
}

func fromUint64(n uint64) (int, bool) {
	if n > math.MaxInt {
		return 0, false
	}
	return int(n), true
}

func fromFloat64(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return fromInt64(int64(f))
}
