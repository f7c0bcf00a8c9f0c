package ops

import (
	"github.com/jacksmith/inv/internal/model"
)

// Store defines the persistence interface required by stock operations.
// The concrete implementation is storage.Storage, but this interface allows
// alternative backends for testing.
type Store interface {
	Load() (*model.Inventory, error)
	Save(inv *model.Inventory) error
}

// Update loads the inventory from s, applies fn, and saves the inventory
// back when fn reports a change. Recoverable failures come back in the
// Result; only load and save failures are returned as errors.
func Update(s Store, fn func(inv *model.Inventory) Result) (Result, error) {
	inv, err := s.Load()
	if err != nil {
		return Result{}, err
	}

	res := fn(inv)
	if !res.OK() {
		return res, nil
	}

	if err := s.Save(inv); err != nil {
		return res, err
	}
	return res, nil
}
