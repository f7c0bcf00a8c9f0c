// Package storage persists inventories to JSON files.
package storage

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/jacksmith/inv/internal/model"
	"go.uber.org/zap"
)

// DefaultFile is the inventory file used when none is configured.
const DefaultFile = "inventory.json"

// Storage provides access to a single inventory file.
type Storage struct {
	path string
	log  *zap.Logger
}

// New returns a Storage for the inventory file at path.
// A nil logger discards warnings.
func New(path string, log *zap.Logger) *Storage {
	if path == "" {
		path = DefaultFile
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Storage{path: path, log: log}
}

// Path returns the inventory file path.
func (s *Storage) Path() string {
	return s.path
}

// Load reads the inventory file.
// A missing file yields an empty inventory and a logged warning.
func (s *Storage) Load() (*model.Inventory, error) {
	return Load(s.path, s.log)
}

// Save writes inv to the inventory file.
func (s *Storage) Save(inv *model.Inventory) error {
	return Save(inv, s.path)
}

// Load reads the inventory at path.
// If the file does not exist, Load warns through log and returns an empty
// inventory. Every other failure is returned.
func Load(path string, log *zap.Logger) (*model.Inventory, error) {
	inv, err := model.LoadInventory(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if log != nil {
				log.Warn(filepath.Base(path)+" not found, starting with empty inventory",
					zap.String("path", path))
			}
			return model.NewInventory(), nil
		}
		return nil, err
	}
	if log != nil {
		log.Debug("loaded inventory", zap.String("path", path), zap.Int("items", inv.Len()))
	}
	return inv, nil
}

// Save writes inv to path, fully replacing the previous contents.
func Save(inv *model.Inventory, path string) error {
	return model.SaveInventory(path, inv)
}
