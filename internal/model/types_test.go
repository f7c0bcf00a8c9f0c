package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInventorySetAndGet(t *testing.T) {
	inv := NewInventory()

	_, ok := inv.Get("apple")
	assert.False(t, ok)

	inv.Set("apple", 10)
	q, ok := inv.Get("apple")
	assert.True(t, ok)
	assert.Equal(t, 10, q)

	inv.Set("apple", 4)
	q, _ = inv.Get("apple")
	assert.Equal(t, 4, q)
	assert.Equal(t, 1, inv.Len())
}

func TestInventoryOrder(t *testing.T) {
	t.Run("items keep insertion order", func(t *testing.T) {
		inv := NewInventory()
		inv.Set("pear", 1)
		inv.Set("apple", 2)
		inv.Set("fig", 3)
		assert.Equal(t, []string{"pear", "apple", "fig"}, inv.Items())
	})

	t.Run("updating an item does not move it", func(t *testing.T) {
		inv := NewInventory()
		inv.Set("pear", 1)
		inv.Set("apple", 2)
		inv.Set("pear", 9)
		assert.Equal(t, []string{"pear", "apple"}, inv.Items())
	})

	t.Run("re-adding a deleted item appends it", func(t *testing.T) {
		inv := NewInventory()
		inv.Set("pear", 1)
		inv.Set("apple", 2)
		inv.Delete("pear")
		inv.Set("pear", 3)
		assert.Equal(t, []string{"apple", "pear"}, inv.Items())
	})
}

func TestInventoryDelete(t *testing.T) {
	inv := NewInventory()
	inv.Set("apple", 1)
	inv.Set("banana", 2)

	inv.Delete("apple")
	_, ok := inv.Get("apple")
	assert.False(t, ok)
	assert.Equal(t, []string{"banana"}, inv.Items())

	// Absent item is a no-op
	inv.Delete("orange")
	assert.Equal(t, 1, inv.Len())
}

func TestInventoryZeroValue(t *testing.T) {
	var inv Inventory
	inv.Set("apple", 1)
	q, ok := inv.Get("apple")
	assert.True(t, ok)
	assert.Equal(t, 1, q)
}

func TestInventoryCopies(t *testing.T) {
	inv := NewInventory()
	inv.Set("apple", 1)

	items := inv.Items()
	items[0] = "mutated"
	assert.Equal(t, []string{"apple"}, inv.Items())

	m := inv.Map()
	m["apple"] = 99
	q, _ := inv.Get("apple")
	assert.Equal(t, 1, q)
}

func TestInventoryEntries(t *testing.T) {
	inv := NewInventory()
	inv.Set("apple", 7)
	inv.Set("banana", -2)

	assert.Equal(t, []Entry{
		{Item: "apple", Quantity: 7},
		{Item: "banana", Quantity: -2},
	}, inv.Entries())
}

func TestLog(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	l := NewLogAt(func() time.Time { return fixed })

	l.Added("apple", 10)
	l.Added("banana", -2)

	assert.Equal(t, 2, l.Len())
	assert.Equal(t, []string{
		"2024-03-01 09:30:00.000000: Added 10 of apple",
		"2024-03-01 09:30:00.000000: Added -2 of banana",
	}, l.Entries())
}

func TestLogZeroValueUsesWallClock(t *testing.T) {
	var l Log
	l.Added("apple", 1)
	assert.Equal(t, 1, l.Len())
	assert.Contains(t, l.Entries()[0], ": Added 1 of apple")
}
