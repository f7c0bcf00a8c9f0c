package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// indent is the per-level indentation used when encoding inventory files.
const indent = "    "

// LoadInventory loads an inventory file from the given path.
func LoadInventory(path string) (*Inventory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory file %s: %w", path, err)
	}
	defer f.Close()

	inv, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse inventory file %s: %w", path, err)
	}
	return inv, nil
}

// SaveInventory writes inv to path, replacing any existing file.
// The data is written to a temporary sibling first and renamed into place.
// A symlinked path is written through to its target. An existing file keeps
// its permission bits, and one that cannot be opened for writing is left
// untouched and reported as an error.
func SaveInventory(path string, inv *Inventory) (err error) {
	data, err := Encode(inv)
	if err != nil {
		return fmt.Errorf("failed to encode inventory: %w", err)
	}

	target := path
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		target = resolved
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(target); err == nil {
		existing, err := os.OpenFile(target, os.O_WRONLY, 0)
		if err != nil {
			return fmt.Errorf("failed to write inventory file %s: %w", path, err)
		}
		existing.Close()
		mode = info.Mode().Perm()
	}

	tmp := target + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("failed to write inventory file %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write inventory file %s: %w", path, err)
	}
	// OpenFile applies the umask
	if err := f.Chmod(mode); err != nil {
		f.Close()
		return fmt.Errorf("failed to write inventory file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write inventory file %s: %w", path, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("failed to write inventory file %s: %w", path, err)
	}
	return nil
}

// Decode reads a JSON object of item name to integer quantity from r.
// Key order in the document becomes the inventory's iteration order.
// A repeated key keeps its first position and its last value.
func Decode(r io.Reader) (*Inventory, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document")
		}
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected a JSON object, got %v", tok)
	}

	inv := NewInventory()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		item, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected key %v", tok)
		}

		tok, err = dec.Token()
		if err != nil {
			return nil, err
		}
		num, ok := tok.(json.Number)
		if !ok {
			return nil, fmt.Errorf("quantity for %q is not a number", item)
		}
		qty, err := num.Int64()
		if err != nil {
			return nil, fmt.Errorf("quantity for %q is not an integer: %s", item, num)
		}
		inv.Set(item, int(qty))
	}

	// Closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after inventory object")
	}

	return inv, nil
}

// Encode returns inv as an indented JSON object with keys in iteration order.
// Keys are written without HTML escaping. Invalid UTF-8 in a name is
// replaced with U+FFFD, so such a name does not survive a save and reload.
func Encode(inv *Inventory) ([]byte, error) {
	var buf bytes.Buffer
	if inv.Len() == 0 {
		buf.WriteString("{}\n")
		return buf.Bytes(), nil
	}

	var key bytes.Buffer
	enc := json.NewEncoder(&key)
	enc.SetEscapeHTML(false)

	buf.WriteString("{\n")
	for i, e := range inv.Entries() {
		key.Reset()
		if err := enc.Encode(e.Item); err != nil {
			return nil, err
		}
		buf.WriteString(indent)
		buf.Write(bytes.TrimSuffix(key.Bytes(), []byte("\n")))
		fmt.Fprintf(&buf, ": %d", e.Quantity)
		if i < inv.Len()-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}
