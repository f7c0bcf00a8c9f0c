package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTerminal(t *testing.T) {
	f, err := os.CreateTemp("", "test")
	if err != nil {
		t.Skip("cannot create temp file")
	}
	defer os.Remove(f.Name())
	defer f.Close()

	assert.False(t, IsTerminal(f), "temp file should not be a terminal")

	var buf bytes.Buffer
	assert.False(t, IsTerminal(&buf), "bytes.Buffer should not be a terminal")
}

func TestColorFunctions(t *testing.T) {
	SetColorEnabled(true)

	assert.Equal(t, "\033[32mtest\033[0m", Green("test"))
	assert.Equal(t, "\033[31mtest\033[0m", Red("test"))
	assert.Equal(t, "\033[33mtest\033[0m", Yellow("test"))

	SetColorEnabled(false)

	assert.Equal(t, "test", Green("test"))
	assert.Equal(t, "test", Red("test"))
	assert.Equal(t, "test", Yellow("test"))

	SetColorEnabled(true)
}

func TestColorEnabled(t *testing.T) {
	SetColorEnabled(true)
	assert.True(t, ColorEnabled())

	SetColorEnabled(false)
	assert.False(t, ColorEnabled())

	SetColorEnabled(true)
}

func TestStockLabel(t *testing.T) {
	SetColorEnabled(false)
	defer SetColorEnabled(true)

	tests := []struct {
		qty       int
		threshold int
		want      string
	}{
		{10, 5, "[ok]"},
		{5, 5, "[ok]"},
		{4, 5, "[low]"},
		{0, 5, "[out]"},
		{-2, 5, "[out]"},
		{1, 1, "[ok]"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StockLabel(tt.qty, tt.threshold), "qty=%d threshold=%d", tt.qty, tt.threshold)
	}
}

func TestTableEmpty(t *testing.T) {
	table := NewTable()
	var buf bytes.Buffer
	table.Render(&buf)
	assert.Equal(t, "", buf.String())
}

func TestTableSingleRow(t *testing.T) {
	table := NewTable()
	table.AddRow("one", "two", "three")

	var buf bytes.Buffer
	table.Render(&buf)
	assert.Equal(t, "one  two  three\n", buf.String())
}

func TestTableColumnAlignment(t *testing.T) {
	table := NewTable()
	table.AddRow("apple", "7", "[ok]")
	table.AddRow("banana", "-2", "[out]")
	table.AddRow("fig", "120", "[ok]")

	var buf bytes.Buffer
	table.Render(&buf)

	expected := "apple   7    [ok]\n" +
		"banana  -2   [out]\n" +
		"fig     120  [ok]\n"
	assert.Equal(t, expected, buf.String())
}

func TestTableAlignRight(t *testing.T) {
	table := NewTable()
	table.SetAlignRight(1)
	table.AddRow("apple", "7", "[ok]")
	table.AddRow("banana", "-2", "[out]")
	table.AddRow("fig", "120", "[ok]")

	var buf bytes.Buffer
	table.Render(&buf)

	expected := "apple     7  [ok]\n" +
		"banana   -2  [out]\n" +
		"fig     120  [ok]\n"
	assert.Equal(t, expected, buf.String())
}

func TestTableWithColoredText(t *testing.T) {
	SetColorEnabled(true)
	defer SetColorEnabled(false)

	table := NewTable()
	table.AddRow("apple", Green("[ok]"), "x")
	table.AddRow("banana", Red("[out]"), "y")

	var buf bytes.Buffer
	table.Render(&buf)

	// The colored column pads by visible width
	expected := "apple   " + Green("[ok]") + "   x\n" +
		"banana  " + Red("[out]") + "  y\n"
	assert.Equal(t, expected, buf.String())
}

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"hello", 5},
		{"", 0},
		{"\033[32mhello\033[0m", 5},
		{"\033[31m\033[0m", 0},
		{"a\033[32mb\033[0mc", 3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, visibleWidth(tt.input))
		})
	}
}

func TestTableUnevenRows(t *testing.T) {
	table := NewTable()
	table.AddRow("a", "b", "c")
	table.AddRow("d", "e")

	var buf bytes.Buffer
	table.Render(&buf)

	output := buf.String()
	assert.Contains(t, output, "a")
	assert.Contains(t, output, "d")
}
