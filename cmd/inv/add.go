package main

import (
	"fmt"
	"strconv"

	"github.com/jacksmith/inv/internal/cli"
	"github.com/jacksmith/inv/internal/model"
	"github.com/jacksmith/inv/internal/ops"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <item> <quantity>",
	Short: "Add stock for an item",
	Long: `Add a quantity of an item to the inventory and save it.

New items are created. Quantities may be negative; pass them after "--"
so they are not read as flags.

Examples:
  inv add apple 10
  inv add -f shop.json "paper bags" 250
  inv add banana -- -2`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

var removeCmd = &cobra.Command{
	Use:   "remove <item> <quantity>",
	Short: "Remove stock for an item",
	Long: `Remove a quantity of an item from the inventory and save it.

An item whose quantity reaches zero or below is dropped from the inventory.

Examples:
  inv remove apple 3`,
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(2),
	RunE:    runRemove,
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	qty, err := parseQuantityArg(args[1])
	if err != nil {
		return err
	}

	activity := model.NewLog()
	res, err := ops.Update(openStorage(), func(inv *model.Inventory) ops.Result {
		return ops.AddItem(inv, args[0], qty, activity)
	})
	if err != nil {
		return err
	}
	report(res)
	if err := resultError(res); err != nil {
		return err
	}
	for _, entry := range activity.Entries() {
		logr().Debug(entry)
	}

	fmt.Printf("%s: %d\n", res.Item, res.Quantity)
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	qty, err := parseQuantityArg(args[1])
	if err != nil {
		return err
	}

	res, err := ops.Update(openStorage(), func(inv *model.Inventory) ops.Result {
		return ops.RemoveItem(inv, args[0], qty)
	})
	if err != nil {
		return err
	}
	report(res)
	if err := resultError(res); err != nil {
		return err
	}

	if res.Deleted {
		fmt.Printf("%s: removed from inventory\n", res.Item)
		return nil
	}
	fmt.Printf("%s: %d\n", res.Item, res.Quantity)
	return nil
}

// parseQuantityArg reads a quantity argument as a base-10 integer.
func parseQuantityArg(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, &cli.ValidationError{Field: "quantity", Message: fmt.Sprintf("'%s' is not an integer", arg)}
	}
	return n, nil
}

// resultError converts a rejected operation into a CLI error.
func resultError(res ops.Result) error {
	switch res.Status {
	case ops.StatusOK:
		return nil
	case ops.StatusSkipped:
		return &cli.ValidationError{Message: "item name is required"}
	case ops.StatusNotInStock:
		return &cli.NotFoundError{Type: "item", ID: res.Item}
	case ops.StatusInvalidQuantity:
		return &cli.ValidationError{Field: "quantity", Message: res.Err.Error()}
	default:
		return &cli.ValidationError{Field: "item", Message: res.Err.Error()}
	}
}
