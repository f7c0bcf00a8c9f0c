package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jacksmith/inv/internal/cli"
	"github.com/jacksmith/inv/internal/ops"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all items",
	Long: `List every item with its quantity, in the order items were added.

Each row carries a stock marker against the low-stock threshold:
  [ok]   at or above the threshold
  [low]  below the threshold
  [out]  zero or negative

Use --report for the plain "name -> quantity" report.`,
	Aliases: []string{"ls"},
	RunE:    runList,
}

var qtyCmd = &cobra.Command{
	Use:   "qty <item>",
	Short: "Show the quantity of an item",
	Args:  cobra.ExactArgs(1),
	RunE:  runQty,
}

var lowCmd = &cobra.Command{
	Use:   "low",
	Short: "List items below the low-stock threshold",
	Long: `List items whose quantity is strictly below the threshold.

The threshold defaults to low_stock_threshold from .invconfig.yaml (5 if unset).

Examples:
  inv low
  inv low --threshold 20`,
	RunE: runLow,
}

var (
	listReport   bool
	lowThreshold int
)

func init() {
	listCmd.Flags().BoolVar(&listReport, "report", false, "print the plain items report")
	lowCmd.Flags().IntVarP(&lowThreshold, "threshold", "t", 0, "exclusive low-stock bound")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(qtyCmd)
	rootCmd.AddCommand(lowCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	inv, err := openStorage().Load()
	if err != nil {
		return err
	}

	if listReport {
		return ops.ListAll(inv, os.Stdout)
	}

	if inv.Len() == 0 {
		fmt.Println("No items in stock.")
		return nil
	}

	threshold := config().LowStockThreshold
	table := cli.NewTable()
	table.SetAlignRight(1)
	for _, e := range inv.Entries() {
		table.AddRow(e.Item, strconv.Itoa(e.Quantity), cli.StockLabel(e.Quantity, threshold))
	}
	table.Render(os.Stdout)
	return nil
}

func runQty(cmd *cobra.Command, args []string) error {
	inv, err := openStorage().Load()
	if err != nil {
		return err
	}

	qty, ok := ops.GetQuantity(inv, args[0])
	if !ok {
		return &cli.NotFoundError{Type: "item", ID: args[0]}
	}
	fmt.Println(qty)
	return nil
}

func runLow(cmd *cobra.Command, args []string) error {
	threshold := config().LowStockThreshold
	if cmd != nil && cmd.Flags().Changed("threshold") {
		threshold = lowThreshold
	}

	inv, err := openStorage().Load()
	if err != nil {
		return err
	}

	found := false
	for item := range ops.LowStock(inv, threshold) {
		qty, _ := inv.Get(item)
		fmt.Printf("%s  %d\n", item, qty)
		found = true
	}
	if !found {
		fmt.Println("No low-stock items.")
	}
	return nil
}
