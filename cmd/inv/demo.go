package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/inv/internal/model"
	"github.com/jacksmith/inv/internal/ops"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runDemo plays a fixed session against the inventory file.
// Rejected or missing-item operations are logged and the session carries on;
// only load and save failures stop it.
func runDemo(cmd *cobra.Command, args []string) error {
	s := openStorage()

	inv, err := s.Load()
	if err != nil {
		return err
	}

	activity := model.NewLog()
	report(ops.AddItem(inv, "apple", 10, activity))
	report(ops.AddItem(inv, "banana", -2, activity))
	report(ops.AddItem(inv, 123, "ten", activity))

	report(ops.RemoveItem(inv, "apple", 3))
	report(ops.RemoveItem(inv, "orange", 1))

	fmt.Println("Apple stock:", formatQuantity(ops.GetQuantity(inv, "apple")))
	fmt.Println("Low items:", ops.LowStockItems(inv, ops.DefaultLowStockThreshold))

	if err := s.Save(inv); err != nil {
		return err
	}

	inv, err = s.Load()
	if err != nil {
		return err
	}
	if err := ops.ListAll(inv, os.Stdout); err != nil {
		return err
	}

	for _, entry := range activity.Entries() {
		logr().Debug(entry)
	}

	fmt.Println("--- End of Report ---")
	return nil
}

// report surfaces a recoverable operation outcome through the logger.
func report(res ops.Result) {
	l := logr()
	switch res.Status {
	case ops.StatusOK:
		l.Debug("stock updated",
			zap.String("item", res.Item),
			zap.Int("delta", res.Delta),
			zap.Int("quantity", res.Quantity),
			zap.Bool("deleted", res.Deleted))
	case ops.StatusSkipped:
		l.Debug("skipped empty item name")
	case ops.StatusNotInStock:
		l.Warn(res.Err.Error())
	default:
		l.Error(res.Err.Error())
	}
}

// formatQuantity renders a quantity lookup, "none" when absent.
func formatQuantity(qty int, ok bool) string {
	if !ok {
		return "none"
	}
	return fmt.Sprintf("%d", qty)
}
