package checkout

import (
	"fmt"
	"io"
)

// ReceiptPrinter renders a checkout result for a human reader. It is
// a read-only consumer of the receipt; nothing it does feeds back
// into the domain.
type ReceiptPrinter struct {
	Out io.Writer
}

// Print writes the line items, totals and remaining balance.
func (p ReceiptPrinter) Print(result Result) error {
	if _, err := fmt.Fprintln(p.Out, "** Checkout receipt **"); err != nil {
		return err
	}
	for _, line := range result.Lines() {
		if _, err := fmt.Fprintf(p.Out, "%dx %-14s %12s\n", line.Quantity, line.Name, line.Subtotal); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(p.Out, "----------------------"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(p.Out, "Subtotal          %12s\n", result.Subtotal()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(p.Out, "Shipping          %12s\n", result.ShippingCost()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(p.Out, "Amount            %12s\n", result.Total()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(p.Out, "Remaining balance %12s\n", result.RemainingBalance())
	return err
}
