package checkout

import (
	"github.com/noah-isme/backend-kasir/internal/cart"
	"github.com/noah-isme/backend-kasir/internal/catalog"
	"github.com/noah-isme/backend-kasir/internal/money"
)

// Line is an immutable snapshot of one purchased cart line.
type Line struct {
	ProductID catalog.ProductID `json:"productId"`
	Name      string            `json:"name"`
	Quantity  int               `json:"quantity"`
	Subtotal  money.Money       `json:"subtotal"`
}

// Result is the receipt of a successful checkout: a defensive copy of
// the purchased lines plus the computed amounts and the wallet
// balance after payment. It is never mutated after construction.
type Result struct {
	lines        []Line
	subtotal     money.Money
	shippingCost money.Money
	total        money.Money
	remaining    money.Money
}

// NewResult snapshots the still-populated cart lines into a receipt.
func NewResult(items []*cart.Item, subtotal, shippingCost, total, remaining money.Money) (Result, error) {
	lines := make([]Line, 0, len(items))
	for _, item := range items {
		lineSubtotal, err := item.Subtotal()
		if err != nil {
			return Result{}, err
		}
		lines = append(lines, Line{
			ProductID: item.Product().ID(),
			Name:      item.Product().Name(),
			Quantity:  item.Quantity(),
			Subtotal:  lineSubtotal,
		})
	}
	return Result{
		lines:        lines,
		subtotal:     subtotal,
		shippingCost: shippingCost,
		total:        total,
		remaining:    remaining,
	}, nil
}

// Lines returns a copy of the purchased lines.
func (r Result) Lines() []Line {
	out := make([]Line, len(r.lines))
	copy(out, r.lines)
	return out
}

// Subtotal returns the pre-shipping amount.
func (r Result) Subtotal() money.Money { return r.subtotal }

// ShippingCost returns the charged shipping amount.
func (r Result) ShippingCost() money.Money { return r.shippingCost }

// Total returns subtotal plus shipping.
func (r Result) Total() money.Money { return r.total }

// RemainingBalance returns the wallet balance after payment.
func (r Result) RemainingBalance() money.Money { return r.remaining }

// HasShipping reports whether any shipping was charged.
func (r Result) HasShipping() bool {
	return r.shippingCost.GreaterThan(money.Zero)
}

// TotalItemCount sums quantities across purchased lines.
func (r Result) TotalItemCount() int {
	total := 0
	for _, line := range r.lines {
		total += line.Quantity
	}
	return total
}
