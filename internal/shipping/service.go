// Package shipping owns the shipping pricing policy and the shipment
// notice. The per-kg rate and the free-shipping threshold are
// injected at construction so the policy stays testable with
// different values.
package shipping

import (
	"context"

	"github.com/noah-isme/backend-kasir/internal/cart"
	"github.com/noah-isme/backend-kasir/internal/money"
)

// Notifier consumes the grouped shipment notice. Implementations must
// not fail the checkout; delivery problems are theirs to surface.
type Notifier interface {
	Notify(ctx context.Context, notice Notice)
}

// NoticeLine aggregates the units of one product in a shipment.
type NoticeLine struct {
	Name       string
	Count      int
	UnitWeight money.Weight
}

// Notice is the grouped shipment summary handed to the notifier.
type Notice struct {
	Lines       []NoticeLine
	TotalWeight money.Weight
}

// Service prices shippable units and dispatches shipment notices.
type Service struct {
	RatePerKg     money.Money
	FreeThreshold money.Money
	Notifier      Notifier
}

// Cost sums weight × rate over the given units. An empty list costs
// zero.
func (s *Service) Cost(items []cart.ShippableItem) (money.Money, error) {
	if len(items) == 0 {
		return money.Zero, nil
	}
	total := money.ZeroWeight
	for _, item := range items {
		sum, err := total.Add(item.Weight)
		if err != nil {
			return money.Zero, err
		}
		total = sum
	}
	return s.RatePerKg.MulDecimal(total.Amount())
}

// CostWithDiscount applies the free-shipping override: a subtotal at
// or above the threshold ships free, otherwise Cost applies.
func (s *Service) CostWithDiscount(items []cart.ShippableItem, subtotal money.Money) (money.Money, error) {
	if subtotal.GreaterThanOrEqual(s.FreeThreshold) {
		return money.Zero, nil
	}
	return s.Cost(items)
}

// ProcessShipment groups the units by product name and hands the
// notice to the configured notifier. It never fails; an empty list is
// a no-op.
func (s *Service) ProcessShipment(ctx context.Context, items []cart.ShippableItem) {
	if len(items) == 0 || s.Notifier == nil {
		return
	}
	s.Notifier.Notify(ctx, BuildNotice(items))
}

// BuildNotice flattens per-unit items into per-product lines with a
// unit count, preserving first-seen order, plus the aggregate weight.
func BuildNotice(items []cart.ShippableItem) Notice {
	index := make(map[string]int)
	notice := Notice{TotalWeight: money.ZeroWeight}
	for _, item := range items {
		if pos, ok := index[item.Name]; ok {
			notice.Lines[pos].Count++
		} else {
			index[item.Name] = len(notice.Lines)
			notice.Lines = append(notice.Lines, NoticeLine{Name: item.Name, Count: 1, UnitWeight: item.Weight})
		}
		if sum, err := notice.TotalWeight.Add(item.Weight); err == nil {
			notice.TotalWeight = sum
		}
	}
	return notice
}
