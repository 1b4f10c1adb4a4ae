// Package checkout orchestrates the all-or-nothing conversion of a
// priced cart into a paid, inventory-adjusted transaction and a
// receipt.
package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/noah-isme/backend-kasir/internal/catalog"
	"github.com/noah-isme/backend-kasir/internal/customer"
	"github.com/noah-isme/backend-kasir/internal/events"
	"github.com/noah-isme/backend-kasir/internal/shipping"
)

// Service runs the checkout sequence. Inventory, when set, is held
// for the whole sequence so concurrent checkouts cannot interleave
// stock validation and commit on shared products.
type Service struct {
	Shipping  *shipping.Service
	Events    *events.Bus
	Inventory sync.Locker
	Now       func() time.Time
}

func (s *Service) now() time.Time {
	if s != nil && s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Process executes the checkout steps in strict order: validate cart
// and expirations, re-check stock, price, gate on affordability, then
// commit payment and inventory, notify shipping, build the receipt
// and clear the cart. Every check runs before the first mutation, so
// a failure never leaves partial state behind.
func (s *Service) Process(ctx context.Context, c *customer.Customer) (Result, error) {
	if s.Inventory != nil {
		s.Inventory.Lock()
		defer s.Inventory.Unlock()
	}

	crt := c.Cart()
	asOf := s.now()

	if err := crt.ValidateForCheckout(asOf); err != nil {
		return Result{}, err
	}
	items := crt.Items()
	for _, item := range items {
		product := item.Product()
		if !product.IsAvailable(item.Quantity()) {
			return Result{}, &catalog.StockError{
				Name:      product.Name(),
				Available: product.Quantity(),
				Requested: item.Quantity(),
			}
		}
	}

	subtotal, err := crt.Subtotal()
	if err != nil {
		return Result{}, err
	}
	shippableItems := crt.ShippableItems()
	shippingCost, err := s.Shipping.CostWithDiscount(shippableItems, subtotal)
	if err != nil {
		return Result{}, err
	}
	total := subtotal.Add(shippingCost)

	if !c.CanAfford(total) {
		return Result{}, &customer.BalanceError{Required: total, Available: c.Balance()}
	}

	// Mutations start here. Stock and balance were both verified
	// above, so none of these can fail.
	if err := c.DeductFromWallet(total); err != nil {
		return Result{}, err
	}
	for _, item := range items {
		if err := item.Product().ReduceQuantity(item.Quantity()); err != nil {
			return Result{}, err
		}
	}

	if len(shippableItems) > 0 {
		s.Shipping.ProcessShipment(ctx, shippableItems)
		_ = s.Events.Emit(ctx, events.TopicShipmentDispatched, map[string]any{
			"customer": c.Name(),
			"units":    len(shippableItems),
		})
	}

	result, err := NewResult(items, subtotal, shippingCost, total, c.Balance())
	if err != nil {
		return Result{}, err
	}
	crt.Clear()

	_ = s.Events.Emit(ctx, events.TopicCheckoutCompleted, map[string]any{
		"customer": c.Name(),
		"items":    result.TotalItemCount(),
		"total":    result.Total().String(),
	})

	return result, nil
}
