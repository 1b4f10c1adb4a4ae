// Package cart implements the cart aggregate: quantity-keyed product
// lines, subtotal math and the per-unit expansion shipping works on.
package cart

import (
	"errors"
	"fmt"
	"time"

	"github.com/noah-isme/backend-kasir/internal/catalog"
	"github.com/noah-isme/backend-kasir/internal/money"
)

var (
	// ErrInvalidInput is returned when the provided arguments are invalid.
	ErrInvalidInput = errors.New("cart: invalid input")
	// ErrEmpty is returned when checkout is attempted on an empty cart.
	ErrEmpty = errors.New("cart: cart is empty")
	// ErrNotInCart indicates the addressed product has no line in the cart.
	ErrNotInCart = errors.New("cart: product not in cart")
)

// ShippableItem is one physical unit of a shippable product, derived
// on demand for shipping pricing and the shipment notice.
type ShippableItem struct {
	Name   string
	Weight money.Weight
}

// Cart maps products to lines, one line per product. Every line holds
// a positive quantity.
type Cart struct {
	items map[catalog.ProductID]*Item
	order []catalog.ProductID
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{items: make(map[catalog.ProductID]*Item)}
}

// AddItem merges the quantity into an existing line or opens a new
// one. The product is referenced, not copied.
func (c *Cart) AddItem(product *catalog.Product, quantity int) error {
	if product == nil {
		return fmt.Errorf("product cannot be nil: %w", ErrInvalidInput)
	}
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive: %w", ErrInvalidInput)
	}
	if existing, ok := c.items[product.ID()]; ok {
		return existing.IncreaseQuantity(quantity)
	}
	item, err := NewItem(product, quantity)
	if err != nil {
		return err
	}
	c.items[product.ID()] = item
	c.order = append(c.order, product.ID())
	return nil
}

// RemoveItem drops the line for the given product.
func (c *Cart) RemoveItem(id catalog.ProductID) error {
	if _, ok := c.items[id]; !ok {
		return fmt.Errorf("product %s: %w", id, ErrNotInCart)
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// UpdateItemQuantity replaces a line's quantity after checking the
// product can supply it.
func (c *Cart) UpdateItemQuantity(id catalog.ProductID, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive: %w", ErrInvalidInput)
	}
	item, ok := c.items[id]
	if !ok {
		return fmt.Errorf("product %s: %w", id, ErrNotInCart)
	}
	if !item.Product().IsAvailable(quantity) {
		return &catalog.StockError{
			Name:      item.Product().Name(),
			Available: item.Product().Quantity(),
			Requested: quantity,
		}
	}
	return item.SetQuantity(quantity)
}

// Subtotal sums every line's subtotal; an empty cart yields zero.
func (c *Cart) Subtotal() (money.Money, error) {
	total := money.Zero
	for _, id := range c.order {
		lineTotal, err := c.items[id].Subtotal()
		if err != nil {
			return money.Zero, err
		}
		total = total.Add(lineTotal)
	}
	return total, nil
}

// ShippableItems expands every shippable line into one entry per
// physical unit: a line of quantity N contributes N entries carrying
// the product's unit weight.
func (c *Cart) ShippableItems() []ShippableItem {
	var out []ShippableItem
	for _, id := range c.order {
		item := c.items[id]
		weight, ok := item.Product().Weight()
		if !ok {
			continue
		}
		for i := 0; i < item.Quantity(); i++ {
			out = append(out, ShippableItem{Name: item.Product().Name(), Weight: weight})
		}
	}
	return out
}

// ValidateForCheckout fails on an empty cart, then runs every line's
// purchase validation, surfacing the first failure.
func (c *Cart) ValidateForCheckout(asOf time.Time) error {
	if c.IsEmpty() {
		return ErrEmpty
	}
	for _, id := range c.order {
		if err := c.items[id].Product().ValidateForPurchase(asOf); err != nil {
			return err
		}
	}
	return nil
}

// TotalItemCount sums quantities across all lines.
func (c *Cart) TotalItemCount() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity()
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Clear drops every line. Called after a successful checkout.
func (c *Cart) Clear() {
	c.items = make(map[catalog.ProductID]*Item)
	c.order = nil
}

// Items returns the lines in insertion order. The slice is a copy;
// the lines are shared.
func (c *Cart) Items() []*Item {
	out := make([]*Item, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

// Get looks up the line for a product.
func (c *Cart) Get(id catalog.ProductID) (*Item, bool) {
	item, ok := c.items[id]
	return item, ok
}

// Contains reports whether the product has a line in the cart.
func (c *Cart) Contains(id catalog.ProductID) bool {
	_, ok := c.items[id]
	return ok
}
