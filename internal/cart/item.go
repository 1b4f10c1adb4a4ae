package cart

import (
	"fmt"

	"github.com/noah-isme/backend-kasir/internal/catalog"
	"github.com/noah-isme/backend-kasir/internal/money"
)

// Item pairs a shared product reference with the quantity held in
// this cart.
type Item struct {
	product  *catalog.Product
	quantity int
}

// NewItem opens a line for a product with a positive quantity.
func NewItem(product *catalog.Product, quantity int) (*Item, error) {
	if product == nil {
		return nil, fmt.Errorf("product cannot be nil: %w", ErrInvalidInput)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive: %w", ErrInvalidInput)
	}
	return &Item{product: product, quantity: quantity}, nil
}

// Product returns the shared product reference.
func (i *Item) Product() *catalog.Product { return i.product }

// Quantity returns the line quantity.
func (i *Item) Quantity() int { return i.quantity }

// IncreaseQuantity grows the line by a positive amount.
func (i *Item) IncreaseQuantity(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive: %w", ErrInvalidInput)
	}
	i.quantity += amount
	return nil
}

// SetQuantity replaces the line quantity with a positive value.
func (i *Item) SetQuantity(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive: %w", ErrInvalidInput)
	}
	i.quantity = quantity
	return nil
}

// Subtotal prices the line at the product's unit price.
func (i *Item) Subtotal() (money.Money, error) {
	return i.product.Subtotal(i.quantity)
}
