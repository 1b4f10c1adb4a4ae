// Package customer models the cart owner: a named wallet whose
// balance can never go negative, holding exactly one cart.
package customer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/noah-isme/backend-kasir/internal/cart"
	"github.com/noah-isme/backend-kasir/internal/catalog"
	"github.com/noah-isme/backend-kasir/internal/money"
)

var (
	// ErrInvalidInput is returned when the provided arguments are invalid.
	ErrInvalidInput = errors.New("customer: invalid input")
	// ErrInsufficientBalance indicates the wallet cannot cover a debit.
	ErrInsufficientBalance = errors.New("customer: insufficient balance")
)

// BalanceError reports the shortfall of a rejected wallet debit.
type BalanceError struct {
	Required  money.Money
	Available money.Money
}

func (e *BalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: required %s, available %s", e.Required, e.Available)
}

func (e *BalanceError) Unwrap() error { return ErrInsufficientBalance }

// Customer owns a wallet and a cart. Wallet mutations go through
// DeductFromWallet and AddToWallet only.
type Customer struct {
	id      string
	name    string
	balance money.Money
	cart    *cart.Cart
}

// New creates a customer with an opening balance and an empty cart.
func New(name string, balance money.Money) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("customer name cannot be empty: %w", ErrInvalidInput)
	}
	return &Customer{
		id:      uuid.NewString(),
		name:    name,
		balance: balance,
		cart:    cart.New(),
	}, nil
}

// ID returns the customer's unique id.
func (c *Customer) ID() string { return c.id }

// Name returns the trimmed customer name.
func (c *Customer) Name() string { return c.name }

// Balance returns the current wallet balance.
func (c *Customer) Balance() money.Money { return c.balance }

// Cart returns the customer's cart.
func (c *Customer) Cart() *cart.Cart { return c.cart }

// AddToCart checks availability at add time and merges the product
// into the cart. Stock is not reserved; the checkout commit re-checks
// it.
func (c *Customer) AddToCart(product *catalog.Product, quantity int) error {
	if product == nil {
		return fmt.Errorf("product cannot be nil: %w", ErrInvalidInput)
	}
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive: %w", ErrInvalidInput)
	}
	if !product.IsAvailable(quantity) {
		return &catalog.StockError{
			Name:      product.Name(),
			Available: product.Quantity(),
			Requested: quantity,
		}
	}
	return c.cart.AddItem(product, quantity)
}

// RemoveFromCart drops the product's line from the cart.
func (c *Customer) RemoveFromCart(id catalog.ProductID) error {
	return c.cart.RemoveItem(id)
}

// UpdateCartItemQuantity replaces the line quantity for a product.
func (c *Customer) UpdateCartItemQuantity(id catalog.ProductID, quantity int) error {
	return c.cart.UpdateItemQuantity(id, quantity)
}

// CanAfford reports whether the balance covers the amount.
func (c *Customer) CanAfford(amount money.Money) bool {
	return c.balance.GreaterThanOrEqual(amount)
}

// DeductFromWallet debits the wallet, failing with a BalanceError
// when the amount exceeds the balance.
func (c *Customer) DeductFromWallet(amount money.Money) error {
	if c.balance.LessThan(amount) {
		return &BalanceError{Required: amount, Available: c.balance}
	}
	remaining, err := c.balance.Sub(amount)
	if err != nil {
		return err
	}
	c.balance = remaining
	return nil
}

// AddToWallet credits the wallet.
func (c *Customer) AddToWallet(amount money.Money) {
	c.balance = c.balance.Add(amount)
}
