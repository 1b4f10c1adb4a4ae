// Package catalog models the product catalog: capability-polymorphic
// products with live stock counts, plus the in-memory store the HTTP
// surface serves from.
package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/backend-kasir/internal/money"
)

var (
	// ErrInvalidInput is returned when the provided arguments are invalid.
	ErrInvalidInput = errors.New("catalog: invalid input")
	// ErrInsufficientStock indicates a requested quantity exceeds the
	// product's available stock.
	ErrInsufficientStock = errors.New("catalog: insufficient stock")
	// ErrProductExpired indicates an expirable product is past its
	// expiration date.
	ErrProductExpired = errors.New("catalog: product expired")
)

// StockError reports an availability shortfall for display.
type StockError struct {
	Name      string
	Available int
	Requested int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: available %d, requested %d", e.Name, e.Available, e.Requested)
}

func (e *StockError) Unwrap() error { return ErrInsufficientStock }

// ExpiredError reports a failed purchase validation on an expired product.
type ExpiredError struct {
	Name      string
	ExpiredAt time.Time
}

func (e *ExpiredError) Error() string {
	return fmt.Sprintf("product %s expired on %s", e.Name, e.ExpiredAt.Format("2006-01-02"))
}

func (e *ExpiredError) Unwrap() error { return ErrProductExpired }

// ProductID is the opaque identity of a catalog entry.
type ProductID string

// NewProductID generates a fresh unique id.
func NewProductID() ProductID {
	return ProductID(uuid.NewString())
}

// ParseProductID validates an externally supplied id.
func ParseProductID(value string) (ProductID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("product id cannot be empty: %w", ErrInvalidInput)
	}
	return ProductID(value), nil
}

func (id ProductID) String() string { return string(id) }

// Product is a catalog row with live stock. The shippable and
// expirable capabilities are optional; a product may carry either,
// both, or neither. Stock is only mutated through ReduceQuantity and
// IncreaseQuantity.
type Product struct {
	id        ProductID
	name      string
	price     money.Money
	quantity  int
	weight    *money.Weight
	expiresAt *time.Time
}

// NewStandard builds a product with no extra capability.
func NewStandard(name string, price money.Money, quantity int) (*Product, error) {
	return newProduct(NewProductID(), name, price, quantity, nil, nil)
}

// NewShippable builds a product that must be weighed and shipped.
func NewShippable(name string, price money.Money, quantity int, weight money.Weight) (*Product, error) {
	return newProduct(NewProductID(), name, price, quantity, &weight, nil)
}

// NewExpirable builds a product that cannot be purchased past expiresAt.
func NewExpirable(name string, price money.Money, quantity int, expiresAt time.Time) (*Product, error) {
	return newProduct(NewProductID(), name, price, quantity, nil, &expiresAt)
}

// NewExpirableShippable builds a product carrying both capabilities.
func NewExpirableShippable(name string, price money.Money, quantity int, weight money.Weight, expiresAt time.Time) (*Product, error) {
	return newProduct(NewProductID(), name, price, quantity, &weight, &expiresAt)
}

// Spec describes a product to the factory. Which optional fields are
// set decides the variant: Weight makes it shippable, ExpiresAt makes
// it expirable. ID is only set when reconstructing an existing entry.
type Spec struct {
	ID        string
	Name      string
	Price     money.Money
	Quantity  int
	Weight    *money.Weight
	ExpiresAt *time.Time
}

// New is the product factory: it infers the variant from the spec's
// optional fields and applies the same validation as the typed
// constructors.
func New(spec Spec) (*Product, error) {
	id := NewProductID()
	if strings.TrimSpace(spec.ID) != "" {
		parsed, err := ParseProductID(spec.ID)
		if err != nil {
			return nil, err
		}
		id = parsed
	}
	return newProduct(id, spec.Name, spec.Price, spec.Quantity, spec.Weight, spec.ExpiresAt)
}

func newProduct(id ProductID, name string, price money.Money, quantity int, weight *money.Weight, expiresAt *time.Time) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("product name cannot be empty: %w", ErrInvalidInput)
	}
	if quantity < 0 {
		return nil, fmt.Errorf("product quantity cannot be negative: %w", ErrInvalidInput)
	}
	p := &Product{id: id, name: name, price: price, quantity: quantity}
	if weight != nil {
		w := *weight
		p.weight = &w
	}
	if expiresAt != nil {
		e := *expiresAt
		p.expiresAt = &e
	}
	return p, nil
}

// ID returns the product identity.
func (p *Product) ID() ProductID { return p.id }

// Name returns the trimmed product name.
func (p *Product) Name() string { return p.name }

// Price returns the unit price.
func (p *Product) Price() money.Money { return p.price }

// Quantity returns the current stock count.
func (p *Product) Quantity() int { return p.quantity }

// Shippable reports whether the product carries a weight.
func (p *Product) Shippable() bool { return p.weight != nil }

// Weight returns the unit weight when the product is shippable.
func (p *Product) Weight() (money.Weight, bool) {
	if p.weight == nil {
		return money.Weight{}, false
	}
	return *p.weight, true
}

// ExpiresAt returns the expiration date when the product is expirable.
func (p *Product) ExpiresAt() (time.Time, bool) {
	if p.expiresAt == nil {
		return time.Time{}, false
	}
	return *p.expiresAt, true
}

// IsAvailable reports whether stock covers the requested quantity.
func (p *Product) IsAvailable(requested int) bool {
	return p.quantity >= requested
}

// ReduceQuantity decrements stock. Reducing by more than the current
// stock fails with a StockError; a negative amount is invalid input.
func (p *Product) ReduceQuantity(amount int) error {
	if amount < 0 {
		return fmt.Errorf("amount to reduce cannot be negative: %w", ErrInvalidInput)
	}
	if amount > p.quantity {
		return &StockError{Name: p.name, Available: p.quantity, Requested: amount}
	}
	p.quantity -= amount
	return nil
}

// IncreaseQuantity restocks the product.
func (p *Product) IncreaseQuantity(amount int) error {
	if amount < 0 {
		return fmt.Errorf("amount to increase cannot be negative: %w", ErrInvalidInput)
	}
	p.quantity += amount
	return nil
}

// Subtotal prices a requested quantity at the unit price.
func (p *Product) Subtotal(requested int) (money.Money, error) {
	if requested < 0 {
		return money.Zero, fmt.Errorf("requested quantity cannot be negative: %w", ErrInvalidInput)
	}
	return p.price.MulInt(requested)
}

// IsExpired reports whether the reference date falls strictly after
// the expiration date. Comparison is by calendar day.
func (p *Product) IsExpired(asOf time.Time) bool {
	if p.expiresAt == nil {
		return false
	}
	return truncateToDay(asOf).After(truncateToDay(*p.expiresAt))
}

// ValidateForPurchase is the checkout-time gate: it fails for
// expirable products past their expiration date and is a no-op for
// everything else.
func (p *Product) ValidateForPurchase(asOf time.Time) error {
	if p.IsExpired(asOf) {
		return &ExpiredError{Name: p.name, ExpiredAt: *p.expiresAt}
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
