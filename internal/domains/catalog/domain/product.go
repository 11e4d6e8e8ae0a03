package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName        = errors.New("product name is required")
	ErrNegativePrice    = errors.New("product price must not be negative")
	ErrNegativeQuantity = errors.New("product quantity must not be negative")
)

// Product is a sellable catalog entry with its current unit price and
// available stock.
type Product struct {
	ID       uuid.UUID
	Name     string
	Price    decimal.Decimal
	Quantity int
}

// NewProduct validates and constructs a new product.
func NewProduct(name string, price decimal.Decimal, quantity int) (*Product, error) {
	product := &Product{ID: uuid.New(), Price: price, Quantity: quantity}
	if err := product.SetName(name); err != nil {
		return nil, err
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	return product, nil
}

// SetName trims and validates the product name.
func (p *Product) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	p.Name = name
	return nil
}

// Validate enforces invariants on the aggregate.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if p.Price.IsNegative() {
		return ErrNegativePrice
	}
	if p.Quantity < 0 {
		return ErrNegativeQuantity
	}
	return nil
}

// Reserve decrements available stock by the ordered quantity.
func (p *Product) Reserve(quantity int) error {
	if quantity <= 0 || quantity > p.Quantity {
		return ErrNegativeQuantity
	}
	p.Quantity -= quantity
	return nil
}
