package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	customerdomain "github.com/commercekit/commerce-api/internal/domains/customers/domain"
)

var (
	ErrNoItems          = errors.New("order must contain at least one item")
	ErrInvalidQuantity  = errors.New("item quantity must be greater than zero")
	ErrMissingCustomer  = errors.New("order customer is required")
	ErrMissingProductID = errors.New("item product id is required")
)

// OrderItem is a single order line. Price is a snapshot of the product's unit
// price at order time and is never recomputed from the live catalog.
type OrderItem struct {
	ProductID uuid.UUID
	Price     decimal.Decimal
	Quantity  int
}

// Order is the purchase aggregate owned by a customer.
type Order struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Customer   *customerdomain.Customer
	OrderedAt  time.Time
	Items      []OrderItem
}

// NewOrder validates and constructs a new order aggregate.
func NewOrder(customer *customerdomain.Customer, items []OrderItem) (*Order, error) {
	if customer == nil {
		return nil, ErrMissingCustomer
	}
	order := &Order{
		ID:         uuid.New(),
		CustomerID: customer.ID,
		Customer:   customer,
		Items:      items,
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

// Validate enforces invariants on the aggregate.
func (o *Order) Validate() error {
	if o.CustomerID == uuid.Nil {
		return ErrMissingCustomer
	}
	if len(o.Items) == 0 {
		return ErrNoItems
	}
	for _, item := range o.Items {
		if item.ProductID == uuid.Nil {
			return ErrMissingProductID
		}
		if item.Quantity <= 0 {
			return ErrInvalidQuantity
		}
	}
	return nil
}

// Total sums price times quantity across all items.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
