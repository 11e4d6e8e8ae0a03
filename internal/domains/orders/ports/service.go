package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/commercekit/commerce-api/internal/domains/orders/domain"
)

// OrderItemInput is one requested line of an order.
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateOrderInput carries the request payload for order creation.
type CreateOrderInput struct {
	CustomerID uuid.UUID
	Items      []OrderItemInput
}

// Service exposes order use cases to adapters.
type Service interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
}
