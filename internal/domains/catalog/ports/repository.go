package ports

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/commercekit/commerce-api/internal/domains/catalog/domain"
)

var ErrNotFound = errors.New("product not found")

// QuantityChange instructs the repository to subtract the given amount from a
// product's available stock.
type QuantityChange struct {
	ProductID uuid.UUID
	Quantity  int
}

// Repository persists products and serves the order flow's bulk operations.
type Repository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	FindByName(ctx context.Context, name string) (*domain.Product, error)
	// FindAllByID returns the products whose id appears in ids. Duplicate ids
	// yield a single entry; unknown ids are silently absent from the result.
	FindAllByID(ctx context.Context, ids []uuid.UUID) ([]*domain.Product, error)
	// UpdateQuantity subtracts each change's quantity from the product's stock.
	UpdateQuantity(ctx context.Context, changes []QuantityChange) error
	List(ctx context.Context) ([]*domain.Product, error)
}
