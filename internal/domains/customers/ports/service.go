package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/commercekit/commerce-api/internal/domains/customers/domain"
)

// CreateCustomerInput carries the request payload for customer creation.
type CreateCustomerInput struct {
	Name  string
	Email string
}

// Service exposes customer use cases to adapters.
type Service interface {
	CreateCustomer(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
}
