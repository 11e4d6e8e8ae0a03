package application

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/commercekit/commerce-api/internal/domains/customers/domain"
	"github.com/commercekit/commerce-api/internal/domains/customers/ports"
)

// Service orchestrates customer use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// CreateCustomer registers a new customer after checking the email is free.
// The lookup and the create are two repository calls with no transactional
// guarantee linking them; the storage-level unique constraint is the final
// arbiter under concurrent registrations.
func (s *Service) CreateCustomer(ctx context.Context, input ports.CreateCustomerInput) (*domain.Customer, error) {
	customer, err := domain.NewCustomer(input.Name, input.Email)
	if err != nil {
		return nil, mapError(err)
	}
	existing, err := s.repo.FindByEmail(ctx, customer.Email)
	if err != nil && !errors.Is(err, ports.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, mapError(ErrEmailInUse)
	}
	created, err := s.repo.Create(ctx, customer)
	if err != nil {
		return nil, mapError(err)
	}
	return created, nil
}

// GetByID loads a single customer.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return customer, nil
}

// List exposes all customers for admin use cases.
func (s *Service) List(ctx context.Context) ([]*domain.Customer, error) {
	return s.repo.List(ctx)
}

var _ ports.Service = (*Service)(nil)
