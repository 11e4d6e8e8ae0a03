package application

import (
	"context"

	"github.com/google/uuid"

	catalogports "github.com/commercekit/commerce-api/internal/domains/catalog/ports"
	customerports "github.com/commercekit/commerce-api/internal/domains/customers/ports"
	"github.com/commercekit/commerce-api/internal/domains/orders/domain"
	"github.com/commercekit/commerce-api/internal/domains/orders/ports"
)

// Service orchestrates order creation across the customer, catalog, and order
// repositories.
type Service struct {
	orders    ports.Repository
	products  catalogports.Repository
	customers customerports.Repository
}

func NewService(orders ports.Repository, products catalogports.Repository, customers customerports.Repository) *Service {
	return &Service{orders: orders, products: products, customers: customers}
}

// CreateOrder validates the customer and the requested products, snapshots
// unit prices, persists the aggregate, then decrements inventory.
//
// Validation performs no writes; a failure anywhere before the order insert
// leaves every store untouched. The order insert and the inventory decrement
// are two separate repository calls with no compensating transaction: if the
// decrement fails the order stays persisted with stock intact.
func (s *Service) CreateOrder(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	customer, err := s.customers.FindByID(ctx, input.CustomerID)
	if err != nil {
		return nil, mapError(err)
	}

	if len(input.Items) == 0 {
		return nil, mapError(ErrProductsNotFound)
	}

	// Duplicate ids would make the count-based existence check below pass
	// while silently dropping all but the first occurrence, so they are
	// rejected outright.
	requested := make(map[uuid.UUID]int, len(input.Items))
	ids := make([]uuid.UUID, 0, len(input.Items))
	for _, item := range input.Items {
		if _, dup := requested[item.ProductID]; dup {
			return nil, mapError(ErrDuplicateProduct)
		}
		requested[item.ProductID] = item.Quantity
		ids = append(ids, item.ProductID)
	}

	found, err := s.products.FindAllByID(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(found) < len(ids) {
		return nil, mapError(ErrProductsNotFound)
	}

	items := make([]domain.OrderItem, 0, len(found))
	for _, product := range found {
		quantity := requested[product.ID]
		if quantity > product.Quantity {
			return nil, mapError(ErrQuantityUnavailable)
		}
		items = append(items, domain.OrderItem{
			ProductID: product.ID,
			Price:     product.Price,
			Quantity:  quantity,
		})
	}

	order, err := domain.NewOrder(customer, items)
	if err != nil {
		return nil, mapError(err)
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	changes := make([]catalogports.QuantityChange, 0, len(input.Items))
	for _, item := range input.Items {
		changes = append(changes, catalogports.QuantityChange{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	if err := s.products.UpdateQuantity(ctx, changes); err != nil {
		return nil, err
	}

	return created, nil
}

// GetByID loads an order with its items.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return order, nil
}

// List returns all orders.
func (s *Service) List(ctx context.Context) ([]*domain.Order, error) {
	return s.orders.List(ctx)
}

var _ ports.Service = (*Service)(nil)
