package application

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogmemory "github.com/commercekit/commerce-api/internal/domains/catalog/adapters/memory"
	catalogdomain "github.com/commercekit/commerce-api/internal/domains/catalog/domain"
	customermemory "github.com/commercekit/commerce-api/internal/domains/customers/adapters/memory"
	customerdomain "github.com/commercekit/commerce-api/internal/domains/customers/domain"
	ordermemory "github.com/commercekit/commerce-api/internal/domains/orders/adapters/memory"
	"github.com/commercekit/commerce-api/internal/domains/orders/ports"
)

type fixture struct {
	customers *customermemory.Repository
	products  *catalogmemory.Repository
	orders    *ordermemory.Repository
	svc       *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		customers: customermemory.NewRepository(),
		products:  catalogmemory.NewRepository(),
		orders:    ordermemory.NewRepository(),
	}
	f.svc = NewService(f.orders, f.products, f.customers)
	return f
}

func (f *fixture) addCustomer(t *testing.T, name, email string) *customerdomain.Customer {
	t.Helper()
	customer, err := customerdomain.NewCustomer(name, email)
	require.NoError(t, err)
	created, err := f.customers.Create(context.Background(), customer)
	require.NoError(t, err)
	return created
}

func (f *fixture) addProduct(t *testing.T, name, price string, quantity int) *catalogdomain.Product {
	t.Helper()
	product, err := catalogdomain.NewProduct(name, decimal.RequireFromString(price), quantity)
	require.NoError(t, err)
	created, err := f.products.Create(context.Background(), product)
	require.NoError(t, err)
	return created
}

func TestCreateOrder_CustomerNotFound(t *testing.T) {
	f := newFixture(t)
	product := f.addProduct(t, "Keyboard", "10.00", 5)

	_, err := f.svc.CreateOrder(context.Background(), ports.CreateOrderInput{
		CustomerID: uuid.New(),
		Items:      []ports.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, err, ErrCustomerNotFound)

	orders, err := f.orders.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCreateOrder_CustomerCheckedBeforeEmptyItems(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateOrder(context.Background(), ports.CreateOrderInput{
		CustomerID: uuid.New(),
		Items:      nil,
	})
	require.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestCreateOrder_EmptyItems(t *testing.T) {
	f := newFixture(t)
	customer := f.addCustomer(t, "Alice", "alice@example.com")

	_, err := f.svc.CreateOrder(context.Background(), ports.CreateOrderInput{
		CustomerID: customer.ID,
		Items:      []ports.OrderItemInput{},
	})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, ErrProductsNotFound)
}

func TestCreateOrder_UnknownProduct(t *testing.T) {
	f := newFixture(t)
	customer := f.addCustomer(t, "Alice", "alice@example.com")
	product := f.addProduct(t, "Keyboard", "10.00", 5)

	_, err := f.svc.CreateOrder(context.Background(), ports.CreateOrderInput{
		CustomerID: customer.ID,
		Items: []ports.OrderItemInput{
			{ProductID: product.ID, Quantity: 1},
			{ProductID: uuid.New(), Quantity: 1},
		},
	})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, ErrProductsNotFound)

	unchanged, err := f.products.FindByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, unchanged.Quantity)
}

func TestCreateOrder_DuplicateProductRejected(t *testing.T) {
	f := newFixture(t)
	customer := f.addCustomer(t, "Alice", "alice@example.com")
	product := f.addProduct(t, "Keyboard", "10.00", 5)

	_, err := f.svc.CreateOrder(context.Background(), ports.CreateOrderInput{
		CustomerID: customer.ID,
		Items: []ports.OrderItemInput{
			{ProductID: product.ID, Quantity: 1},
			{ProductID: product.ID, Quantity: 2},
		},
	})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, ErrDuplicateProduct)
}

func TestCreateOrder_QuantityUnavailable(t *testing.T) {
	f := newFixture(t)
	customer := f.addCustomer(t, "Alice", "alice@example.com")
	scarce := f.addProduct(t, "Keyboard", "10.00", 2)
	plenty := f.addProduct(t, "Mouse", "5.00", 50)

	_, err := f.svc.CreateOrder(context.Background(), ports.CreateOrderInput{
		CustomerID: customer.ID,
		Items: []ports.OrderItemInput{
			{ProductID: plenty.ID, Quantity: 1},
			{ProductID: scarce.ID, Quantity: 3},
		},
	})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, ErrQuantityUnavailable)

	orders, err := f.orders.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)

	for _, product := range []*catalogdomain.Product{scarce, plenty} {
		unchanged, err := f.products.FindByID(context.Background(), product.ID)
		require.NoError(t, err)
		assert.Equal(t, product.Quantity, unchanged.Quantity)
	}
}

func TestCreateOrder_SnapshotsPricesAndDecrementsStock(t *testing.T) {
	f := newFixture(t)
	customer := f.addCustomer(t, "Alice", "alice@example.com")
	keyboard := f.addProduct(t, "Keyboard", "10.00", 5)
	mouse := f.addProduct(t, "Mouse", "5.50", 10)

	order, err := f.svc.CreateOrder(context.Background(), ports.CreateOrderInput{
		CustomerID: customer.ID,
		Items: []ports.OrderItemInput{
			{ProductID: keyboard.ID, Quantity: 3},
			{ProductID: mouse.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)
	require.Len(t, order.Items, 2)
	assert.Equal(t, customer.ID, order.CustomerID)

	prices := map[uuid.UUID]string{keyboard.ID: "10.00", mouse.ID: "5.50"}
	quantities := map[uuid.UUID]int{keyboard.ID: 3, mouse.ID: 2}
	for _, item := range order.Items {
		assert.True(t, decimal.RequireFromString(prices[item.ProductID]).Equal(item.Price))
		assert.Equal(t, quantities[item.ProductID], item.Quantity)
	}
	assert.True(t, decimal.RequireFromString("41.00").Equal(order.Total()))

	left, err := f.products.FindByID(context.Background(), keyboard.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, left.Quantity)
	left, err = f.products.FindByID(context.Background(), mouse.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, left.Quantity)
}

func TestCreateOrder_PriceSnapshotSurvivesCatalogChanges(t *testing.T) {
	f := newFixture(t)
	customer := f.addCustomer(t, "Alice", "alice@example.com")
	product := f.addProduct(t, "Keyboard", "10.00", 5)

	order, err := f.svc.CreateOrder(context.Background(), ports.CreateOrderInput{
		CustomerID: customer.ID,
		Items:      []ports.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	fetched, err := f.svc.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("10.00").Equal(fetched.Items[0].Price))
}

func TestCreateOrder_NoDeduplicationAcrossCalls(t *testing.T) {
	f := newFixture(t)
	customer := f.addCustomer(t, "Alice", "alice@example.com")
	product := f.addProduct(t, "Keyboard", "10.00", 5)

	input := ports.CreateOrderInput{
		CustomerID: customer.ID,
		Items:      []ports.OrderItemInput{{ProductID: product.ID, Quantity: 2}},
	}
	first, err := f.svc.CreateOrder(context.Background(), input)
	require.NoError(t, err)
	second, err := f.svc.CreateOrder(context.Background(), input)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	left, err := f.products.FindByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, left.Quantity)
}

// A product with quantity 5 serves an order of 3, leaving 2, and an identical
// re-order of 3 is then rejected.
func TestCreateOrder_ReorderAgainstDepletedStock(t *testing.T) {
	f := newFixture(t)
	customer := f.addCustomer(t, "Alice", "alice@example.com")
	product := f.addProduct(t, "Keyboard", "10.00", 5)

	input := ports.CreateOrderInput{
		CustomerID: customer.ID,
		Items:      []ports.OrderItemInput{{ProductID: product.ID, Quantity: 3}},
	}
	order, err := f.svc.CreateOrder(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.True(t, decimal.RequireFromString("10.00").Equal(order.Items[0].Price))
	assert.Equal(t, 3, order.Items[0].Quantity)

	left, err := f.products.FindByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, left.Quantity)

	_, err = f.svc.CreateOrder(context.Background(), input)
	require.ErrorIs(t, err, ErrQuantityUnavailable)
}

func TestGetByID_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}
