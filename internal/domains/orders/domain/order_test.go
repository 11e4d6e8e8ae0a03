package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	customerdomain "github.com/commercekit/commerce-api/internal/domains/customers/domain"
)

func testCustomer(t *testing.T) *customerdomain.Customer {
	t.Helper()
	customer, err := customerdomain.NewCustomer("Alice", "alice@example.com")
	require.NoError(t, err)
	return customer
}

func TestNewOrder_RequiresItems(t *testing.T) {
	_, err := NewOrder(testCustomer(t), nil)
	require.ErrorIs(t, err, ErrNoItems)
}

func TestNewOrder_RequiresCustomer(t *testing.T) {
	_, err := NewOrder(nil, []OrderItem{{ProductID: uuid.New(), Quantity: 1}})
	require.ErrorIs(t, err, ErrMissingCustomer)
}

func TestNewOrder_RejectsNonPositiveQuantity(t *testing.T) {
	_, err := NewOrder(testCustomer(t), []OrderItem{{ProductID: uuid.New(), Quantity: 0}})
	require.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestOrderTotal(t *testing.T) {
	order, err := NewOrder(testCustomer(t), []OrderItem{
		{ProductID: uuid.New(), Price: decimal.RequireFromString("10.00"), Quantity: 3},
		{ProductID: uuid.New(), Price: decimal.RequireFromString("5.50"), Quantity: 2},
	})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("41.00").Equal(order.Total()))
}
