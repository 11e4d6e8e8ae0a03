package application

import (
	"errors"
	"fmt"

	customerports "github.com/commercekit/commerce-api/internal/domains/customers/ports"
	"github.com/commercekit/commerce-api/internal/domains/orders/domain"
	"github.com/commercekit/commerce-api/internal/domains/orders/ports"
)

var (
	// ErrInvalidInput signals the request is structurally or semantically invalid.
	ErrInvalidInput = errors.New("invalid order input")
	// ErrNotFound signals a referenced entity does not exist.
	ErrNotFound = errors.New("order reference not found")

	// ErrCustomerNotFound is surfaced when the ordering customer is unknown.
	ErrCustomerNotFound = errors.New("customer does not exist")
	// ErrProductsNotFound covers both an empty item list and unknown product ids.
	ErrProductsNotFound = errors.New("products not found")
	// ErrQuantityUnavailable is surfaced when a requested quantity exceeds stock.
	ErrQuantityUnavailable = errors.New("quantity unavailable")
	// ErrDuplicateProduct is surfaced when the same product id appears twice.
	ErrDuplicateProduct = errors.New("duplicate product in order")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, customerports.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, ErrCustomerNotFound)
	}
	if errors.Is(err, ErrProductsNotFound) ||
		errors.Is(err, ErrQuantityUnavailable) ||
		errors.Is(err, ErrDuplicateProduct) ||
		errors.Is(err, domain.ErrNoItems) ||
		errors.Is(err, domain.ErrInvalidQuantity) ||
		errors.Is(err, domain.ErrMissingProductID) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if errors.Is(err, ports.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}
