package application

import (
	"errors"
	"fmt"

	"github.com/commercekit/commerce-api/internal/domains/catalog/domain"
	"github.com/commercekit/commerce-api/internal/domains/catalog/ports"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid product input")
	// ErrConflict signals a uniqueness constraint would be violated.
	ErrConflict = errors.New("product conflict")
	// ErrNotFound signals the referenced product does not exist.
	ErrNotFound = errors.New("product not found")

	// ErrNameInUse is surfaced when the requested product name is taken.
	ErrNameInUse = errors.New("product name already in use")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyName) ||
		errors.Is(err, domain.ErrNegativePrice) ||
		errors.Is(err, domain.ErrNegativeQuantity) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if errors.Is(err, ErrNameInUse) {
		return fmt.Errorf("%w: %w", ErrConflict, err)
	}
	if errors.Is(err, ports.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}
