package application

import (
	"errors"
	"fmt"

	"github.com/commercekit/commerce-api/internal/domains/customers/domain"
	"github.com/commercekit/commerce-api/internal/domains/customers/ports"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid customer input")
	// ErrConflict signals a uniqueness constraint would be violated.
	ErrConflict = errors.New("customer conflict")
	// ErrNotFound signals the referenced customer does not exist.
	ErrNotFound = errors.New("customer not found")

	// ErrEmailInUse is surfaced when the requested email is already taken.
	ErrEmailInUse = errors.New("email already in use")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyName) ||
		errors.Is(err, domain.ErrEmptyEmail) ||
		errors.Is(err, domain.ErrInvalidEmail) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if errors.Is(err, ErrEmailInUse) {
		return fmt.Errorf("%w: %w", ErrConflict, err)
	}
	if errors.Is(err, ports.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}
