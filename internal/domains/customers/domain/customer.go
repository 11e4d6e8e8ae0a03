package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("customer name is required")
	ErrEmptyEmail   = errors.New("customer email is required")
	ErrInvalidEmail = errors.New("customer email must contain '@'")
)

// Customer represents a registered buyer.
type Customer struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// NewCustomer builds a customer ensuring required invariants.
func NewCustomer(name, email string) (*Customer, error) {
	customer := &Customer{ID: uuid.New()}
	if err := customer.SetName(name); err != nil {
		return nil, err
	}
	if err := customer.SetEmail(email); err != nil {
		return nil, err
	}
	return customer, nil
}

// SetName trims and validates the display name.
func (c *Customer) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	c.Name = name
	return nil
}

// SetEmail normalizes and validates the email address.
func (c *Customer) SetEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ErrEmptyEmail
	}
	if !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	c.Email = email
	return nil
}

// Validate re-applies core invariants for persistence.
func (c *Customer) Validate() error {
	if err := c.SetName(c.Name); err != nil {
		return err
	}
	return c.SetEmail(c.Email)
}
