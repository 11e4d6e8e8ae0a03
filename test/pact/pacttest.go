//go:build pact

// Package pacttest holds shared constants and helpers for the consumer and
// provider halves of the contract test suite.
package pacttest

import (
	"path/filepath"
	"runtime"
)

const (
	// ProviderName identifies this API in the generated pact files.
	ProviderName = "commerce-api"
	// ConsumerName is the storefront frontend that drives the contract.
	ConsumerName = "storefront-web"
)

// Provider states shared between the consumer expectations and the provider
// state handlers.
const (
	StateNoCustomers        = "no customers exist"
	StateCustomerAliceExist = "a customer with email alice@example.com exists"
	StateOrderCatalogSeeded = "a customer and products are available for ordering"
)

// Fixed identifiers used by seeded provider states.
const (
	CustomerAliceID   = "0b0e7a3c-6f48-4a3e-9c36-6a1f0c5e9d01"
	ProductWidgetID   = "4d1c2b7e-9a5f-4e0d-8b13-2f6c7d8e9a02"
	ProductScarceID   = "7e2f3c8d-1b6a-4f9e-9d24-3a7b8c9d0e03"
	CustomerAliceMail = "alice@example.com"
)

// ExampleCustomerPayload is the body the consumer sends to create a customer.
func ExampleCustomerPayload(email string) map[string]any {
	return map[string]any{
		"name":  "Alice Smith",
		"email": email,
	}
}

// ExampleOrderPayload is the body the consumer sends to create an order.
func ExampleOrderPayload(customerID, productID string, quantity int) map[string]any {
	return map[string]any{
		"customerId": customerID,
		"items": []map[string]any{
			{"productId": productID, "quantity": quantity},
		},
	}
}

// PactDir is the directory pact files are written to and read from.
func PactDir() string {
	return filepath.Join(projectRoot(), "test", "pact", "pacts")
}

// PactFile is the path of the pact produced by the consumer test.
func PactFile() string {
	return filepath.Join(PactDir(), ConsumerName+"-"+ProviderName+".json")
}

// LogDir is where the pact framework writes its logs.
func LogDir() string {
	return filepath.Join(projectRoot(), "test", "pact", "logs")
}

func projectRoot() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Dir(filepath.Dir(filepath.Dir(file)))
}
