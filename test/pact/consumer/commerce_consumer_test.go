//go:build pact

package consumer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/pact-foundation/pact-go/v2/consumer"
	"github.com/pact-foundation/pact-go/v2/matchers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pacttest "github.com/commercekit/commerce-api/test/pact"
)

var jsonContentType = matchers.Regex("application/json", `application/json(;\s?charset=[\w\-]+)?`)
var problemContentType = matchers.Regex("application/problem+json", `application/problem\+json(;\s?charset=[\w\-]+)?`)

type storefrontClient struct {
	baseURL string
	http    *http.Client
}

func (c *storefrontClient) post(path string, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.http.Do(req)
}

type problemDetail struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

func decodeProblem(t *testing.T, resp *http.Response) problemDetail {
	t.Helper()
	defer resp.Body.Close()
	var p problemDetail
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	return p
}

func newPact(t *testing.T) *consumer.V2HTTPMockProvider {
	t.Helper()
	pact, err := consumer.NewV2Pact(consumer.MockHTTPProviderConfig{
		Consumer: pacttest.ConsumerName,
		Provider: pacttest.ProviderName,
		PactDir:  pacttest.PactDir(),
		LogDir:   pacttest.LogDir(),
	})
	require.NoError(t, err)
	return pact
}

func TestConsumer_CreateCustomer(t *testing.T) {
	pact := newPact(t)

	err := pact.
		AddInteraction().
		Given(pacttest.StateNoCustomers).
		UponReceiving("a request to create a customer").
		WithRequest(http.MethodPost, "/v1/customers", func(b *consumer.V2RequestBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(pacttest.ExampleCustomerPayload("bob@example.com"))
		}).
		WillRespondWith(http.StatusCreated, func(b *consumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{
				"id":    matchers.Regex(pacttest.CustomerAliceID, `[0-9a-f\-]{36}`),
				"name":  matchers.String("Alice Smith"),
				"email": matchers.String("bob@example.com"),
			})
		}).
		ExecuteTest(t, func(config consumer.MockServerConfig) error {
			client := &storefrontClient{
				baseURL: fmt.Sprintf("http://%s:%d", config.Host, config.Port),
				http:    http.DefaultClient,
			}
			resp, err := client.post("/v1/customers", pacttest.ExampleCustomerPayload("bob@example.com"))
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			assert.Equal(t, http.StatusCreated, resp.StatusCode)
			return nil
		})
	require.NoError(t, err)
}

func TestConsumer_CreateCustomer_DuplicateEmail(t *testing.T) {
	pact := newPact(t)

	err := pact.
		AddInteraction().
		Given(pacttest.StateCustomerAliceExist).
		UponReceiving("a request to create a customer with an email already in use").
		WithRequest(http.MethodPost, "/v1/customers", func(b *consumer.V2RequestBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(pacttest.ExampleCustomerPayload(pacttest.CustomerAliceMail))
		}).
		WillRespondWith(http.StatusConflict, func(b *consumer.V2ResponseBuilder) {
			b.Header("Content-Type", problemContentType)
			b.JSONBody(matchers.Map{
				"type":   matchers.String("/problems/conflict"),
				"title":  matchers.Like("Conflict"),
				"status": matchers.Integer(http.StatusConflict),
				"detail": matchers.Like("email already in use"),
			})
		}).
		ExecuteTest(t, func(config consumer.MockServerConfig) error {
			client := &storefrontClient{
				baseURL: fmt.Sprintf("http://%s:%d", config.Host, config.Port),
				http:    http.DefaultClient,
			}
			resp, err := client.post("/v1/customers", pacttest.ExampleCustomerPayload(pacttest.CustomerAliceMail))
			if err != nil {
				return err
			}
			assert.Equal(t, http.StatusConflict, resp.StatusCode)
			problem := decodeProblem(t, resp)
			assert.Equal(t, http.StatusConflict, problem.Status)
			return nil
		})
	require.NoError(t, err)
}

func TestConsumer_CreateOrder(t *testing.T) {
	pact := newPact(t)

	body := pacttest.ExampleOrderPayload(pacttest.CustomerAliceID, pacttest.ProductWidgetID, 2)

	err := pact.
		AddInteraction().
		Given(pacttest.StateOrderCatalogSeeded).
		UponReceiving("a request to create an order").
		WithRequest(http.MethodPost, "/v1/orders", func(b *consumer.V2RequestBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(body)
		}).
		WillRespondWith(http.StatusCreated, func(b *consumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{
				"id":         matchers.Regex(pacttest.ProductWidgetID, `[0-9a-f\-]{36}`),
				"customerId": matchers.Regex(pacttest.CustomerAliceID, `[0-9a-f\-]{36}`),
				"total":      matchers.Like(19.98),
			})
		}).
		ExecuteTest(t, func(config consumer.MockServerConfig) error {
			client := &storefrontClient{
				baseURL: fmt.Sprintf("http://%s:%d", config.Host, config.Port),
				http:    http.DefaultClient,
			}
			resp, err := client.post("/v1/orders", body)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			assert.Equal(t, http.StatusCreated, resp.StatusCode)
			return nil
		})
	require.NoError(t, err)
}

func TestConsumer_CreateOrder_QuantityUnavailable(t *testing.T) {
	pact := newPact(t)

	body := pacttest.ExampleOrderPayload(pacttest.CustomerAliceID, pacttest.ProductScarceID, 5)

	err := pact.
		AddInteraction().
		Given(pacttest.StateOrderCatalogSeeded).
		UponReceiving("a request to order more units than are in stock").
		WithRequest(http.MethodPost, "/v1/orders", func(b *consumer.V2RequestBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(body)
		}).
		WillRespondWith(http.StatusBadRequest, func(b *consumer.V2ResponseBuilder) {
			b.Header("Content-Type", problemContentType)
			b.JSONBody(matchers.Map{
				"type":   matchers.String("/problems/validation-error"),
				"status": matchers.Integer(http.StatusBadRequest),
				"detail": matchers.Like("quantity unavailable"),
			})
		}).
		ExecuteTest(t, func(config consumer.MockServerConfig) error {
			client := &storefrontClient{
				baseURL: fmt.Sprintf("http://%s:%d", config.Host, config.Port),
				http:    http.DefaultClient,
			}
			resp, err := client.post("/v1/orders", body)
			if err != nil {
				return err
			}
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			problem := decodeProblem(t, resp)
			assert.Equal(t, http.StatusBadRequest, problem.Status)
			return nil
		})
	require.NoError(t, err)
}
