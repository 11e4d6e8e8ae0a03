package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	customerapp "github.com/commercekit/commerce-api/internal/domains/customers/application"
	customerdomain "github.com/commercekit/commerce-api/internal/domains/customers/domain"
	customerports "github.com/commercekit/commerce-api/internal/domains/customers/ports"
	apierrors "github.com/commercekit/commerce-api/internal/shared/errors"
)

// CustomerAPI wires HTTP transport with the customers bounded context service.
type CustomerAPI struct {
	service customerports.Service
}

// NewCustomerAPI creates a CustomerAPI backed by the provided service.
func NewCustomerAPI(service customerports.Service) CustomerAPI {
	return CustomerAPI{service: service}
}

// CustomerCreate is the creation payload.
type CustomerCreate struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// Customer is the transport-level customer representation.
type Customer struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func fromDomainCustomer(customer *customerdomain.Customer) Customer {
	if customer == nil {
		return Customer{}
	}
	return Customer{ID: customer.ID, Name: customer.Name, Email: customer.Email}
}

// Post /v1/customers
// Register a new customer
func (api *CustomerAPI) CreateCustomer(c *gin.Context) {
	var payload CustomerCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondProblem(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	created, err := api.service.CreateCustomer(c.Request.Context(), customerports.CreateCustomerInput{
		Name:  payload.Name,
		Email: payload.Email,
	})
	if err != nil {
		respondCustomerServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fromDomainCustomer(created))
}

// Get /v1/customers/:customerId
// Fetch a customer
func (api *CustomerAPI) GetCustomerByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "customerId")
	if !ok {
		return
	}
	customer, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondCustomerServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainCustomer(customer))
}

// Get /v1/customers
// List customers
func (api *CustomerAPI) ListCustomers(c *gin.Context) {
	customers, err := api.service.List(c.Request.Context())
	if err != nil {
		respondCustomerServiceError(c, err)
		return
	}
	result := make([]Customer, 0, len(customers))
	for _, customer := range customers {
		result = append(result, fromDomainCustomer(customer))
	}
	c.JSON(http.StatusOK, result)
}

func respondCustomerServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, customerapp.ErrConflict) {
		respondProblem(c, apierrors.ErrConflict.WithDetail(err.Error()))
		return
	}
	if errors.Is(err, customerapp.ErrNotFound) || errors.Is(err, customerports.ErrNotFound) {
		respondProblem(c, apierrors.ErrNotFound.WithDetail(err.Error()))
		return
	}
	if errors.Is(err, customerapp.ErrInvalidInput) {
		respondProblem(c, apierrors.ErrValidation.WithDetail(err.Error()))
		return
	}
	respondProblem(c, apierrors.ErrInternal.WithDetail(err.Error()))
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondProblem(c, apierrors.ErrBadRequest.WithDetail(name+" must be a valid uuid"))
		return uuid.Nil, false
	}
	return id, true
}
