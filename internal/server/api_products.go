package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	catalogapp "github.com/commercekit/commerce-api/internal/domains/catalog/application"
	catalogdomain "github.com/commercekit/commerce-api/internal/domains/catalog/domain"
	catalogports "github.com/commercekit/commerce-api/internal/domains/catalog/ports"
	apierrors "github.com/commercekit/commerce-api/internal/shared/errors"
)

// ProductAPI wires HTTP transport with the catalog bounded context service.
type ProductAPI struct {
	service catalogports.Service
}

// NewProductAPI creates a ProductAPI backed by the provided service.
func NewProductAPI(service catalogports.Service) ProductAPI {
	return ProductAPI{service: service}
}

// ProductCreate is the creation payload.
type ProductCreate struct {
	Name     string          `json:"name" binding:"required"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Product is the transport-level product representation.
type Product struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

func fromDomainProduct(product *catalogdomain.Product) Product {
	if product == nil {
		return Product{}
	}
	return Product{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		Quantity: product.Quantity,
	}
}

// Post /v1/products
// Register a new product
func (api *ProductAPI) CreateProduct(c *gin.Context) {
	var payload ProductCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondProblem(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	created, err := api.service.CreateProduct(c.Request.Context(), catalogports.CreateProductInput{
		Name:     payload.Name,
		Price:    payload.Price,
		Quantity: payload.Quantity,
	})
	if err != nil {
		respondProductServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fromDomainProduct(created))
}

// Get /v1/products/:productId
// Fetch a product
func (api *ProductAPI) GetProductByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "productId")
	if !ok {
		return
	}
	product, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondProductServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainProduct(product))
}

// Get /v1/products
// List the catalog
func (api *ProductAPI) ListProducts(c *gin.Context) {
	products, err := api.service.List(c.Request.Context())
	if err != nil {
		respondProductServiceError(c, err)
		return
	}
	result := make([]Product, 0, len(products))
	for _, product := range products {
		result = append(result, fromDomainProduct(product))
	}
	c.JSON(http.StatusOK, result)
}

func respondProductServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, catalogapp.ErrConflict) {
		respondProblem(c, apierrors.ErrConflict.WithDetail(err.Error()))
		return
	}
	if errors.Is(err, catalogapp.ErrNotFound) || errors.Is(err, catalogports.ErrNotFound) {
		respondProblem(c, apierrors.ErrNotFound.WithDetail(err.Error()))
		return
	}
	if errors.Is(err, catalogapp.ErrInvalidInput) {
		respondProblem(c, apierrors.ErrValidation.WithDetail(err.Error()))
		return
	}
	respondProblem(c, apierrors.ErrInternal.WithDetail(err.Error()))
}
