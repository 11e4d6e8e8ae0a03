package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	orderapp "github.com/commercekit/commerce-api/internal/domains/orders/application"
	orderdomain "github.com/commercekit/commerce-api/internal/domains/orders/domain"
	orderports "github.com/commercekit/commerce-api/internal/domains/orders/ports"
	apierrors "github.com/commercekit/commerce-api/internal/shared/errors"
)

// OrderAPI wires HTTP transport with the orders bounded context service.
type OrderAPI struct {
	service orderports.Service
}

// NewOrderAPI creates an OrderAPI backed by the provided service.
func NewOrderAPI(service orderports.Service) OrderAPI {
	return OrderAPI{service: service}
}

// OrderItemCreate is one requested line of the creation payload.
type OrderItemCreate struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required"`
}

// OrderCreate is the creation payload.
type OrderCreate struct {
	CustomerID uuid.UUID         `json:"customerId" binding:"required"`
	Items      []OrderItemCreate `json:"items"`
}

// OrderItem is the transport-level order line representation.
type OrderItem struct {
	ProductID uuid.UUID       `json:"productId"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Order is the transport-level order representation.
type Order struct {
	ID         uuid.UUID       `json:"id"`
	CustomerID uuid.UUID       `json:"customerId"`
	OrderedAt  time.Time       `json:"orderedAt"`
	Items      []OrderItem     `json:"items"`
	Total      decimal.Decimal `json:"total"`
}

func fromDomainOrder(order *orderdomain.Order) Order {
	if order == nil {
		return Order{}
	}
	items := make([]OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItem{
			ProductID: item.ProductID,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}
	return Order{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		OrderedAt:  order.OrderedAt,
		Items:      items,
		Total:      order.Total(),
	}
}

// Post /v1/orders
// Place a new order
func (api *OrderAPI) CreateOrder(c *gin.Context) {
	var payload OrderCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondProblem(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	items := make([]orderports.OrderItemInput, 0, len(payload.Items))
	for _, item := range payload.Items {
		items = append(items, orderports.OrderItemInput{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	created, err := api.service.CreateOrder(c.Request.Context(), orderports.CreateOrderInput{
		CustomerID: payload.CustomerID,
		Items:      items,
	})
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fromDomainOrder(created))
}

// Get /v1/orders/:orderId
// Fetch an order with its items
func (api *OrderAPI) GetOrderByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "orderId")
	if !ok {
		return
	}
	order, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainOrder(order))
}

// Get /v1/orders
// List orders
func (api *OrderAPI) ListOrders(c *gin.Context) {
	orders, err := api.service.List(c.Request.Context())
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	result := make([]Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, fromDomainOrder(order))
	}
	c.JSON(http.StatusOK, result)
}

func respondOrderServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, orderapp.ErrNotFound) || errors.Is(err, orderports.ErrNotFound) {
		respondProblem(c, apierrors.ErrNotFound.WithDetail(err.Error()))
		return
	}
	if errors.Is(err, orderapp.ErrInvalidInput) {
		respondProblem(c, apierrors.ErrValidation.WithDetail(err.Error()))
		return
	}
	respondProblem(c, apierrors.ErrInternal.WithDetail(err.Error()))
}
