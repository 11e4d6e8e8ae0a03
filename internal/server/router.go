package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ApiHandleFunctions groups the per-context HTTP handlers.
type ApiHandleFunctions struct {
	CustomerAPI CustomerAPI
	ProductAPI  ProductAPI
	OrderAPI    OrderAPI
}

// NewRouter builds a gin engine with all API routes registered. Middleware
// must be supplied here so it applies to the route handler chains.
func NewRouter(handlers ApiHandleFunctions, middleware ...gin.HandlerFunc) *gin.Engine {
	router := gin.Default()
	router.Use(middleware...)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1")
	{
		v1.POST("/customers", handlers.CustomerAPI.CreateCustomer)
		v1.GET("/customers", handlers.CustomerAPI.ListCustomers)
		v1.GET("/customers/:customerId", handlers.CustomerAPI.GetCustomerByID)

		v1.POST("/products", handlers.ProductAPI.CreateProduct)
		v1.GET("/products", handlers.ProductAPI.ListProducts)
		v1.GET("/products/:productId", handlers.ProductAPI.GetProductByID)

		v1.POST("/orders", handlers.OrderAPI.CreateOrder)
		v1.GET("/orders", handlers.OrderAPI.ListOrders)
		v1.GET("/orders/:orderId", handlers.OrderAPI.GetOrderByID)
	}
	return router
}
