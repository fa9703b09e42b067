package router

import (
	"github.com/gin-gonic/gin"

	"omsbridge/internal/handler"
	"omsbridge/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSecret string,
	invoiceH *handler.InvoiceHandler,
	orderH *handler.OrderHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// Protected routes - require valid channel JWT
	v1 := r.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware(authSecret))

	v1.POST("/invoices", invoiceH.Insert)
	v1.POST("/orders/forward", orderH.Forward)

	return r
}
