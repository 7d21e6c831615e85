// internal/app/router.go
package app

import (
	"github.com/gin-gonic/gin"

	adminHandler "github.com/sawaidbasit2/aixosFire-backend/internal/handlers/admin"
	agentHandler "github.com/sawaidbasit2/aixosFire-backend/internal/handlers/agent"
	authHandler "github.com/sawaidbasit2/aixosFire-backend/internal/handlers/auth"
	customerHandler "github.com/sawaidbasit2/aixosFire-backend/internal/handlers/customer"
	servicereqHandler "github.com/sawaidbasit2/aixosFire-backend/internal/handlers/servicereq"
	"github.com/sawaidbasit2/aixosFire-backend/internal/middleware"
)

type Handlers struct {
	AuthHandler     *authHandler.AuthHandler
	AgentHandler    *agentHandler.AgentHandler
	CustomerHandler *customerHandler.CustomerHandler
	ServiceHandler  *servicereqHandler.ServiceHandler
	AdminHandler    *adminHandler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, uploadDir string, h *Handlers) {
	// ==================== Health Check ====================
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "aixos-fire-backend"})
	})

	// QR images and uploaded documents are served straight from disk.
	r.Static("/uploads", uploadDir)

	api := r.Group("/api")

	// ==================== Auth ====================
	auth := api.Group("/auth")
	{
		auth.POST("/register/agent", h.AuthHandler.RegisterAgent)
		auth.POST("/register/customer", h.AuthHandler.RegisterCustomer)
		auth.POST("/login", h.AuthHandler.Login)
		auth.POST("/forgot-password", h.AuthHandler.ForgotPassword)
		auth.POST("/reset-password", h.AuthHandler.ResetPassword)
	}

	// ==================== Agent (field app) ====================
	agents := api.Group("/agents")
	{
		agents.GET("/customers/search", h.AgentHandler.SearchCustomers)
		agents.POST("/visits", h.AgentHandler.LogVisit)
		agents.GET("/:id/stats", h.AgentHandler.Stats)
		agents.GET("/:id/my-customers", h.AgentHandler.MyCustomers)
		agents.POST("/location", h.AgentHandler.UpdateLocation)
	}

	// ==================== Customer ====================
	customers := api.Group("/customers")
	{
		customers.GET("/:id/dashboard", h.CustomerHandler.Dashboard)
		customers.GET("/:id/inventory", h.CustomerHandler.Inventory)
		customers.GET("/:id/history", h.CustomerHandler.History)
		customers.POST("/book", h.CustomerHandler.BookService)
		customers.POST("/inventory", h.CustomerHandler.AddExtinguisher)
		customers.POST("/location", h.CustomerHandler.UpdateLocation)
	}

	// ==================== Service requests ====================
	services := api.Group("/services")
	{
		services.GET("", h.ServiceHandler.List)
		services.PUT("/:id/status", h.ServiceHandler.UpdateStatus)
	}

	// ==================== Admin console ====================
	admin := api.Group("/admin")
	admin.Use(h.AuthMiddleware.Auth(), h.AuthMiddleware.AdminOnly())
	{
		admin.GET("/agents", h.AdminHandler.ListAgents)
		admin.PUT("/agents/:id/approve", h.AdminHandler.ApproveAgent)
		admin.PUT("/agents/:id/reject", h.AdminHandler.RejectAgent)
		admin.GET("/stats", h.AdminHandler.Stats)
		admin.GET("/customers", h.AdminHandler.ListCustomers)
		admin.GET("/map-data", h.AdminHandler.MapData)
	}
}
