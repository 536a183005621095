package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/grievance-labs/complaintbot/internal/api/complaints"
	"github.com/grievance-labs/complaintbot/internal/api/middleware"
	"github.com/grievance-labs/complaintbot/internal/service"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	AllowOrigins []string
}

// SetupRouter sets up the Gin router
func SetupRouter(
	complaintService *service.ComplaintService,
	logger *zap.Logger,
	cfg RouterConfig,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Request logging
	r.Use(middleware.Logger(logger))

	// CORS middleware (chat front-ends may run on other origins)
	r.Use(middleware.CORS(cfg.AllowOrigins))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Complaints API
	complaintHandler := complaints.NewHandler(complaintService, logger)
	complaintHandler.RegisterRoutes(&r.RouterGroup)

	return r
}
