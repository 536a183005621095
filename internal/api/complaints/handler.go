package complaints

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/grievance-labs/complaintbot/internal/domain"
	"github.com/grievance-labs/complaintbot/internal/service"
)

// Handler handles complaint API requests
type Handler struct {
	complaintService *service.ComplaintService
	logger           *zap.Logger
}

// NewHandler creates a new complaints handler
func NewHandler(complaintService *service.ComplaintService, logger *zap.Logger) *Handler {
	return &Handler{complaintService: complaintService, logger: logger}
}

// RegisterRoutes registers complaint routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/complaints", h.CreateComplaint)
	r.GET("/complaints/:complaint_id", h.GetComplaint)
}

// CreateComplaint files a new complaint
func (h *Handler) CreateComplaint(c *gin.Context) {
	var req domain.CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	h.logger.Info("received complaint",
		zap.String("name", req.Name),
		zap.String("email", req.Email))

	resp, err := h.complaintService.Create(&req)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": verr.Fields})
			return
		}
		// Never leak storage error detail to the caller
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetComplaint retrieves a complaint by ID
func (h *Handler) GetComplaint(c *gin.Context) {
	id := c.Param("complaint_id")

	complaint, err := h.complaintService.Get(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Complaint not found"})
			return
		}
		h.logger.Error("failed to get complaint", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, complaint)
}
