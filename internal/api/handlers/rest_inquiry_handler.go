package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tinhour/line-rent-bot/internal/services"
)

// RestInquiryHandler handles REST requests for inquiries.
type RestInquiryHandler struct {
	inquiryService  services.IInquiryService
	propertyService services.IPropertyService
	userService     services.IUserService
}

// NewRestInquiryHandler creates a new RestInquiryHandler.
func NewRestInquiryHandler(inquiryService services.IInquiryService, propertyService services.IPropertyService, userService services.IUserService) *RestInquiryHandler {
	return &RestInquiryHandler{
		inquiryService:  inquiryService,
		propertyService: propertyService,
		userService:     userService,
	}
}

// CreateInquiryRequest is the body of POST /api/inquiries.
type CreateInquiryRequest struct {
	LineUserID string `json:"line_user_id" binding:"required"`
	PropertyID string `json:"property_id" binding:"required"`
	Message    string `json:"message"`
}

// CreateInquiry handles POST /api/inquiries. The tenant is identified by
// their LINE user ID.
func (h *RestInquiryHandler) CreateInquiry(c *gin.Context) {
	var req CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property ID"})
		return
	}

	tenant, err := h.userService.FindByLineID(c.Request.Context(), req.LineUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}

	if _, err := h.propertyService.FindByID(c.Request.Context(), propertyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up property"})
		return
	}

	inquiry, err := h.inquiryService.Create(c.Request.Context(), tenant.ID, propertyID, req.Message)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create inquiry"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": inquiry})
}

// GetInquiryByID handles GET /api/inquiries/:id
func (h *RestInquiryHandler) GetInquiryByID(c *gin.Context) {
	inquiryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid inquiry ID"})
		return
	}

	inquiry, err := h.inquiryService.FindByID(c.Request.Context(), inquiryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get inquiry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": inquiry})
}
