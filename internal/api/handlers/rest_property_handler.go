package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tinhour/line-rent-bot/internal/models"
	"github.com/tinhour/line-rent-bot/internal/services"
)

// RestPropertyHandler handles REST requests for properties.
type RestPropertyHandler struct {
	propertyService services.IPropertyService
	userService     services.IUserService
}

// NewRestPropertyHandler creates a new RestPropertyHandler.
func NewRestPropertyHandler(propertyService services.IPropertyService, userService services.IUserService) *RestPropertyHandler {
	return &RestPropertyHandler{
		propertyService: propertyService,
		userService:     userService,
	}
}

// priceQuery reads a price filter by its documented camelCase name, falling
// back to the snake_case alias.
func priceQuery(c *gin.Context, name, alias string) string {
	if value := c.Query(name); value != "" {
		return value
	}
	return c.Query(alias)
}

// SearchProperties handles GET /api/properties
func (h *RestPropertyHandler) SearchProperties(c *gin.Context) {
	var filters services.PropertySearchFilters
	if location := c.Query("location"); location != "" {
		filters.Location = &location
	}
	if propertyType := c.Query("type"); propertyType != "" {
		filters.Type = &propertyType
	}
	if minStr := priceQuery(c, "minPrice", "min_price"); minStr != "" {
		min, err := strconv.ParseFloat(minStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid minPrice"})
			return
		}
		filters.MinPrice = &min
	}
	if maxStr := priceQuery(c, "maxPrice", "max_price"); maxStr != "" {
		max, err := strconv.ParseFloat(maxStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maxPrice"})
			return
		}
		filters.MaxPrice = &max
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 || limit > 200 {
		limit = 50
	}

	properties, err := h.propertyService.Search(c.Request.Context(), filters, limit)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search properties"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": properties})
}

// GetPropertyByID handles GET /api/properties/:id
func (h *RestPropertyHandler) GetPropertyByID(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property ID"})
		return
	}

	property, err := h.propertyService.FindByID(c.Request.Context(), propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get property"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": property})
}

// CreatePropertyRequest is the body of POST /api/properties.
type CreatePropertyRequest struct {
	LineUserID  string  `json:"line_user_id" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Location    string  `json:"location" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Description string  `json:"description"`
	ImageURLs   *string `json:"image_urls"`
}

// CreateProperty handles POST /api/properties. The owner is identified by
// their LINE user ID and becomes a landlord if they are not one already.
func (h *RestPropertyHandler) CreateProperty(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	owner, err := h.userService.FindByLineID(c.Request.Context(), req.LineUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}

	if err := h.userService.PromoteToLandlord(c.Request.Context(), owner.ID); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to promote user"})
		return
	}

	property, err := h.propertyService.Create(c.Request.Context(), services.CreatePropertyParams{
		Title:       req.Title,
		Location:    req.Location,
		Type:        req.Type,
		Price:       req.Price,
		Description: req.Description,
		ImageURLs:   req.ImageURLs,
		OwnerID:     owner.ID,
	})
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create property"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": property})
}

// UpdatePropertyStatusRequest is the body of PATCH /api/properties/:id.
type UpdatePropertyStatusRequest struct {
	Status models.PropertyStatus `json:"status" binding:"required,oneof=AVAILABLE RENTED UNAVAILABLE"`
}

// UpdatePropertyStatus handles PATCH /api/properties/:id
func (h *RestPropertyHandler) UpdatePropertyStatus(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property ID"})
		return
	}

	var req UpdatePropertyStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.propertyService.UpdateStatus(c.Request.Context(), propertyID, req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update property"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"id": propertyID, "status": req.Status}})
}
