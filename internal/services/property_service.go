package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tinhour/line-rent-bot/internal/models"
)

// PropertySearchFilters describes an AND-combined property search. Nil fields
// are unfiltered.
type PropertySearchFilters struct {
	Location *string
	Type     *string
	MinPrice *float64
	MaxPrice *float64
}

// CreatePropertyParams carries the fields needed to list a property.
type CreatePropertyParams struct {
	Title       string
	Location    string
	Type        string
	Price       float64
	Description string
	ImageURLs   *string
	OwnerID     uuid.UUID
}

// IPropertyService defines the interface for property operations.
type IPropertyService interface {
	Create(ctx context.Context, params CreatePropertyParams) (*models.Property, error)
	FindByID(ctx context.Context, propertyID uuid.UUID) (*models.Property, error)
	Search(ctx context.Context, filters PropertySearchFilters, limit int) ([]models.Property, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]models.Property, error)
	UpdateStatus(ctx context.Context, propertyID uuid.UUID, status models.PropertyStatus) error
}

// propertyService implements IPropertyService.
type propertyService struct {
	db *gorm.DB
}

// NewPropertyService creates a new PropertyService.
func NewPropertyService(db *gorm.DB) IPropertyService {
	return &propertyService{db: db}
}

// Create inserts a new AVAILABLE property.
func (s *propertyService) Create(ctx context.Context, params CreatePropertyParams) (*models.Property, error) {
	if params.Price <= 0 {
		return nil, fmt.Errorf("property price must be positive, got %f", params.Price)
	}
	property := models.Property{
		Title:       params.Title,
		Location:    params.Location,
		Type:        params.Type,
		Price:       params.Price,
		Description: params.Description,
		ImageURLs:   params.ImageURLs,
		Status:      models.PropertyStatusAvailable,
		OwnerID:     params.OwnerID,
	}
	if err := s.db.WithContext(ctx).Create(&property).Error; err != nil {
		return nil, fmt.Errorf("failed to create property for owner %s: %w", params.OwnerID, err)
	}
	return &property, nil
}

// FindByID finds a property by ID with its owner preloaded.
func (s *propertyService) FindByID(ctx context.Context, propertyID uuid.UUID) (*models.Property, error) {
	var property models.Property
	err := s.db.WithContext(ctx).Preload("Owner").First(&property, "id = ?", propertyID).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// Search returns AVAILABLE properties matching all given filters, newest
// first, capped at limit.
func (s *propertyService) Search(ctx context.Context, filters PropertySearchFilters, limit int) ([]models.Property, error) {
	query := s.db.WithContext(ctx).
		Preload("Owner").
		Where("status = ?", models.PropertyStatusAvailable)

	if filters.Location != nil {
		query = query.Where("location = ?", *filters.Location)
	}
	if filters.Type != nil {
		query = query.Where("type = ?", *filters.Type)
	}
	if filters.MinPrice != nil {
		query = query.Where("price >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		query = query.Where("price <= ?", *filters.MaxPrice)
	}

	var properties []models.Property
	err := query.Order("created_at DESC").Limit(limit).Find(&properties).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search properties: %w", err)
	}
	return properties, nil
}

// FindByOwnerID returns all properties listed by the given owner, newest first.
func (s *propertyService) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]models.Property, error) {
	var properties []models.Property
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&properties).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list properties for owner %s: %w", ownerID, err)
	}
	return properties, nil
}

// UpdateStatus transitions a property's availability status.
func (s *propertyService) UpdateStatus(ctx context.Context, propertyID uuid.UUID, status models.PropertyStatus) error {
	res := s.db.WithContext(ctx).Model(&models.Property{}).
		Where("id = ?", propertyID).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update property %s status: %w", propertyID, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
