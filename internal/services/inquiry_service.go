package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tinhour/line-rent-bot/internal/models"
)

// IInquiryService defines the interface for inquiry operations.
type IInquiryService interface {
	Create(ctx context.Context, tenantID, propertyID uuid.UUID, message string) (*models.Inquiry, error)
	FindByID(ctx context.Context, inquiryID uuid.UUID) (*models.Inquiry, error)
	FindByTenantID(ctx context.Context, tenantID uuid.UUID) ([]models.Inquiry, error)
	FindByLandlordID(ctx context.Context, landlordID uuid.UUID) ([]models.Inquiry, error)
	UpdateStatus(ctx context.Context, inquiryID uuid.UUID, status models.InquiryStatus) error
}

// inquiryService implements IInquiryService.
type inquiryService struct {
	db *gorm.DB
}

// NewInquiryService creates a new InquiryService.
func NewInquiryService(db *gorm.DB) IInquiryService {
	return &inquiryService{db: db}
}

// Create records a PENDING inquiry. The same tenant may inquire about the
// same property more than once; each contact is a separate row.
func (s *inquiryService) Create(ctx context.Context, tenantID, propertyID uuid.UUID, message string) (*models.Inquiry, error) {
	inquiry := models.Inquiry{
		Message:    message,
		Status:     models.InquiryStatusPending,
		TenantID:   tenantID,
		PropertyID: propertyID,
	}
	if err := s.db.WithContext(ctx).Create(&inquiry).Error; err != nil {
		return nil, fmt.Errorf("failed to create inquiry for property %s: %w", propertyID, err)
	}
	return s.FindByID(ctx, inquiry.ID)
}

// FindByID finds an inquiry with tenant, property and property owner preloaded.
func (s *inquiryService) FindByID(ctx context.Context, inquiryID uuid.UUID) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	err := s.db.WithContext(ctx).
		Preload("Tenant").
		Preload("Property").
		Preload("Property.Owner").
		Preload("Transactions").
		First(&inquiry, "id = ?", inquiryID).Error
	if err != nil {
		return nil, err
	}
	return &inquiry, nil
}

// FindByTenantID returns the inquiries a tenant has made, newest first.
func (s *inquiryService) FindByTenantID(ctx context.Context, tenantID uuid.UUID) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	err := s.db.WithContext(ctx).
		Preload("Property").
		Preload("Transactions").
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&inquiries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries for tenant %s: %w", tenantID, err)
	}
	return inquiries, nil
}

// FindByLandlordID returns inquiries received against any of the landlord's
// properties, newest first.
func (s *inquiryService) FindByLandlordID(ctx context.Context, landlordID uuid.UUID) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	err := s.db.WithContext(ctx).
		Preload("Tenant").
		Preload("Property").
		Preload("Transactions").
		Joins("JOIN properties ON properties.id = inquiries.property_id").
		Where("properties.owner_id = ?", landlordID).
		Order("inquiries.created_at DESC").
		Find(&inquiries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries for landlord %s: %w", landlordID, err)
	}
	return inquiries, nil
}

// UpdateStatus transitions an inquiry's status.
func (s *inquiryService) UpdateStatus(ctx context.Context, inquiryID uuid.UUID, status models.InquiryStatus) error {
	res := s.db.WithContext(ctx).Model(&models.Inquiry{}).
		Where("id = ?", inquiryID).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update inquiry %s status: %w", inquiryID, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
