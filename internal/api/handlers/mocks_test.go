package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/tinhour/line-rent-bot/internal/models"
	"github.com/tinhour/line-rent-bot/internal/services"
)

// MockUserService is a mock implementation of services.IUserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) FindByLineID(ctx context.Context, lineUserID string) (*models.User, error) {
	args := m.Called(ctx, lineUserID)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) FindByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, userID)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) CreateOrUpdate(ctx context.Context, lineUserID, displayName string) (*models.User, error) {
	args := m.Called(ctx, lineUserID, displayName)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) PromoteToLandlord(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

var _ services.IUserService = (*MockUserService)(nil)

// MockPropertyService is a mock implementation of services.IPropertyService.
type MockPropertyService struct {
	mock.Mock
}

func (m *MockPropertyService) Create(ctx context.Context, params services.CreatePropertyParams) (*models.Property, error) {
	args := m.Called(ctx, params)
	if property, ok := args.Get(0).(*models.Property); ok {
		return property, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPropertyService) FindByID(ctx context.Context, propertyID uuid.UUID) (*models.Property, error) {
	args := m.Called(ctx, propertyID)
	if property, ok := args.Get(0).(*models.Property); ok {
		return property, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPropertyService) Search(ctx context.Context, filters services.PropertySearchFilters, limit int) ([]models.Property, error) {
	args := m.Called(ctx, filters, limit)
	if properties, ok := args.Get(0).([]models.Property); ok {
		return properties, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPropertyService) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]models.Property, error) {
	args := m.Called(ctx, ownerID)
	if properties, ok := args.Get(0).([]models.Property); ok {
		return properties, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPropertyService) UpdateStatus(ctx context.Context, propertyID uuid.UUID, status models.PropertyStatus) error {
	args := m.Called(ctx, propertyID, status)
	return args.Error(0)
}

var _ services.IPropertyService = (*MockPropertyService)(nil)

// MockInquiryService is a mock implementation of services.IInquiryService.
type MockInquiryService struct {
	mock.Mock
}

func (m *MockInquiryService) Create(ctx context.Context, tenantID, propertyID uuid.UUID, message string) (*models.Inquiry, error) {
	args := m.Called(ctx, tenantID, propertyID, message)
	if inquiry, ok := args.Get(0).(*models.Inquiry); ok {
		return inquiry, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInquiryService) FindByID(ctx context.Context, inquiryID uuid.UUID) (*models.Inquiry, error) {
	args := m.Called(ctx, inquiryID)
	if inquiry, ok := args.Get(0).(*models.Inquiry); ok {
		return inquiry, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInquiryService) FindByTenantID(ctx context.Context, tenantID uuid.UUID) ([]models.Inquiry, error) {
	args := m.Called(ctx, tenantID)
	if inquiries, ok := args.Get(0).([]models.Inquiry); ok {
		return inquiries, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInquiryService) FindByLandlordID(ctx context.Context, landlordID uuid.UUID) ([]models.Inquiry, error) {
	args := m.Called(ctx, landlordID)
	if inquiries, ok := args.Get(0).([]models.Inquiry); ok {
		return inquiries, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInquiryService) UpdateStatus(ctx context.Context, inquiryID uuid.UUID, status models.InquiryStatus) error {
	args := m.Called(ctx, inquiryID, status)
	return args.Error(0)
}

var _ services.IInquiryService = (*MockInquiryService)(nil)

// MockTransactionService is a mock implementation of services.ITransactionService.
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) Create(ctx context.Context, params services.CreateTransactionParams) (*models.Transaction, error) {
	args := m.Called(ctx, params)
	if transaction, ok := args.Get(0).(*models.Transaction); ok {
		return transaction, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransactionService) UpdateStatus(ctx context.Context, transactionID uuid.UUID, status models.TransactionStatus, paymentID *string) (*models.Transaction, error) {
	args := m.Called(ctx, transactionID, status, paymentID)
	if transaction, ok := args.Get(0).(*models.Transaction); ok {
		return transaction, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransactionService) Settle(ctx context.Context, params services.CreateTransactionParams) (*models.Transaction, error) {
	args := m.Called(ctx, params)
	if transaction, ok := args.Get(0).(*models.Transaction); ok {
		return transaction, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransactionService) FindByID(ctx context.Context, transactionID uuid.UUID) (*models.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if transaction, ok := args.Get(0).(*models.Transaction); ok {
		return transaction, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransactionService) FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	args := m.Called(ctx, userID)
	if transactions, ok := args.Get(0).([]models.Transaction); ok {
		return transactions, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ services.ITransactionService = (*MockTransactionService)(nil)
