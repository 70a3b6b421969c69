package tasks

import (
	"context"

	"github.com/google/uuid"
	"github.com/line/line-bot-sdk-go/v7/linebot"
	"github.com/stretchr/testify/mock"

	"github.com/tinhour/line-rent-bot/internal/line"
	"github.com/tinhour/line-rent-bot/internal/models"
	"github.com/tinhour/line-rent-bot/internal/services"
)

// MockMessenger is a mock implementation of line.Messenger.
type MockMessenger struct {
	mock.Mock
}

func (m *MockMessenger) Reply(ctx context.Context, replyToken string, messages ...linebot.SendingMessage) error {
	args := m.Called(ctx, replyToken, messages)
	return args.Error(0)
}

func (m *MockMessenger) Push(ctx context.Context, to string, messages ...linebot.SendingMessage) error {
	args := m.Called(ctx, to, messages)
	return args.Error(0)
}

func (m *MockMessenger) Profile(ctx context.Context, userID string) (*line.Profile, error) {
	args := m.Called(ctx, userID)
	if profile, ok := args.Get(0).(*line.Profile); ok {
		return profile, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ line.Messenger = (*MockMessenger)(nil)

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
