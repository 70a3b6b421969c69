package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tinhour/line-rent-bot/internal/bot"
	"github.com/tinhour/line-rent-bot/internal/config"
	"github.com/tinhour/line-rent-bot/internal/models"
)

func notifyTask(t *testing.T, kind string, inquiryID uuid.UUID) *asynq.Task {
	t.Helper()
	payload, err := json.Marshal(NotifyPushPayload{Kind: kind, InquiryID: inquiryID})
	require.NoError(t, err)
	return asynq.NewTask(TypeNotifyPush, payload)
}

func fixtureInquiry() *models.Inquiry {
	return &models.Inquiry{
		Base:   models.Base{ID: uuid.New()},
		Status: models.InquiryStatusPending,
		Property: models.Property{
			Base:     models.Base{ID: uuid.New()},
			Title:    "Taipei Studio",
			Location: "Taipei",
			Type:     "Studio",
			Price:    10000,
			Owner: models.User{
				Base:        models.Base{ID: uuid.New()},
				LineUserID:  "Uowner",
				DisplayName: "Owner Wang",
			},
		},
		Tenant: models.User{
			Base:        models.Base{ID: uuid.New()},
			LineUserID:  "Utenant",
			DisplayName: "Tenant Lin",
		},
	}
}

func newProcessorFixture(inquiry *models.Inquiry) (*TaskProcessor, *MockMessenger, *MockInquiryService) {
	messenger := new(MockMessenger)
	inquiryService := new(MockInquiryService)
	if inquiry != nil {
		inquiryService.On("FindByID", mock.Anything, inquiry.ID).Return(inquiry, nil)
	}
	cfg := &config.Config{DepositRate: 0.10}
	return NewTaskProcessor(messenger, inquiryService, cfg), messenger, inquiryService
}

func TestHandleNotifyPushTask_InquiryReceived_PushesToOwner(t *testing.T) {
	inquiry := fixtureInquiry()
	processor, messenger, _ := newProcessorFixture(inquiry)
	messenger.On("Push", mock.Anything, "Uowner", mock.Anything).Return(nil)

	err := processor.HandleNotifyPushTask(context.Background(), notifyTask(t, bot.KindInquiryReceived, inquiry.ID))
	require.NoError(t, err)
	messenger.AssertExpectations(t)
}

func TestHandleNotifyPushTask_DepositPaid_PushesToOwner(t *testing.T) {
	inquiry := fixtureInquiry()
	processor, messenger, _ := newProcessorFixture(inquiry)
	messenger.On("Push", mock.Anything, "Uowner", mock.Anything).Return(nil)

	err := processor.HandleNotifyPushTask(context.Background(), notifyTask(t, bot.KindDepositPaid, inquiry.ID))
	require.NoError(t, err)
	messenger.AssertExpectations(t)
}

func TestHandleNotifyPushTask_CommissionPaid_PushesToTenant(t *testing.T) {
	inquiry := fixtureInquiry()
	processor, messenger, _ := newProcessorFixture(inquiry)
	messenger.On("Push", mock.Anything, "Utenant", mock.Anything).Return(nil)

	err := processor.HandleNotifyPushTask(context.Background(), notifyTask(t, bot.KindCommissionPaid, inquiry.ID))
	require.NoError(t, err)
	messenger.AssertExpectations(t)
}

func TestHandleNotifyPushTask_UnknownKindSkipsRetry(t *testing.T) {
	inquiry := fixtureInquiry()
	processor, messenger, _ := newProcessorFixture(inquiry)

	err := processor.HandleNotifyPushTask(context.Background(), notifyTask(t, "mystery", inquiry.ID))
	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
	messenger.AssertNumberOfCalls(t, "Push", 0)
}

func TestHandleNotifyPushTask_MalformedPayloadSkipsRetry(t *testing.T) {
	processor, messenger, _ := newProcessorFixture(nil)

	err := processor.HandleNotifyPushTask(context.Background(), asynq.NewTask(TypeNotifyPush, []byte("{")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
	messenger.AssertNumberOfCalls(t, "Push", 0)
}

func TestHandleNotifyPushTask_LookupFailureIsRetryable(t *testing.T) {
	inquiryID := uuid.New()
	messenger := new(MockMessenger)
	inquiryService := new(MockInquiryService)
	inquiryService.On("FindByID", mock.Anything, inquiryID).Return(nil, errors.New("db down"))
	processor := NewTaskProcessor(messenger, inquiryService, &config.Config{DepositRate: 0.10})

	err := processor.HandleNotifyPushTask(context.Background(), notifyTask(t, bot.KindDepositPaid, inquiryID))
	require.Error(t, err)
	assert.False(t, errors.Is(err, asynq.SkipRetry))
}
