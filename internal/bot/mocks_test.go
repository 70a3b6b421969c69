package bot

import (
	"context"

	"github.com/google/uuid"
	"github.com/line/line-bot-sdk-go/v7/linebot"
	"github.com/stretchr/testify/mock"

	"github.com/tinhour/line-rent-bot/internal/line"
)

// MockMessenger is a mock implementation of line.Messenger. It records every
// sent message so tests can assert on the rendered output.
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

// MockNotifier is a mock implementation of Notifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyPush(ctx context.Context, kind string, inquiryID uuid.UUID) error {
	args := m.Called(ctx, kind, inquiryID)
	return args.Error(0)
}

var _ Notifier = (*MockNotifier)(nil)
