package line

import (
	"context"
	"fmt"

	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// Profile is the subset of a LINE profile the bot cares about.
type Profile struct {
	UserID      string
	DisplayName string
}

// Messenger abstracts the LINE messaging client so flow handlers can be
// tested without network access.
type Messenger interface {
	// Reply answers the event that produced replyToken.
	Reply(ctx context.Context, replyToken string, messages ...linebot.SendingMessage) error
	// Push delivers messages to a user outside any reply window.
	Push(ctx context.Context, to string, messages ...linebot.SendingMessage) error
	// Profile fetches the user's display profile from the platform.
	Profile(ctx context.Context, userID string) (*Profile, error)
}

// Client wraps *linebot.Client as a Messenger.
type Client struct {
	bot *linebot.Client
}

// NewMessenger builds a Messenger backed by the LINE Messaging API.
func NewMessenger(channelSecret, channelAccessToken string) (*Client, error) {
	bot, err := linebot.New(channelSecret, channelAccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LINE client: %w", err)
	}
	return &Client{bot: bot}, nil
}

// Bot exposes the underlying SDK client for webhook request parsing.
func (c *Client) Bot() *linebot.Client {
	return c.bot
}

func (c *Client) Reply(ctx context.Context, replyToken string, messages ...linebot.SendingMessage) error {
	if _, err := c.bot.ReplyMessage(replyToken, messages...).WithContext(ctx).Do(); err != nil {
		return fmt.Errorf("failed to reply: %w", err)
	}
	return nil
}

func (c *Client) Push(ctx context.Context, to string, messages ...linebot.SendingMessage) error {
	if _, err := c.bot.PushMessage(to, messages...).WithContext(ctx).Do(); err != nil {
		return fmt.Errorf("failed to push message to %s: %w", to, err)
	}
	return nil
}

func (c *Client) Profile(ctx context.Context, userID string) (*Profile, error) {
	res, err := c.bot.GetProfile(userID).WithContext(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile for %s: %w", userID, err)
	}
	return &Profile{UserID: res.UserID, DisplayName: res.DisplayName}, nil
}
