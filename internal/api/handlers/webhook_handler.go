package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/line/line-bot-sdk-go/v7/linebot"

	"github.com/tinhour/line-rent-bot/internal/bot"
	"github.com/tinhour/line-rent-bot/internal/line"
)

// WebhookHandler receives LINE webhook deliveries.
type WebhookHandler struct {
	client *line.Client
	bot    *bot.Bot
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(client *line.Client, b *bot.Bot) *WebhookHandler {
	return &WebhookHandler{client: client, bot: b}
}

// HandleWebhook handles POST /webhook. The SDK validates the channel
// signature while parsing; a valid batch is always acknowledged with 200 so
// the platform does not redeliver, even when individual events fail.
func (h *WebhookHandler) HandleWebhook(c *gin.Context) {
	events, err := h.client.Bot().ParseRequest(c.Request)
	if err != nil {
		if errors.Is(err, linebot.ErrInvalidSignature) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook request"})
		return
	}

	h.bot.HandleEvents(c.Request.Context(), events)
	c.Status(http.StatusOK)
}
