package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/line/line-bot-sdk-go/v7/linebot"
	"gorm.io/gorm"

	"github.com/tinhour/line-rent-bot/internal/config"
	"github.com/tinhour/line-rent-bot/internal/line"
	"github.com/tinhour/line-rent-bot/internal/models"
	"github.com/tinhour/line-rent-bot/internal/services"
)

// Notification kinds. Each one names the event behind a queued push; the
// worker re-renders the message from current database state.
const (
	KindInquiryReceived = "inquiry_received"
	KindDepositPaid     = "deposit_paid"
	KindCommissionPaid  = "commission_paid"
)

// Notifier enqueues push notifications for delivery by the worker. Flow
// handlers depend on this rather than on the queue client directly.
type Notifier interface {
	NotifyPush(ctx context.Context, kind string, inquiryID uuid.UUID) error
}

// handlerFunc handles one postback action on behalf of an already-known user.
type handlerFunc func(ctx context.Context, user *models.User, event *linebot.Event, action Action) error

// Bot dispatches webhook events to flow handlers.
type Bot struct {
	messenger          line.Messenger
	notifier           Notifier
	userService        services.IUserService
	propertyService    services.IPropertyService
	inquiryService     services.IInquiryService
	transactionService services.ITransactionService
	cfg                *config.Config

	handlers map[string]handlerFunc
}

// New creates a Bot with its dispatch table covering every postback action.
func New(
	messenger line.Messenger,
	notifier Notifier,
	userService services.IUserService,
	propertyService services.IPropertyService,
	inquiryService services.IInquiryService,
	transactionService services.ITransactionService,
	cfg *config.Config,
) *Bot {
	b := &Bot{
		messenger:          messenger,
		notifier:           notifier,
		userService:        userService,
		propertyService:    propertyService,
		inquiryService:     inquiryService,
		transactionService: transactionService,
		cfg:                cfg,
	}
	b.handlers = map[string]handlerFunc{
		ActionSelectLocation:          b.handleSelectLocation,
		ActionSelectPropertyType:      b.handleSelectPropertyType,
		ActionSelectPriceRange:        b.handleSelectPriceRange,
		ActionShowPropertyList:        b.handleShowPropertyList,
		ActionViewPropertyDetail:      b.handleViewPropertyDetail,
		ActionContactLandlord:         b.handleContactLandlord,
		ActionCreateProperty:          b.handleCreateProperty,
		ActionSetPropertyLocation:     b.handleSetPropertyLocation,
		ActionConfirmPropertyCreation: b.handleConfirmPropertyCreation,
		ActionPayDeposit:              b.handlePayDeposit,
		ActionPayCommission:           b.handlePayCommission,
	}
	return b
}

// HandleEvents processes a webhook batch. Events are independent, so they run
// concurrently and a failure in one never affects the others.
func (b *Bot) HandleEvents(ctx context.Context, events []*linebot.Event) {
	var wg sync.WaitGroup
	for _, event := range events {
		wg.Add(1)
		go func(event *linebot.Event) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Printf("panic handling %s event: %v", event.Type, r)
				}
			}()
			if err := b.handleEvent(ctx, event); err != nil {
				log.Printf("failed to handle %s event: %v", event.Type, err)
				b.replyError(ctx, event)
			}
		}(event)
	}
	wg.Wait()
}

func (b *Bot) handleEvent(ctx context.Context, event *linebot.Event) error {
	switch event.Type {
	case linebot.EventTypeFollow:
		return b.handleFollow(ctx, event)
	case linebot.EventTypeMessage:
		user, err := b.ensureUser(ctx, event)
		if err != nil {
			return err
		}
		return b.handleMessage(ctx, user, event)
	case linebot.EventTypePostback:
		user, err := b.ensureUser(ctx, event)
		if err != nil {
			return err
		}
		return b.handlePostback(ctx, user, event)
	default:
		log.Printf("ignoring unsupported event type %s", event.Type)
		return nil
	}
}

func (b *Bot) handlePostback(ctx context.Context, user *models.User, event *linebot.Event) error {
	action, err := ParseAction(event.Postback.Data)
	if err != nil {
		return err
	}
	handler, ok := b.handlers[action.Name]
	if !ok {
		// Unknown actions get the generic fallback and never touch data.
		log.Printf("unknown postback action %q from user %s", action.Name, user.LineUserID)
		return b.messenger.Reply(ctx, event.ReplyToken, Fallback())
	}
	return handler(ctx, user, event, action)
}

// ensureUser resolves the sender to a database user, registering them from
// their platform profile on first contact.
func (b *Bot) ensureUser(ctx context.Context, event *linebot.Event) (*models.User, error) {
	if event.Source == nil || event.Source.UserID == "" {
		return nil, fmt.Errorf("%s event has no user source", event.Type)
	}
	lineUserID := event.Source.UserID

	user, err := b.userService.FindByLineID(ctx, lineUserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile, err := b.messenger.Profile(ctx, lineUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to register user %s: %w", lineUserID, err)
	}
	return b.userService.CreateOrUpdate(ctx, profile.UserID, profile.DisplayName)
}

// replyError sends the catch-all failure message when the event still has a
// usable reply token.
func (b *Bot) replyError(ctx context.Context, event *linebot.Event) {
	if event.ReplyToken == "" {
		return
	}
	if err := b.messenger.Reply(ctx, event.ReplyToken, GenericError()); err != nil {
		log.Printf("failed to send error reply: %v", err)
	}
}
