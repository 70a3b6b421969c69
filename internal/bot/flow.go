package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/line/line-bot-sdk-go/v7/linebot"
	"gorm.io/gorm"

	"github.com/tinhour/line-rent-bot/internal/models"
	"github.com/tinhour/line-rent-bot/internal/services"
)

func (b *Bot) handleSelectLocation(ctx context.Context, _ *models.User, event *linebot.Event, action Action) error {
	msg, err := TypePrompt(action.Param("location"))
	if err != nil {
		return err
	}
	return b.messenger.Reply(ctx, event.ReplyToken, msg)
}

func (b *Bot) handleSelectPropertyType(ctx context.Context, _ *models.User, event *linebot.Event, action Action) error {
	msg, err := PricePrompt(action.Param("location"), action.Param("type"))
	if err != nil {
		return err
	}
	return b.messenger.Reply(ctx, event.ReplyToken, msg)
}

func (b *Bot) handleSelectPriceRange(ctx context.Context, _ *models.User, event *linebot.Event, action Action) error {
	msg, err := SearchSummary(action.Param("location"), action.Param("type"), action.Param("price"))
	if err != nil {
		return err
	}
	return b.messenger.Reply(ctx, event.ReplyToken, msg)
}

// parsePriceFilter splits a "min-max" band into bound filters. An absent or
// unrestricted band yields no bounds.
func parsePriceFilter(value string, restricted bool) (*float64, *float64, error) {
	if !restricted {
		return nil, nil, nil
	}
	parts := strings.SplitN(value, "-", 2)
	if len(parts) != 2 {
		return nil, nil, fmt.Errorf("malformed price range %q", value)
	}
	min, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil, nil, fmt.Errorf("malformed price range %q: %w", value, err)
	}
	max, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return nil, nil, fmt.Errorf("malformed price range %q: %w", value, err)
	}
	return &min, &max, nil
}

func (b *Bot) handleShowPropertyList(ctx context.Context, _ *models.User, event *linebot.Event, action Action) error {
	var filters services.PropertySearchFilters
	if location, ok := action.Filter("location"); ok {
		filters.Location = &location
	}
	if housingType, ok := action.Filter("type"); ok {
		filters.Type = &housingType
	}
	price, restricted := action.Filter("price")
	minPrice, maxPrice, err := parsePriceFilter(price, restricted)
	if err != nil {
		return err
	}
	filters.MinPrice = minPrice
	filters.MaxPrice = maxPrice

	properties, err := b.propertyService.Search(ctx, filters, b.cfg.SearchPageSize)
	if err != nil {
		return err
	}
	if len(properties) == 0 {
		return b.messenger.Reply(ctx, event.ReplyToken, NoResults())
	}
	msg, err := PropertyCarousel("Matching properties", properties, true)
	if err != nil {
		return err
	}
	return b.messenger.Reply(ctx, event.ReplyToken, msg)
}

func (b *Bot) handleViewPropertyDetail(ctx context.Context, _ *models.User, event *linebot.Event, action Action) error {
	propertyID, err := uuid.Parse(action.Param("propertyId"))
	if err != nil {
		return fmt.Errorf("invalid property id %q: %w", action.Param("propertyId"), err)
	}
	property, err := b.propertyService.FindByID(ctx, propertyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return b.messenger.Reply(ctx, event.ReplyToken, NotFound("property"))
	}
	if err != nil {
		return err
	}
	msg, err := PropertyDetail(property)
	if err != nil {
		return err
	}
	return b.messenger.Reply(ctx, event.ReplyToken, msg)
}

// handleContactLandlord records the tenant's interest as a PENDING inquiry,
// offers the deposit payment and queues the landlord notification.
func (b *Bot) handleContactLandlord(ctx context.Context, user *models.User, event *linebot.Event, action Action) error {
	propertyID, err := uuid.Parse(action.Param("propertyId"))
	if err != nil {
		return fmt.Errorf("invalid property id %q: %w", action.Param("propertyId"), err)
	}
	property, err := b.propertyService.FindByID(ctx, propertyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return b.messenger.Reply(ctx, event.ReplyToken, NotFound("property"))
	}
	if err != nil {
		return err
	}

	message := fmt.Sprintf("%s is interested in %s", user.DisplayName, property.Title)
	inquiry, err := b.inquiryService.Create(ctx, user.ID, property.ID, message)
	if err != nil {
		return err
	}

	b.notify(ctx, KindInquiryReceived, inquiry.ID)

	deposit := property.Price * b.cfg.DepositRate
	msg, err := ContactPrompt(inquiry, deposit)
	if err != nil {
		return err
	}
	return b.messenger.Reply(ctx, event.ReplyToken, msg)
}

func (b *Bot) handleCreateProperty(ctx context.Context, _ *models.User, event *linebot.Event, action Action) error {
	msg, err := ListingLocationPrompt(action.Param("type"))
	if err != nil {
		return err
	}
	return b.messenger.Reply(ctx, event.ReplyToken, msg)
}

func (b *Bot) handleSetPropertyLocation(ctx context.Context, _ *models.User, event *linebot.Event, action Action) error {
	msg, err := ListingPricePrompt(action.Param("type"), action.Param("location"))
	if err != nil {
		return err
	}
	return b.messenger.Reply(ctx, event.ReplyToken, msg)
}

// handleConfirmPropertyCreation promotes the user to landlord and publishes
// the listing they assembled through the prompts.
func (b *Bot) handleConfirmPropertyCreation(ctx context.Context, user *models.User, event *linebot.Event, action Action) error {
	price, err := strconv.ParseFloat(action.Param("price"), 64)
	if err != nil {
		return fmt.Errorf("invalid listing price %q: %w", action.Param("price"), err)
	}

	if err := b.userService.PromoteToLandlord(ctx, user.ID); err != nil {
		return err
	}

	title := action.Param("title")
	if title == "" {
		title = fmt.Sprintf("%s %s", action.Param("location"), action.Param("type"))
	}
	property, err := b.propertyService.Create(ctx, services.CreatePropertyParams{
		Title:    title,
		Location: action.Param("location"),
		Type:     action.Param("type"),
		Price:    price,
		OwnerID:  user.ID,
	})
	if err != nil {
		return err
	}
	log.Printf("user %s listed property %s (%s)", user.LineUserID, property.ID, property.Title)

	return b.messenger.Reply(ctx, event.ReplyToken, ListingConfirmed(property))
}

// handlePayDeposit settles the tenant's deposit, reveals the landlord and
// queues the landlord-side notification. An already-approved inquiry just
// re-sends the contact details without charging again.
func (b *Bot) handlePayDeposit(ctx context.Context, user *models.User, event *linebot.Event, action Action) error {
	inquiry, err := b.loadInquiry(ctx, event, action)
	if err != nil || inquiry == nil {
		return err
	}

	if inquiry.Status != models.InquiryStatusPending {
		return b.messenger.Reply(ctx, event.ReplyToken, DepositReceipt(inquiry))
	}

	deposit := inquiry.Property.Price * b.cfg.DepositRate
	inquiryID := inquiry.ID
	if _, err := b.transactionService.Settle(ctx, services.CreateTransactionParams{
		Type:          models.TransactionTypeDeposit,
		Amount:        deposit,
		SenderID:      user.ID,
		ReceiverID:    inquiry.Property.OwnerID,
		InquiryID:     &inquiryID,
		PaymentMethod: "SIMULATED",
	}); err != nil {
		return err
	}

	b.notify(ctx, KindDepositPaid, inquiry.ID)

	return b.messenger.Reply(ctx, event.ReplyToken, DepositReceipt(inquiry))
}

// handlePayCommission settles the landlord's introduction fee, reveals the
// tenant and queues the tenant-side notification. The inquiry status is left
// alone; only the deposit drives approval.
func (b *Bot) handlePayCommission(ctx context.Context, user *models.User, event *linebot.Event, action Action) error {
	inquiry, err := b.loadInquiry(ctx, event, action)
	if err != nil || inquiry == nil {
		return err
	}

	for _, txn := range inquiry.Transactions {
		if txn.Type == models.TransactionTypeCommission && txn.Status == models.TransactionStatusCompleted {
			return b.messenger.Reply(ctx, event.ReplyToken, CommissionReceipt(inquiry))
		}
	}

	fee := inquiry.Property.Price * b.cfg.DepositRate
	inquiryID := inquiry.ID
	if _, err := b.transactionService.Settle(ctx, services.CreateTransactionParams{
		Type:          models.TransactionTypeCommission,
		Amount:        fee,
		SenderID:      user.ID,
		ReceiverID:    inquiry.TenantID,
		InquiryID:     &inquiryID,
		PaymentMethod: "SIMULATED",
	}); err != nil {
		return err
	}

	b.notify(ctx, KindCommissionPaid, inquiry.ID)

	return b.messenger.Reply(ctx, event.ReplyToken, CommissionReceipt(inquiry))
}

// loadInquiry resolves the inquiryId parameter. A nil inquiry with a nil
// error means the lookup missed and the not-found reply was already sent.
func (b *Bot) loadInquiry(ctx context.Context, event *linebot.Event, action Action) (*models.Inquiry, error) {
	inquiryID, err := uuid.Parse(action.Param("inquiryId"))
	if err != nil {
		return nil, fmt.Errorf("invalid inquiry id %q: %w", action.Param("inquiryId"), err)
	}
	inquiry, err := b.inquiryService.FindByID(ctx, inquiryID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, b.messenger.Reply(ctx, event.ReplyToken, NotFound("inquiry"))
	}
	if err != nil {
		return nil, err
	}
	return inquiry, nil
}

// notify enqueues a push notification. Delivery is best effort from the
// handler's point of view; the queue retries and a failed enqueue must not
// undo a completed payment.
func (b *Bot) notify(ctx context.Context, kind string, inquiryID uuid.UUID) {
	if err := b.notifier.NotifyPush(ctx, kind, inquiryID); err != nil {
		log.Printf("failed to enqueue %s notification for inquiry %s: %v", kind, inquiryID, err)
	}
}
