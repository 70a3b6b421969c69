package bot

import (
	"context"
	"strings"

	"github.com/line/line-bot-sdk-go/v7/linebot"

	"github.com/tinhour/line-rent-bot/internal/models"
)

// handleMessage routes text commands. Anything unrecognized, including
// non-text messages, gets the fallback reply.
func (b *Bot) handleMessage(ctx context.Context, user *models.User, event *linebot.Event) error {
	text, ok := event.Message.(*linebot.TextMessage)
	if !ok {
		return b.messenger.Reply(ctx, event.ReplyToken, Fallback())
	}

	switch strings.ToLower(strings.TrimSpace(text.Text)) {
	case CmdFindHouse:
		msg, err := LocationPrompt()
		if err != nil {
			return err
		}
		return b.messenger.Reply(ctx, event.ReplyToken, msg)
	case CmdListProperty:
		msg, err := ListingTypePrompt()
		if err != nil {
			return err
		}
		return b.messenger.Reply(ctx, event.ReplyToken, msg)
	case CmdMyProperties:
		return b.replyMyProperties(ctx, user, event.ReplyToken)
	case CmdMyInquiries:
		return b.replyMyInquiries(ctx, user, event.ReplyToken)
	case CmdHelp:
		return b.messenger.Reply(ctx, event.ReplyToken, Help())
	default:
		return b.messenger.Reply(ctx, event.ReplyToken, Fallback())
	}
}

func (b *Bot) replyMyProperties(ctx context.Context, user *models.User, replyToken string) error {
	properties, err := b.propertyService.FindByOwnerID(ctx, user.ID)
	if err != nil {
		return err
	}
	if len(properties) == 0 {
		return b.messenger.Reply(ctx, replyToken,
			linebot.NewTextMessage("You have no listings yet. Send \""+CmdListProperty+"\" to create one."))
	}
	if len(properties) > b.cfg.SearchPageSize {
		properties = properties[:b.cfg.SearchPageSize]
	}
	msg, err := PropertyCarousel("Your properties", properties, false)
	if err != nil {
		return err
	}
	return b.messenger.Reply(ctx, replyToken, msg)
}

// replyMyInquiries shows landlords the inquiries made against their listings
// and tenants the inquiries they have made.
func (b *Bot) replyMyInquiries(ctx context.Context, user *models.User, replyToken string) error {
	var (
		inquiries []models.Inquiry
		err       error
	)
	if user.UserType == models.UserTypeLandlord {
		inquiries, err = b.inquiryService.FindByLandlordID(ctx, user.ID)
	} else {
		inquiries, err = b.inquiryService.FindByTenantID(ctx, user.ID)
	}
	if err != nil {
		return err
	}
	if len(inquiries) == 0 {
		return b.messenger.Reply(ctx, replyToken,
			linebot.NewTextMessage("No inquiries yet. Send \""+CmdFindHouse+"\" to start looking."))
	}
	if len(inquiries) > b.cfg.SearchPageSize {
		inquiries = inquiries[:b.cfg.SearchPageSize]
	}
	msg, err := InquiryCarousel(inquiries)
	if err != nil {
		return err
	}
	return b.messenger.Reply(ctx, replyToken, msg)
}
