package bot

import (
	"context"
	"fmt"
	"log"

	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// handleFollow registers the new follower from their platform profile and
// greets them.
func (b *Bot) handleFollow(ctx context.Context, event *linebot.Event) error {
	if event.Source == nil || event.Source.UserID == "" {
		return fmt.Errorf("follow event has no user source")
	}

	profile, err := b.messenger.Profile(ctx, event.Source.UserID)
	if err != nil {
		return fmt.Errorf("failed to fetch follower profile: %w", err)
	}

	user, err := b.userService.CreateOrUpdate(ctx, profile.UserID, profile.DisplayName)
	if err != nil {
		return fmt.Errorf("failed to register follower %s: %w", profile.UserID, err)
	}
	log.Printf("user %s (%s) followed", user.LineUserID, user.DisplayName)

	return b.messenger.Reply(ctx, event.ReplyToken, Welcome(user.DisplayName))
}
