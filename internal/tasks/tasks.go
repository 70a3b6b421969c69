package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/tinhour/line-rent-bot/internal/bot"
	"github.com/tinhour/line-rent-bot/internal/cache"
	"github.com/tinhour/line-rent-bot/internal/config"
	"github.com/tinhour/line-rent-bot/internal/line"
	"github.com/tinhour/line-rent-bot/internal/services"
)

// TypeNotifyPush is the task type for push notifications to LINE users.
const TypeNotifyPush = "notify:push"

// NotifyPushPayload is the serialized body of a notify:push task.
type NotifyPushPayload struct {
	Kind      string    `json:"kind"`
	InquiryID uuid.UUID `json:"inquiry_id"`
}

// Client wraps an asynq client as a bot.Notifier.
type Client struct {
	client *asynq.Client
}

// NewClient creates a task client sharing the connection settings of an
// existing Redis client.
func NewClient(rdb *redis.Client) *Client {
	return &Client{client: asynq.NewClient(cache.BrokerOpt(rdb))}
}

// NotifyPush enqueues a push notification task.
func (c *Client) NotifyPush(ctx context.Context, kind string, inquiryID uuid.UUID) error {
	payload, err := json.Marshal(NotifyPushPayload{Kind: kind, InquiryID: inquiryID})
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", TypeNotifyPush, err)
	}
	task := asynq.NewTask(TypeNotifyPush, payload)
	info, err := c.client.EnqueueContext(ctx, task, asynq.MaxRetry(3))
	if err != nil {
		return fmt.Errorf("failed to enqueue %s task: %w", TypeNotifyPush, err)
	}
	log.Printf("enqueued task id=%s type=%s kind=%s inquiry=%s", info.ID, TypeNotifyPush, kind, inquiryID)
	return nil
}

// Close releases the underlying asynq client.
func (c *Client) Close() error {
	return c.client.Close()
}

// TaskProcessor handles queued notification tasks.
type TaskProcessor struct {
	messenger      line.Messenger
	inquiryService services.IInquiryService
	cfg            *config.Config
}

// NewTaskProcessor creates a TaskProcessor.
func NewTaskProcessor(messenger line.Messenger, inquiryService services.IInquiryService, cfg *config.Config) *TaskProcessor {
	return &TaskProcessor{messenger: messenger, inquiryService: inquiryService, cfg: cfg}
}

// HandleNotifyPushTask loads the inquiry the task refers to, renders the
// notification for its kind and pushes it to the right party.
func (p *TaskProcessor) HandleNotifyPushTask(ctx context.Context, t *asynq.Task) error {
	var payload NotifyPushPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal %s payload: %w: %w", TypeNotifyPush, err, asynq.SkipRetry)
	}

	inquiry, err := p.inquiryService.FindByID(ctx, payload.InquiryID)
	if err != nil {
		return fmt.Errorf("failed to load inquiry %s for %s notification: %w", payload.InquiryID, payload.Kind, err)
	}

	fee := inquiry.Property.Price * p.cfg.DepositRate

	switch payload.Kind {
	case bot.KindInquiryReceived:
		msg, err := bot.OwnerInterestNotice(inquiry, fee)
		if err != nil {
			return err
		}
		return p.messenger.Push(ctx, inquiry.Property.Owner.LineUserID, msg)
	case bot.KindDepositPaid:
		msg, err := bot.DepositOwnerNotice(inquiry, fee)
		if err != nil {
			return err
		}
		return p.messenger.Push(ctx, inquiry.Property.Owner.LineUserID, msg)
	case bot.KindCommissionPaid:
		return p.messenger.Push(ctx, inquiry.Tenant.LineUserID, bot.CommissionTenantNotice(inquiry))
	default:
		return fmt.Errorf("unknown notification kind %q: %w", payload.Kind, asynq.SkipRetry)
	}
}

// SetupServer builds the asynq server and mux for the worker run mode.
func SetupServer(rdb *redis.Client, processor *TaskProcessor) (*asynq.Server, *asynq.ServeMux) {
	srv := asynq.NewServer(
		cache.BrokerOpt(rdb),
		asynq.Config{
			Concurrency: 10,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Printf("task %s failed: %v", task.Type(), err)
			}),
		},
	)
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeNotifyPush, processor.HandleNotifyPushTask)
	return srv, mux
}
