package worker

import (
	"context"

	"github.com/G-omar-H/weLovePadel-sub000/internal/store"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

/*
 This file contains code that will pick up the tasks from the Redis queue and process them.
*/

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
)

// TrackingUpdater forwards the courier tracking number to the payment provider.
type TrackingUpdater interface {
	AddTrackingNumber(ctx context.Context, orderID, captureID, trackingNumber, carrierName string) error
}

// ConfirmationSender emails the customer their order confirmation.
type ConfirmationSender interface {
	SendOrderConfirmation(ctx context.Context, order store.OrderRecord) error
}

// OwnerNotifier pings the shop owner about a new order.
type OwnerNotifier interface {
	NotifyNewOrder(order store.OrderRecord) error
}

// PurchaseReporter emits the marketing purchase event.
type PurchaseReporter interface {
	SendPurchaseEvent(ctx context.Context, order store.OrderRecord) error
}

type RedisTaskProcessor struct {
	server       *asynq.Server
	store        store.Store
	tracking     TrackingUpdater
	confirmation ConfirmationSender
	owner        OwnerNotifier
	analytics    PurchaseReporter
}

func NewRedisTaskProcessor(
	redisOpt asynq.RedisClientOpt,
	orderStore store.Store,
	tracking TrackingUpdater,
	confirmation ConfirmationSender,
	owner OwnerNotifier,
	analytics PurchaseReporter,
) *RedisTaskProcessor {
	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Queues: map[string]int{
				QueueCritical: 10,
				QueueDefault:  5,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().Err(err).Str("type", task.Type()).
					Bytes("payload", task.Payload()).Msg("process task failed")
			}),
			Logger: NewLogger(),
		},
	)

	return &RedisTaskProcessor{
		server:       server,
		store:        orderStore,
		tracking:     tracking,
		confirmation: confirmation,
		owner:        owner,
		analytics:    analytics,
	}
}

// Start registers the task handlers for the mux, attaches the mux to the asynq server, and starts the server.
func (processor *RedisTaskProcessor) Start() error {
	mux := asynq.NewServeMux()

	mux.HandleFunc(TaskUpdateTracking, processor.ProcessTaskUpdateTracking)
	mux.HandleFunc(TaskSendConfirmation, processor.ProcessTaskSendConfirmation)
	mux.HandleFunc(TaskNotifyOwner, processor.ProcessTaskNotifyOwner)
	mux.HandleFunc(TaskReportPurchaseEvent, processor.ProcessTaskReportPurchaseEvent)

	return processor.server.Start(mux)
}

// Shutdown stops the asynq server gracefully.
func (processor *RedisTaskProcessor) Shutdown() {
	processor.server.Shutdown()
}
