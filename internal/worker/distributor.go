package worker

import (
	"context"

	"github.com/hibiken/asynq"
)

const (
	TaskUpdateTracking       = "delivery:update_tracking"
	TaskSendConfirmation     = "order:send_confirmation"
	TaskNotifyOwner          = "order:notify_owner"
	TaskReportPurchaseEvent  = "analytics:purchase"
)

/*
This file will contain the codes to create tasks and distributes them to the Redis queue.
*/

type TaskDistributor interface {
	DistributeTaskUpdateTracking(ctx context.Context, payload *PayloadOrderTask, opts ...asynq.Option) error
	DistributeTaskSendConfirmation(ctx context.Context, payload *PayloadOrderTask, opts ...asynq.Option) error
	DistributeTaskNotifyOwner(ctx context.Context, payload *PayloadOrderTask, opts ...asynq.Option) error
	DistributeTaskReportPurchaseEvent(ctx context.Context, payload *PayloadOrderTask, opts ...asynq.Option) error
}

type RedisTaskDistributor struct {
	client *asynq.Client // client sends tasks to redis queue.
}

func NewTaskDistributor(redisOpt asynq.RedisClientOpt) TaskDistributor {
	client := asynq.NewClient(redisOpt)

	return &RedisTaskDistributor{
		client: client,
	}
}
