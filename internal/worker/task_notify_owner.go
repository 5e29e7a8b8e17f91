package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

func (distributor *RedisTaskDistributor) DistributeTaskNotifyOwner(
	ctx context.Context,
	payload *PayloadOrderTask,
	opts ...asynq.Option,
) error {
	return distributor.enqueue(ctx, TaskNotifyOwner, payload, opts...)
}

func (processor *RedisTaskProcessor) ProcessTaskNotifyOwner(
	ctx context.Context,
	task *asynq.Task,
) error {
	var payload PayloadOrderTask
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	order, err := processor.store.GetOrder(ctx, payload.OrderCode)
	if err != nil {
		return err
	}

	if processor.owner == nil {
		log.Warn().Str("order_code", order.Code).Msg("owner notifier is not configured, skipping")
		return nil
	}

	if err = processor.owner.NotifyNewOrder(*order); err != nil {
		log.Error().Err(err).Str("order_code", order.Code).Msg("failed to notify owner")
		return err
	}

	log.Info().Str("type", task.Type()).Str("order_code", order.Code).Msg("task processed")
	return nil
}
