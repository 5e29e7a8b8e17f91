package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

func (distributor *RedisTaskDistributor) DistributeTaskSendConfirmation(
	ctx context.Context,
	payload *PayloadOrderTask,
	opts ...asynq.Option,
) error {
	return distributor.enqueue(ctx, TaskSendConfirmation, payload, opts...)
}

func (processor *RedisTaskProcessor) ProcessTaskSendConfirmation(
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

	if processor.confirmation == nil {
		log.Warn().Str("order_code", order.Code).Msg("mailer is not configured, skipping confirmation")
		return nil
	}
	if order.Customer.Email == "" {
		log.Warn().Str("order_code", order.Code).Msg("customer left no email, skipping confirmation")
		return nil
	}

	if err = processor.confirmation.SendOrderConfirmation(ctx, *order); err != nil {
		log.Error().Err(err).Str("order_code", order.Code).Msg("failed to send order confirmation")
		return err
	}

	log.Info().Str("type", task.Type()).Str("order_code", order.Code).Msg("task processed")
	return nil
}
