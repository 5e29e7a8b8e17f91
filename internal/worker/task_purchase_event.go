package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

func (distributor *RedisTaskDistributor) DistributeTaskReportPurchaseEvent(
	ctx context.Context,
	payload *PayloadOrderTask,
	opts ...asynq.Option,
) error {
	return distributor.enqueue(ctx, TaskReportPurchaseEvent, payload, opts...)
}

func (processor *RedisTaskProcessor) ProcessTaskReportPurchaseEvent(
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

	if processor.analytics == nil {
		log.Warn().Str("order_code", order.Code).Msg("analytics reporter is not configured, skipping")
		return nil
	}

	if err = processor.analytics.SendPurchaseEvent(ctx, *order); err != nil {
		log.Error().Err(err).Str("order_code", order.Code).Msg("failed to report purchase event")
		return err
	}

	log.Info().Str("type", task.Type()).Str("order_code", order.Code).Msg("task processed")
	return nil
}
