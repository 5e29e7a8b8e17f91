package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// PayloadOrderTask carries the order code; processors reload the record so a
// delayed task always works on current data.
type PayloadOrderTask struct {
	OrderCode string `json:"order_code"`
}

const senditCarrierName = "Sendit"

func (distributor *RedisTaskDistributor) DistributeTaskUpdateTracking(
	ctx context.Context,
	payload *PayloadOrderTask,
	opts ...asynq.Option,
) error {
	return distributor.enqueue(ctx, TaskUpdateTracking, payload, opts...)
}

func (distributor *RedisTaskDistributor) enqueue(ctx context.Context, taskType string, payload *PayloadOrderTask, opts ...asynq.Option) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}

	task := asynq.NewTask(taskType, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	log.Info().Str("type", task.Type()).Bytes("payload", task.Payload()).Str("queue", info.Queue).Int("max_retry", info.MaxRetry).Msg("task enqueued")

	return nil
}

// ProcessTaskUpdateTracking forwards the courier tracking number to PayPal.
// Best-effort by contract: an exhausted retry here never touches the order.
func (processor *RedisTaskProcessor) ProcessTaskUpdateTracking(
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

	if order.TrackingCode == "" || order.Payment.OrderID == "" {
		log.Warn().Str("order_code", order.Code).Msg("nothing to forward, skipping tracking update")
		return nil
	}

	err = processor.tracking.AddTrackingNumber(ctx, order.Payment.OrderID, order.Payment.CaptureID, order.TrackingCode, senditCarrierName)
	if err != nil {
		log.Error().Err(err).Str("order_code", order.Code).Msg("failed to update paypal tracking")
		return err
	}

	log.Info().Str("type", task.Type()).Str("order_code", order.Code).
		Str("tracking_code", order.TrackingCode).Msg("task processed")

	return nil
}
