package sendit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// deliveryKeyNamespace scopes idempotency keys to delivery creation.
var deliveryKeyNamespace = uuid.MustParse("8f0f2a54-1b7e-4df0-9c36-7a9b2d6f3c11")

// CreateDelivery submits one delivery-creation attempt. Business rejections
// come back as *APIError so the caller can classify stock failures; transport
// problems are already retried with backoff by the underlying client.
//
// The idempotency key is derived from the order reference: re-submitting the
// same order (same attempt payload or not) cannot double-create a delivery on
// the courier side if an earlier request succeeded out-of-band.
func (c *Client) CreateDelivery(ctx context.Context, arg CreateDeliveryRequest) (*Delivery, error) {
	token, err := c.ensureToken(ctx)
	if err != nil {
		return nil, err
	}

	var envelope createDeliveryResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("X-Idempotency-Key", IdempotencyKey(arg.Reference)).
		SetBody(arg).
		SetResult(&envelope).
		SetError(&envelope).
		Post("/deliveries")
	if err != nil {
		return nil, fmt.Errorf("failed to reach sendit deliveries: %w", err)
	}

	if !envelope.Success {
		if envelope.Message == "" && !res.IsSuccess() {
			return nil, fmt.Errorf("sendit deliveries returned status %d: %s", res.StatusCode(), res.String())
		}
		return nil, &APIError{Code: envelope.Code, Message: envelope.Message}
	}

	delivery := envelope.Data
	if delivery.TrackingCode == "" {
		delivery.TrackingCode = delivery.Code
	}

	return &delivery, nil
}

// IdempotencyKey derives a stable key from an order reference.
func IdempotencyKey(reference string) string {
	return uuid.NewSHA1(deliveryKeyNamespace, []byte(reference)).String()
}
