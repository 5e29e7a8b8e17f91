package paypal

import (
	"context"
	"fmt"
)

// AddTrackingNumber attaches the courier tracking number to a captured order.
// Best-effort by contract: callers run it from a background task and a failure
// here never rolls back the order.
func (c *Client) AddTrackingNumber(ctx context.Context, orderID, captureID, trackingNumber, carrierName string) error {
	token, err := c.ensureToken(ctx)
	if err != nil {
		return err
	}

	body := map[string]any{
		"tracking_number":    trackingNumber,
		"carrier":            "OTHER",
		"carrier_name_other": carrierName,
		"capture_id":         captureID,
		"notify_payer":       false,
	}

	res, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(body).
		Post(fmt.Sprintf("/v2/checkout/orders/%s/track", orderID))
	if err != nil {
		return fmt.Errorf("failed to add paypal tracking: %w", err)
	}
	if !res.IsSuccess() {
		return fmt.Errorf("paypal tracking returned status %d: %s", res.StatusCode(), res.String())
	}

	return nil
}
