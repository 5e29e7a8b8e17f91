package paypal

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

type CreateOrderResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// CreateOrder opens a PayPal checkout order for the given amount.
func (c *Client) CreateOrder(ctx context.Context, amount decimal.Decimal, currency, reference string) (*CreateOrderResult, error) {
	token, err := c.ensureToken(ctx)
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"intent": "CAPTURE",
		"purchase_units": []map[string]any{
			{
				"reference_id": reference,
				"amount": map[string]string{
					"currency_code": currency,
					"value":         amount.StringFixed(2),
				},
			},
		},
	}

	var result CreateOrderResult
	res, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(body).
		SetResult(&result).
		Post("/v2/checkout/orders")
	if err != nil {
		return nil, fmt.Errorf("failed to create paypal order: %w", err)
	}
	if !res.IsSuccess() {
		return nil, fmt.Errorf("paypal create order returned status %d: %s", res.StatusCode(), res.String())
	}

	return &result, nil
}

// CaptureResult is the payment outcome handed to the delivery pipeline as
// context: payer id, capture (transaction) id and funding source.
type CaptureResult struct {
	OrderID       string `json:"order_id"`
	Status        string `json:"status"`
	PayerID       string `json:"payer_id"`
	CaptureID     string `json:"capture_id"`
	FundingSource string `json:"funding_source"`
}

type captureResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Payer  struct {
		PayerID string `json:"payer_id"`
	} `json:"payer"`
	PaymentSource map[string]json.RawMessage `json:"payment_source"`
	PurchaseUnits []struct {
		Payments struct {
			Captures []struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"captures"`
		} `json:"payments"`
	} `json:"purchase_units"`
}

// CaptureOrder captures an approved PayPal order.
func (c *Client) CaptureOrder(ctx context.Context, orderID string) (*CaptureResult, error) {
	token, err := c.ensureToken(ctx)
	if err != nil {
		return nil, err
	}

	var response captureResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetResult(&response).
		Post(fmt.Sprintf("/v2/checkout/orders/%s/capture", orderID))
	if err != nil {
		return nil, fmt.Errorf("failed to capture paypal order: %w", err)
	}
	if !res.IsSuccess() {
		return nil, fmt.Errorf("paypal capture returned status %d: %s", res.StatusCode(), res.String())
	}
	if response.Status != "COMPLETED" {
		return nil, fmt.Errorf("paypal capture not completed: status %s", response.Status)
	}

	result := &CaptureResult{
		OrderID: response.ID,
		Status:  response.Status,
		PayerID: response.Payer.PayerID,
	}
	if len(response.PurchaseUnits) > 0 && len(response.PurchaseUnits[0].Payments.Captures) > 0 {
		result.CaptureID = response.PurchaseUnits[0].Payments.Captures[0].ID
	}
	for source := range response.PaymentSource {
		result.FundingSource = source
		break
	}

	return result, nil
}
