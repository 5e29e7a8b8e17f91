package delivery

import (
	"context"
	"errors"
	"fmt"

	"github.com/G-omar-H/weLovePadel-sub000/internal/sendit"
	"github.com/rs/zerolog/log"
)

// Courier is the slice of the Sendit client the orchestrator needs.
type Courier interface {
	CreateDelivery(ctx context.Context, arg sendit.CreateDeliveryRequest) (*sendit.Delivery, error)
}

// Orchestrator submits delivery creations and walks the fallback stock-code
// chain on stock failures. Attempts are strictly sequential: every attempt
// reserves remote inventory, so speculative parallel attempts would
// double-reserve stock.
type Orchestrator struct {
	courier Courier
}

func NewOrchestrator(courier Courier) *Orchestrator {
	return &Orchestrator{courier: courier}
}

// CreateWithFallback runs the attempt state machine over an immutable plan:
// stock failure advances to the next fallback level, any other failure is
// terminal, success is terminal and never retried.
func (o *Orchestrator) CreateWithFallback(ctx context.Context, plan *DeliveryPlan) (*DeliveryResult, error) {
	attempts := plan.AttemptChain
	if len(attempts) == 0 {
		// No stock-managed products: a single attempt with the payload as built.
		attempts = []string{plan.Request.Products}
	}

	var lastErr error
	for level, products := range attempts {
		request := plan.Request
		request.Products = products

		created, err := o.courier.CreateDelivery(ctx, request)
		if err == nil {
			if level > 0 {
				log.Warn().
					Str("reference", request.Reference).
					Int("fallback_level", level).
					Str("products", products).
					Msg("delivery created with fallback stock codes")
			}
			return &DeliveryResult{
				Success:      true,
				DeliveryCode: created.Code,
				TrackingCode: created.TrackingCode,
				UsedFallback: level > 0,
				LabelURL:     created.LabelURL,
			}, nil
		}
		lastErr = err

		var apiErr *sendit.APIError
		if !errors.As(err, &apiErr) || !apiErr.IsStockError() {
			// Transport failures were already retried inside the client;
			// anything reaching here without a stock signature is terminal.
			return nil, fmt.Errorf("delivery creation failed: %w", err)
		}

		log.Warn().
			Str("reference", request.Reference).
			Int("fallback_level", level).
			Str("products", products).
			Str("courier_error", apiErr.Message).
			Msg("courier reported stock failure")
	}

	return nil, fmt.Errorf("%w: %v", ErrStockExhausted, lastErr)
}
