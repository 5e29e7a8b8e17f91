package api

import (
	"net/http"
	"time"

	"github.com/G-omar-H/weLovePadel-sub000/internal/delivery"
	"github.com/G-omar-H/weLovePadel-sub000/internal/district"
	"github.com/G-omar-H/weLovePadel-sub000/internal/store"
	"github.com/G-omar-H/weLovePadel-sub000/internal/util"
	"github.com/G-omar-H/weLovePadel-sub000/internal/validator"
	"github.com/G-omar-H/weLovePadel-sub000/internal/worker"
	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type checkoutRequest struct {
	CartID   string `json:"cart_id"`
	Customer struct {
		FullName string `json:"full_name" binding:"required"`
		Email    string `json:"email"`
		Phone    string `json:"phone" binding:"required"`
	} `json:"customer" binding:"required"`
	Shipping struct {
		Address    string `json:"address" binding:"required"`
		Landmark   string `json:"landmark"`
		City       string `json:"city"`
		DistrictID int64  `json:"district_id"`
		PostalCode string `json:"postal_code"`
		Notes      string `json:"notes"`
	} `json:"shipping" binding:"required"`
	Items []struct {
		VariationID string `json:"variation_id" binding:"required"`
		Size        string `json:"size"`
		Quantity    int64  `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required"`
	Payment struct {
		PaypalOrderID string `json:"paypal_order_id" binding:"required"`
		CaptureID     string `json:"capture_id"`
		PayerID       string `json:"payer_id"`
		FundingSource string `json:"funding_source"`
	} `json:"payment" binding:"required"`
}

// validateCheckoutRequest covers only fields whose rejection is safe before
// payment context is considered. The phone is deliberately absent: the request
// carries a completed capture, so a phone the courier cannot use downgrades
// the delivery to skipped inside the builder instead of rejecting the order.
func validateCheckoutRequest(req *checkoutRequest) (violations []*FieldViolation) {
	if err := validator.ValidateFullName(req.Customer.FullName); err != nil {
		violations = append(violations, fieldViolation("customer.full_name", err))
	}
	if req.Customer.Email != "" {
		if err := validator.ValidateEmail(req.Customer.Email); err != nil {
			violations = append(violations, fieldViolation("customer.email", err))
		}
	}

	return violations
}

// checkout confirms a paid order and attempts its courier delivery. Payment is
// authoritative: once the PayPal capture is presented here, the order is
// persisted and confirmed no matter how the delivery attempt ends.
func (server *Server) checkout(ctx *gin.Context) {
	req := new(checkoutRequest)

	if err := ctx.ShouldBindJSON(req); err != nil {
		log.Error().Err(err).Msg("failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if len(req.Items) == 0 {
		ctx.JSON(http.StatusBadRequest, errorResponse(ErrEmptyCheckoutItems))
		return
	}
	if violations := validateCheckoutRequest(req); violations != nil {
		ctx.JSON(http.StatusBadRequest, failedValidationError(violations))
		return
	}

	// Prices always come from the catalog, never from the request.
	items := make([]delivery.LineItem, 0, len(req.Items))
	amount := decimal.Zero
	for _, item := range req.Items {
		product, variation, err := server.productCatalog.GetVariation(item.VariationID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, errorResponse(ErrUnknownVariation))
			return
		}

		items = append(items, delivery.LineItem{
			ProductName: product.Name,
			VariationID: variation.ID,
			Size:        item.Size,
			Quantity:    item.Quantity,
			UnitPrice:   product.Price,
		})
		amount = amount.Add(product.Price.Mul(decimal.NewFromInt(item.Quantity)))
	}

	order := delivery.Order{
		Code: util.GenerateOrderCode(),
		Customer: delivery.CustomerInfo{
			FullName: req.Customer.FullName,
			Email:    req.Customer.Email,
			Phone:    req.Customer.Phone,
		},
		Shipping: delivery.ShippingInfo{
			Address:    req.Shipping.Address,
			Landmark:   req.Shipping.Landmark,
			DistrictID: server.resolveShippingDistrict(req.Shipping.DistrictID, req.Shipping.City),
			PostalCode: req.Shipping.PostalCode,
			Country:    "MA",
			Notes:      req.Shipping.Notes,
		},
		Items:  items,
		Amount: amount,
		Payment: delivery.PaymentInfo{
			Provider:      "paypal",
			OrderID:       req.Payment.PaypalOrderID,
			CaptureID:     req.Payment.CaptureID,
			PayerID:       req.Payment.PayerID,
			FundingSource: req.Payment.FundingSource,
		},
	}

	record := store.OrderRecord{
		Code:           order.Code,
		CreatedAt:      time.Now(),
		Customer:       order.Customer,
		Shipping:       order.Shipping,
		Items:          order.Items,
		Amount:         order.Amount,
		Payment:        order.Payment,
		DeliveryStatus: store.DeliveryStatusSkipped,
	}

	if err := server.dbStore.SaveOrder(ctx, record); err != nil {
		log.Err(err).Str("order_code", record.Code).Msg("failed to save order")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	result := server.attemptDelivery(ctx, order, &record)

	if result != nil && result.Success {
		if err := server.dbStore.AttachTracking(ctx, record.Code, result); err != nil {
			log.Err(err).Str("order_code", record.Code).Msg("failed to attach tracking to order")
		}
	} else if err := server.dbStore.SaveOrder(ctx, record); err != nil {
		log.Err(err).Str("order_code", record.Code).Msg("failed to update order after delivery attempt")
	}

	server.enqueueOrderTasks(ctx, record.Code, result != nil && result.Success)

	if req.CartID != "" {
		if err := server.dbStore.DeleteCart(ctx, req.CartID); err != nil {
			log.Warn().Err(err).Str("cart_id", req.CartID).Msg("failed to delete cart after checkout")
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"order":    record,
		"delivery": result,
	})
}

// resolveShippingDistrict picks the courier destination zone: an explicit id
// wins when it exists in the catalog, then the fuzzy matcher on the typed
// city, then the catch-all zone so a bad city never blocks a paid order.
func (server *Server) resolveShippingDistrict(districtID int64, city string) int64 {
	if districtID > 0 {
		if _, ok := server.districtCatalog.Get(districtID); ok {
			return districtID
		}
		log.Warn().Int64("district_id", districtID).Msg("unknown district id, falling back to city resolution")
	}

	if city != "" {
		if match, ok := district.Resolve(city, server.districtCatalog.Snapshot()); ok {
			return match.District.ID
		}
		log.Warn().Str("city", city).Msg("city did not resolve to a district, using catch-all")
	}

	return district.CatchAllDistrictID
}

// attemptDelivery runs the delivery pipeline and records its outcome on the
// order record. It never returns an error to the caller: delivery failures are
// recorded, not propagated.
func (server *Server) attemptDelivery(ctx *gin.Context, order delivery.Order, record *store.OrderRecord) *delivery.DeliveryResult {
	plan, err := delivery.BuildDeliveryPlan(order, server.builderConfig)
	if err != nil {
		record.DeliveryStatus = store.DeliveryStatusSkipped
		record.DeliveryError = err.Error()
		log.Warn().Err(err).Str("order_code", order.Code).Msg("delivery payload rejected, order confirmed without delivery")
		return nil
	}

	result, err := server.orchestrator.CreateWithFallback(ctx, plan)
	if err != nil {
		record.DeliveryStatus = store.DeliveryStatusFailed
		record.DeliveryError = err.Error()
		log.Error().Err(err).Str("order_code", order.Code).Msg("delivery creation failed, order confirmed without delivery")
		return nil
	}

	record.DeliveryStatus = store.DeliveryStatusCreated
	record.DeliveryCode = result.DeliveryCode
	record.TrackingCode = result.TrackingCode
	record.UsedFallback = result.UsedFallback
	return result
}

// enqueueOrderTasks hands post-confirmation side effects to the background
// worker. All enqueues are best effort: a full Redis queue must not undo a
// confirmed order.
func (server *Server) enqueueOrderTasks(ctx *gin.Context, orderCode string, deliveryCreated bool) {
	payload := &worker.PayloadOrderTask{OrderCode: orderCode}

	if deliveryCreated {
		err := server.taskDistributor.DistributeTaskUpdateTracking(ctx, payload,
			asynq.MaxRetry(10),
			asynq.ProcessIn(5*time.Second),
			asynq.Queue(worker.QueueCritical),
		)
		if err != nil {
			log.Err(err).Str("order_code", orderCode).Msg("failed to enqueue tracking update task")
		}
	}

	if err := server.taskDistributor.DistributeTaskSendConfirmation(ctx, payload, asynq.Queue(worker.QueueDefault)); err != nil {
		log.Err(err).Str("order_code", orderCode).Msg("failed to enqueue confirmation email task")
	}
	if err := server.taskDistributor.DistributeTaskNotifyOwner(ctx, payload, asynq.Queue(worker.QueueDefault)); err != nil {
		log.Err(err).Str("order_code", orderCode).Msg("failed to enqueue owner notification task")
	}
	if err := server.taskDistributor.DistributeTaskReportPurchaseEvent(ctx, payload, asynq.Queue(worker.QueueDefault)); err != nil {
		log.Err(err).Str("order_code", orderCode).Msg("failed to enqueue purchase event task")
	}
}
