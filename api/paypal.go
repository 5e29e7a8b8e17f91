package api

import (
	"net/http"

	"github.com/G-omar-H/weLovePadel-sub000/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type createPaypalOrderRequest struct {
	CartID string `json:"cart_id"`
	Items  []struct {
		VariationID string `json:"variation_id" binding:"required"`
		Quantity    int64  `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required"`
}

// createPaypalOrder opens a PayPal order for the cart total. The amount is
// always recomputed server-side from catalog prices, never trusted from the
// browser, and converted from MAD at the configured rate because PayPal does
// not settle in dirhams.
func (server *Server) createPaypalOrder(ctx *gin.Context) {
	req := new(createPaypalOrderRequest)

	if err := ctx.ShouldBindJSON(req); err != nil {
		log.Error().Err(err).Msg("failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if len(req.Items) == 0 {
		ctx.JSON(http.StatusBadRequest, errorResponse(ErrEmptyCheckoutItems))
		return
	}

	totalMAD := decimal.Zero
	for _, item := range req.Items {
		product, _, err := server.productCatalog.GetVariation(item.VariationID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, errorResponse(ErrUnknownVariation))
			return
		}
		totalMAD = totalMAD.Add(product.Price.Mul(decimal.NewFromInt(item.Quantity)))
	}

	if err := validator.ValidateAmount(totalMAD); err != nil {
		ctx.JSON(http.StatusBadRequest, failedValidationError([]*FieldViolation{fieldViolation("amount", err)}))
		return
	}

	rate := decimal.NewFromFloat(server.config.PaypalExchangeRate)
	charged := totalMAD.Mul(rate).Round(2)

	result, err := server.paypalService.CreateOrder(ctx, charged, server.config.PaypalCurrency, req.CartID)
	if err != nil {
		log.Err(err).Msg("failed to create paypal order")
		ctx.JSON(http.StatusBadGateway, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"paypal_order_id": result.ID,
		"status":          result.Status,
		"amount_mad":      totalMAD,
		"amount_charged":  charged,
		"currency":        server.config.PaypalCurrency,
	})
}

func (server *Server) capturePaypalOrder(ctx *gin.Context) {
	result, err := server.paypalService.CaptureOrder(ctx, ctx.Param("id"))
	if err != nil {
		log.Err(err).Msg("failed to capture paypal order")
		ctx.JSON(http.StatusBadGateway, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, result)
}
