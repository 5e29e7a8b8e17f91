package delivery

import (
	"fmt"
	"strings"

	"github.com/G-omar-H/weLovePadel-sub000/internal/sendit"
	"github.com/G-omar-H/weLovePadel-sub000/internal/util"
)

// BuilderConfig is the static configuration the payload builder depends on.
type BuilderConfig struct {
	// PickupDistrictID is the warehouse/origin district.
	PickupDistrictID int64
	// StockDelivery enables courier-managed inventory: the payload carries
	// stock codes and the orchestrator may walk the fallback chain.
	StockDelivery bool
	CodeMap       CodeMap
}

// DeliveryPlan is everything one order needs to reach the courier: the base
// payload plus the full fallback chain, computed up front so the orchestrator
// never rebuilds state between attempts.
type DeliveryPlan struct {
	Request      sendit.CreateDeliveryRequest
	AttemptChain []string
}

// BuildDeliveryPlan maps an order into the courier's delivery-creation schema.
// Pure given the order and config; every validation failure is a distinct
// *ValidationError raised before any network call.
func BuildDeliveryPlan(order Order, cfg BuilderConfig) (*DeliveryPlan, error) {
	if order.Shipping.DistrictID <= 0 {
		return nil, validationError("district_id", "must be a positive district id, resolve the city first")
	}
	if cfg.PickupDistrictID <= 0 {
		return nil, validationError("pickup_district_id", "pickup district is not configured")
	}

	name := strings.TrimSpace(order.Customer.FullName)
	if name == "" {
		return nil, validationError("name", "must not be empty")
	}

	phone, err := util.NormalizeMoroccanPhoneNumber(order.Customer.Phone)
	if err != nil {
		return nil, validationError("phone", err.Error())
	}

	address := strings.TrimSpace(order.Shipping.Address)
	if address == "" {
		return nil, validationError("address", "must not be empty")
	}

	if order.Amount.IsNegative() {
		return nil, validationError("amount", "must not be negative")
	}

	request := sendit.CreateDeliveryRequest{
		PickupDistrictID: cfg.PickupDistrictID,
		DistrictID:       order.Shipping.DistrictID,
		Name:             name,
		Amount:           order.Amount.StringFixed(2),
		Address:          composeAddress(order.Shipping),
		Phone:            phone,
		Comment:          composeComment(order),
		Reference:        order.Code,
		AllowOpen:        true,
		PackagingID:      1,
	}

	plan := &DeliveryPlan{Request: request}

	if cfg.StockDelivery {
		plan.AttemptChain = BuildAttemptChain(order.Items, cfg.CodeMap)
		if len(plan.AttemptChain) > 0 {
			plan.Request.ProductsFromStock = 1
			plan.Request.Products = plan.AttemptChain[0]
		}
	}

	return plan, nil
}

// composeAddress concatenates street, optional parenthesized landmark and
// optional postal code into the courier's single address field.
func composeAddress(shipping ShippingInfo) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(shipping.Address))

	if landmark := strings.TrimSpace(shipping.Landmark); landmark != "" {
		sb.WriteString(" (")
		sb.WriteString(landmark)
		sb.WriteString(")")
	}
	if postal := strings.TrimSpace(shipping.PostalCode); postal != "" {
		sb.WriteString(" - ")
		sb.WriteString(postal)
	}

	return sb.String()
}

// composeComment builds the free-text item summary for the courier's warehouse
// staff. Informational only, nothing parses it downstream.
func composeComment(order Order) string {
	parts := make([]string, 0, len(order.Items)+1)
	for _, item := range order.Items {
		part := fmt.Sprintf("%dx %s", item.Quantity, item.ProductName)

		var details []string
		if item.VariationID != "" {
			details = append(details, item.VariationID)
		}
		if item.Size != "" {
			details = append(details, "taille "+item.Size)
		}
		if len(details) > 0 {
			part += " (" + strings.Join(details, ", ") + ")"
		}
		parts = append(parts, part)
	}

	if notes := strings.TrimSpace(order.Shipping.Notes); notes != "" {
		parts = append(parts, "Note: "+notes)
	}

	return strings.Join(parts, " | ")
}
