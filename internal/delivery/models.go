package delivery

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Order is the input contract assembled by checkout. The pipeline treats it as
// opaque: it does not persist orders and does not own their lifecycle.
type Order struct {
	Code     string
	Customer CustomerInfo
	Shipping ShippingInfo
	Items    []LineItem
	Amount   decimal.Decimal
	Payment  PaymentInfo
}

type CustomerInfo struct {
	FullName string
	Email    string
	Phone    string
}

// ShippingInfo is finalized once before submission. DistrictID must already be
// resolved upstream (explicit selection, matcher, or the catch-all district).
type ShippingInfo struct {
	Address    string
	Landmark   string
	DistrictID int64
	PostalCode string
	Country    string
	Notes      string
}

type LineItem struct {
	ProductName string
	VariationID string
	Size        string
	Quantity    int64
	UnitPrice   decimal.Decimal
}

// PaymentInfo is capture context from the payment provider. It rides along for
// the courier comment and the tracking update, it is not part of the shipping
// schema.
type PaymentInfo struct {
	Provider      string
	OrderID       string
	CaptureID     string
	PayerID       string
	FundingSource string
}

// DeliveryResult is the terminal outcome of a successful creation. Once
// obtained it is never retried.
type DeliveryResult struct {
	Success      bool   `json:"success"`
	DeliveryCode string `json:"delivery_code"`
	TrackingCode string `json:"tracking_code"`
	UsedFallback bool   `json:"used_fallback"`
	LabelURL     string `json:"label_url,omitempty"`
}

// ValidationError is a local, pre-network rejection of the order. Never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func validationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidationError reports whether err is a field-level validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrStockExhausted marks a delivery that failed on stock at every fallback level.
var ErrStockExhausted = errors.New("all fallback stock codes exhausted")
