package store

import (
	"context"
	"errors"
	"time"

	"github.com/G-omar-H/weLovePadel-sub000/internal/delivery"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Delivery outcome recorded against an order. Payment is authoritative: an
// order is confirmed regardless of how its delivery attempt ended.
const (
	DeliveryStatusCreated = "created"
	DeliveryStatusFailed  = "failed"
	DeliveryStatusSkipped = "skipped"
)

// OrderRecord is the persisted view of a confirmed order.
type OrderRecord struct {
	Code           string                `json:"code"`
	CreatedAt      time.Time             `json:"created_at"`
	Customer       delivery.CustomerInfo `json:"customer"`
	Shipping       delivery.ShippingInfo `json:"shipping"`
	Items          []delivery.LineItem   `json:"items"`
	Amount         decimal.Decimal       `json:"amount"`
	Payment        delivery.PaymentInfo  `json:"payment"`
	DeliveryStatus string                `json:"delivery_status"`
	DeliveryCode   string                `json:"delivery_code,omitempty"`
	TrackingCode   string                `json:"tracking_code,omitempty"`
	UsedFallback   bool                  `json:"used_fallback,omitempty"`
	DeliveryError  string                `json:"delivery_error,omitempty"`
}

// Cart is a guest cart keyed by the identifier handed to the browser.
type Cart struct {
	ID        string     `json:"id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartItem struct {
	VariationID string `json:"variation_id"`
	Size        string `json:"size,omitempty"`
	Quantity    int64  `json:"quantity"`
}

// Store persists orders and carts for the storefront.
type Store interface {
	SaveOrder(ctx context.Context, order OrderRecord) error
	GetOrder(ctx context.Context, code string) (*OrderRecord, error)
	ListOrders(ctx context.Context) ([]OrderRecord, error)
	AttachTracking(ctx context.Context, code string, result *delivery.DeliveryResult) error
	SaveCart(ctx context.Context, cart Cart) error
	GetCart(ctx context.Context, id string) (*Cart, error)
	DeleteCart(ctx context.Context, id string) error
}
