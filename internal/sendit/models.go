package sendit

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Stock-related business error codes. The API is inconsistent about whether a
// stock problem surfaces as a code or only as message text, so classification
// checks both signals.
const (
	CodeProductNotInStock    = 251
	CodeInsufficientQuantity = 252
)

var stockErrorKeywords = []string{"product", "produit", "stock", "quantit"}

// APIError is a business-level rejection from the Sendit API.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return "sendit: " + e.Message
}

// IsStockError reports whether the rejection means the requested stock codes
// cannot be served, which is the trigger for the fallback product chain.
func (e *APIError) IsStockError() bool {
	if e.Code == CodeProductNotInStock || e.Code == CodeInsufficientQuantity {
		return true
	}
	message := strings.ToLower(e.Message)
	for _, keyword := range stockErrorKeywords {
		if strings.Contains(message, keyword) {
			return true
		}
	}
	return false
}

type loginRequest struct {
	PublicKey string `json:"public_key"`
	SecretKey string `json:"secret_key"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Token string `json:"token"`
	} `json:"data"`
}

// District is one destination zone as Sendit returns it.
type District struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	ArabicName string          `json:"ar_name"`
	City       string          `json:"ville"`
	Price      decimal.Decimal `json:"prix"`
	Delay      string          `json:"delai"`
	Pickup     bool            `json:"pickup"`
}

type listDistrictsResponse struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Districts   []District `json:"data"`
		CurrentPage int        `json:"current_page"`
		LastPage    int        `json:"last_page"`
	} `json:"data"`
}

// CreateDeliveryRequest is the courier's delivery-creation schema.
type CreateDeliveryRequest struct {
	PickupDistrictID  int64  `json:"pickup_district_id"`
	DistrictID        int64  `json:"district_id"`
	Name              string `json:"name"`
	Amount            string `json:"amount"`
	Address           string `json:"address"`
	Phone             string `json:"phone"`
	Comment           string `json:"comment"`
	Reference         string `json:"reference"`
	AllowOpen         bool   `json:"allow_open"`
	AllowTry          bool   `json:"allow_try"`
	ProductsFromStock int    `json:"products_from_stock"`
	// Products aggregates stock codes as "CODE:QTY,CODE:QTY".
	Products           string `json:"products"`
	PackagingID        int64  `json:"packaging_id"`
	OptionExchange     int    `json:"option_exchange"`
	DeliveryExchangeID string `json:"delivery_exchange_id"`
}

// Delivery is the courier's view of a created delivery.
type Delivery struct {
	Code         string `json:"code"`
	TrackingCode string `json:"tracking_code"`
	LabelURL     string `json:"label"`
}

type createDeliveryResponse struct {
	Success bool     `json:"success"`
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Data    Delivery `json:"data"`
}
