package analytics

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/G-omar-H/weLovePadel-sub000/internal/store"
	"github.com/G-omar-H/weLovePadel-sub000/internal/util"
	"resty.dev/v3"
)

const metaGraphBaseURL = "https://graph.facebook.com/v19.0"

// MetaPixel sends server-side Purchase events to the Meta Conversions API.
type MetaPixel struct {
	http        *resty.Client
	pixelID     string
	accessToken string
}

func NewMetaPixel(pixelID, accessToken string) *MetaPixel {
	return &MetaPixel{
		http:        resty.New().SetBaseURL(metaGraphBaseURL).SetTimeout(10 * time.Second),
		pixelID:     pixelID,
		accessToken: accessToken,
	}
}

func (m *MetaPixel) Close() error {
	return m.http.Close()
}

// SendPurchaseEvent reports a confirmed order. Customer identifiers are
// sha256-hashed as the Conversions API requires.
func (m *MetaPixel) SendPurchaseEvent(ctx context.Context, order store.OrderRecord) error {
	userData := map[string]any{}
	if order.Customer.Email != "" {
		userData["em"] = []string{hashIdentifier(order.Customer.Email)}
	}
	if phone, err := util.NormalizeMoroccanPhoneNumber(order.Customer.Phone); err == nil {
		userData["ph"] = []string{hashIdentifier("212" + phone[1:])}
	}

	body := map[string]any{
		"data": []map[string]any{
			{
				"event_name":    "Purchase",
				"event_time":    time.Now().Unix(),
				"event_id":      order.Code,
				"action_source": "website",
				"user_data":     userData,
				"custom_data": map[string]any{
					"currency": "MAD",
					"value":    order.Amount.InexactFloat64(),
					"order_id": order.Code,
				},
			},
		},
	}

	res, err := m.http.R().
		SetContext(ctx).
		SetQueryParam("access_token", m.accessToken).
		SetBody(body).
		Post(fmt.Sprintf("/%s/events", m.pixelID))
	if err != nil {
		return fmt.Errorf("failed to reach meta conversions api: %w", err)
	}
	if !res.IsSuccess() {
		return fmt.Errorf("meta conversions api returned status %d: %s", res.StatusCode(), res.String())
	}

	return nil
}

func hashIdentifier(value string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(value))))
	return hex.EncodeToString(sum[:])
}
