package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/G-omar-H/weLovePadel-sub000/internal/district"
	"github.com/G-omar-H/weLovePadel-sub000/internal/sendit"
	"github.com/G-omar-H/weLovePadel-sub000/internal/store"
	"github.com/G-omar-H/weLovePadel-sub000/internal/worker"
	"github.com/stretchr/testify/require"
)

func checkoutBody(t *testing.T, overrides func(body map[string]any)) *bytes.Reader {
	t.Helper()

	body := map[string]any{
		"customer": map[string]any{
			"full_name": "Yassine El Amrani",
			"email":     "yassine@example.com",
			"phone":     "0612345678",
		},
		"shipping": map[string]any{
			"address": "12 Rue des Orangers",
			"city":    "Casablanca",
		},
		"items": []map[string]any{
			{"variation_id": "racket-vertex-black", "quantity": 1},
		},
		"payment": map[string]any{
			"paypal_order_id": "5O190127TN364715T",
			"capture_id":      "3C679366HH908993F",
		},
	}
	if overrides != nil {
		overrides(body)
	}

	data, err := json.Marshal(body)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func postCheckout(t *testing.T, server *Server, body *bytes.Reader) *httptest.ResponseRecorder {
	t.Helper()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/v1/checkout", body)
	request.Header.Set("Content-Type", "application/json")
	server.router.ServeHTTP(recorder, request)
	return recorder
}

func TestCheckoutCreatesDelivery(t *testing.T) {
	server, deps := newTestServer(t)
	deps.courier.responses = []scriptedResponse{
		{delivery: &sendit.Delivery{Code: "DLV-1", TrackingCode: "TRK-1"}},
	}

	recorder := postCheckout(t, server, checkoutBody(t, nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Order store.OrderRecord `json:"order"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	require.Equal(t, store.DeliveryStatusCreated, response.Order.DeliveryStatus)
	require.Equal(t, "TRK-1", response.Order.TrackingCode)
	require.Equal(t, "2890.00", response.Order.Amount.StringFixed(2))

	// City resolved through the matcher, not the catch-all.
	require.Equal(t, int64(1), response.Order.Shipping.DistrictID)

	require.Len(t, deps.courier.requests, 1)
	require.Equal(t, "PRA427:1", deps.courier.requests[0].Products)

	require.Contains(t, deps.distributor.enqueued, worker.TaskUpdateTracking)
	require.Contains(t, deps.distributor.enqueued, worker.TaskSendConfirmation)
}

func TestCheckoutStockFallback(t *testing.T) {
	server, deps := newTestServer(t)
	deps.courier.responses = []scriptedResponse{
		{err: &sendit.APIError{Code: 251, Message: "produit non disponible"}},
		{delivery: &sendit.Delivery{Code: "DLV-2", TrackingCode: "TRK-2"}},
	}

	recorder := postCheckout(t, server, checkoutBody(t, nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Order store.OrderRecord `json:"order"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	require.Equal(t, store.DeliveryStatusCreated, response.Order.DeliveryStatus)
	require.True(t, response.Order.UsedFallback)

	require.Len(t, deps.courier.requests, 2)
	require.Equal(t, "PRA427B:1", deps.courier.requests[1].Products)
}

func TestCheckoutConfirmsDespiteCourierFailure(t *testing.T) {
	server, deps := newTestServer(t)
	deps.courier.responses = []scriptedResponse{
		{err: &sendit.APIError{Code: 422, Message: "invalid district"}},
	}

	recorder := postCheckout(t, server, checkoutBody(t, nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Order store.OrderRecord `json:"order"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	require.Equal(t, store.DeliveryStatusFailed, response.Order.DeliveryStatus)
	require.NotEmpty(t, response.Order.DeliveryError)

	// The order is persisted and retrievable even though delivery failed.
	saved, err := deps.store.GetOrder(t.Context(), response.Order.Code)
	require.NoError(t, err)
	require.Equal(t, store.DeliveryStatusFailed, saved.DeliveryStatus)

	require.NotContains(t, deps.distributor.enqueued, worker.TaskUpdateTracking)
	require.Contains(t, deps.distributor.enqueued, worker.TaskNotifyOwner)
}

func TestCheckoutUnknownCityUsesCatchAll(t *testing.T) {
	server, deps := newTestServer(t)
	deps.courier.responses = []scriptedResponse{
		{delivery: &sendit.Delivery{Code: "DLV-3", TrackingCode: "TRK-3"}},
	}

	recorder := postCheckout(t, server, checkoutBody(t, func(body map[string]any) {
		body["shipping"].(map[string]any)["city"] = "Zzyzx"
	}))
	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Order store.OrderRecord `json:"order"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Equal(t, district.CatchAllDistrictID, response.Order.Shipping.DistrictID)
}

func TestCheckoutExplicitDistrictWins(t *testing.T) {
	server, deps := newTestServer(t)
	deps.courier.responses = []scriptedResponse{
		{delivery: &sendit.Delivery{Code: "DLV-4", TrackingCode: "TRK-4"}},
	}

	recorder := postCheckout(t, server, checkoutBody(t, func(body map[string]any) {
		body["shipping"].(map[string]any)["district_id"] = 3
	}))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, int64(3), deps.courier.requests[0].DistrictID)
}

// A phone the courier cannot use must not undo a completed payment: the order
// is confirmed and persisted, only the delivery is skipped.
func TestCheckoutBadPhoneSkipsDelivery(t *testing.T) {
	server, deps := newTestServer(t)

	recorder := postCheckout(t, server, checkoutBody(t, func(body map[string]any) {
		body["customer"].(map[string]any)["phone"] = "0412345678"
	}))
	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Order store.OrderRecord `json:"order"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	require.Equal(t, store.DeliveryStatusSkipped, response.Order.DeliveryStatus)
	require.Contains(t, response.Order.DeliveryError, "phone")
	require.Empty(t, response.Order.TrackingCode)

	// No network attempt was made, but the order exists and is retrievable.
	require.Empty(t, deps.courier.requests)
	saved, err := deps.store.GetOrder(t.Context(), response.Order.Code)
	require.NoError(t, err)
	require.Equal(t, store.DeliveryStatusSkipped, saved.DeliveryStatus)

	require.NotContains(t, deps.distributor.enqueued, worker.TaskUpdateTracking)
	require.Contains(t, deps.distributor.enqueued, worker.TaskSendConfirmation)
}

func TestCheckoutRejectsBadName(t *testing.T) {
	server, deps := newTestServer(t)

	recorder := postCheckout(t, server, checkoutBody(t, func(body map[string]any) {
		body["customer"].(map[string]any)["full_name"] = "x7//"
	}))
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var response FailedValidationResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Len(t, response.FieldViolations, 1)
	require.Equal(t, "customer.full_name", response.FieldViolations[0].Field)

	require.Empty(t, deps.courier.requests)
	require.Empty(t, deps.store.orders)
}

func TestCheckoutRejectsUnknownVariation(t *testing.T) {
	server, deps := newTestServer(t)

	recorder := postCheckout(t, server, checkoutBody(t, func(body map[string]any) {
		body["items"] = []map[string]any{{"variation_id": "racket-ghost", "quantity": 1}}
	}))
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.Empty(t, deps.store.orders)
}

func TestCheckoutDeletesCart(t *testing.T) {
	server, deps := newTestServer(t)
	deps.courier.responses = []scriptedResponse{
		{delivery: &sendit.Delivery{Code: "DLV-5", TrackingCode: "TRK-5"}},
	}
	require.NoError(t, deps.store.SaveCart(t.Context(), store.Cart{ID: "cart-1"}))

	recorder := postCheckout(t, server, checkoutBody(t, func(body map[string]any) {
		body["cart_id"] = "cart-1"
	}))
	require.Equal(t, http.StatusOK, recorder.Code)

	_, err := deps.store.GetCart(t.Context(), "cart-1")
	require.ErrorIs(t, err, store.ErrNotFound)
}
