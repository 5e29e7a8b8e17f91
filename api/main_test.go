package api

import (
	"context"
	"os"
	"testing"

	"github.com/G-omar-H/weLovePadel-sub000/internal/catalog"
	"github.com/G-omar-H/weLovePadel-sub000/internal/delivery"
	"github.com/G-omar-H/weLovePadel-sub000/internal/district"
	"github.com/G-omar-H/weLovePadel-sub000/internal/sendit"
	"github.com/G-omar-H/weLovePadel-sub000/internal/store"
	"github.com/G-omar-H/weLovePadel-sub000/internal/util"
	"github.com/G-omar-H/weLovePadel-sub000/internal/worker"
	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// memoryStore is an in-process store.Store for handler tests.
type memoryStore struct {
	orders map[string]store.OrderRecord
	carts  map[string]store.Cart
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		orders: make(map[string]store.OrderRecord),
		carts:  make(map[string]store.Cart),
	}
}

func (m *memoryStore) SaveOrder(_ context.Context, order store.OrderRecord) error {
	m.orders[order.Code] = order
	return nil
}

func (m *memoryStore) GetOrder(_ context.Context, code string) (*store.OrderRecord, error) {
	order, ok := m.orders[code]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &order, nil
}

func (m *memoryStore) ListOrders(_ context.Context) ([]store.OrderRecord, error) {
	orders := make([]store.OrderRecord, 0, len(m.orders))
	for _, order := range m.orders {
		orders = append(orders, order)
	}
	return orders, nil
}

func (m *memoryStore) AttachTracking(_ context.Context, code string, result *delivery.DeliveryResult) error {
	order, ok := m.orders[code]
	if !ok {
		return store.ErrNotFound
	}
	order.DeliveryStatus = store.DeliveryStatusCreated
	order.DeliveryCode = result.DeliveryCode
	order.TrackingCode = result.TrackingCode
	order.UsedFallback = result.UsedFallback
	m.orders[code] = order
	return nil
}

func (m *memoryStore) SaveCart(_ context.Context, cart store.Cart) error {
	m.carts[cart.ID] = cart
	return nil
}

func (m *memoryStore) GetCart(_ context.Context, id string) (*store.Cart, error) {
	cart, ok := m.carts[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &cart, nil
}

func (m *memoryStore) DeleteCart(_ context.Context, id string) error {
	delete(m.carts, id)
	return nil
}

// scriptedCourier replays canned responses, one per CreateDelivery call.
type scriptedCourier struct {
	requests  []sendit.CreateDeliveryRequest
	responses []scriptedResponse
}

type scriptedResponse struct {
	delivery *sendit.Delivery
	err      error
}

func (c *scriptedCourier) CreateDelivery(_ context.Context, arg sendit.CreateDeliveryRequest) (*sendit.Delivery, error) {
	response := c.responses[len(c.requests)]
	c.requests = append(c.requests, arg)
	return response.delivery, response.err
}

// nopDistributor records enqueued task types without touching Redis.
type nopDistributor struct {
	enqueued []string
}

func (d *nopDistributor) DistributeTaskUpdateTracking(_ context.Context, _ *worker.PayloadOrderTask, _ ...asynq.Option) error {
	d.enqueued = append(d.enqueued, worker.TaskUpdateTracking)
	return nil
}

func (d *nopDistributor) DistributeTaskSendConfirmation(_ context.Context, _ *worker.PayloadOrderTask, _ ...asynq.Option) error {
	d.enqueued = append(d.enqueued, worker.TaskSendConfirmation)
	return nil
}

func (d *nopDistributor) DistributeTaskNotifyOwner(_ context.Context, _ *worker.PayloadOrderTask, _ ...asynq.Option) error {
	d.enqueued = append(d.enqueued, worker.TaskNotifyOwner)
	return nil
}

func (d *nopDistributor) DistributeTaskReportPurchaseEvent(_ context.Context, _ *worker.PayloadOrderTask, _ ...asynq.Option) error {
	d.enqueued = append(d.enqueued, worker.TaskReportPurchaseEvent)
	return nil
}

// fixedLister serves a static district set for the catalog.
type fixedLister struct {
	entries []district.DistrictEntry
}

func (l *fixedLister) ListAllDistricts(_ context.Context) ([]district.DistrictEntry, error) {
	return l.entries, nil
}

func testDistrictEntries() []district.DistrictEntry {
	return []district.DistrictEntry{
		{ID: 1, Name: "Casablanca - Maarif", City: "Casablanca"},
		{ID: 3, Name: "Rabat - Agdal", City: "Rabat"},
		{ID: district.CatchAllDistrictID, Name: "Autre"},
	}
}

type testServerDeps struct {
	store       *memoryStore
	courier     *scriptedCourier
	distributor *nopDistributor
}

func newTestServer(t *testing.T) (*Server, *testServerDeps) {
	t.Helper()

	deps := &testServerDeps{
		store:       newMemoryStore(),
		courier:     &scriptedCourier{},
		distributor: &nopDistributor{},
	}

	districtCatalog := district.NewCatalog(&fixedLister{entries: testDistrictEntries()})
	require.NoError(t, districtCatalog.Refresh(context.Background()))

	config := &util.Config{
		AllowedOrigins:         []string{"http://localhost:3000"},
		SenditPickupDistrictID: 1,
		SenditStockDelivery:    true,
		PaypalCurrency:         "EUR",
		PaypalExchangeRate:     0.092,
	}

	server, err := NewServer(config, deps.store, catalog.NewCatalog(), districtCatalog, deps.courier, nil, deps.distributor)
	require.NoError(t, err)

	return server, deps
}
