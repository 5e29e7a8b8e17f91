package district

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// CatchAllDistrictID is the courier's "other/unclassified" destination zone.
// Checkout substitutes it whenever a typed city cannot be resolved, so a bad
// city name never blocks an order.
const CatchAllDistrictID int64 = 46

// DistrictEntry is one destination zone of the courier's taxonomy.
// The numeric ID is the only stable join key; City and Name exist for
// display and matching only.
type DistrictEntry struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	ArabicName       string          `json:"arabic_name"`
	City             string          `json:"city"`
	Price            decimal.Decimal `json:"price"`
	DeliveryEstimate string          `json:"delivery_estimate"`
	PickupAllowed    bool            `json:"pickup_allowed"`
}

// Lister fetches the full district taxonomy from the courier.
type Lister interface {
	ListAllDistricts(ctx context.Context) ([]DistrictEntry, error)
}

// Catalog holds an immutable snapshot of the courier's districts.
// Refresh replaces the snapshot wholesale; readers during a checkout session
// keep working on whichever snapshot they started with.
type Catalog struct {
	lister    Lister
	mu        sync.RWMutex
	entries   []DistrictEntry
	byID      map[int64]DistrictEntry
	refreshed time.Time
	scheduler gocron.Scheduler
}

func NewCatalog(lister Lister) *Catalog {
	return &Catalog{
		lister: lister,
		byID:   make(map[int64]DistrictEntry),
	}
}

// Refresh pulls every district page from the courier and swaps the snapshot.
// A failed refresh keeps the previous snapshot intact.
func (c *Catalog) Refresh(ctx context.Context) error {
	entries, err := c.lister.ListAllDistricts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list districts: %w", err)
	}

	byID := make(map[int64]DistrictEntry, len(entries))
	for _, entry := range entries {
		byID[entry.ID] = entry
	}

	c.mu.Lock()
	c.entries = entries
	c.byID = byID
	c.refreshed = time.Now()
	c.mu.Unlock()

	log.Info().Int("districts", len(entries)).Msg("district catalog refreshed")
	return nil
}

// Snapshot returns the current entries. Callers must treat the slice as read-only.
func (c *Catalog) Snapshot() []DistrictEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries
}

// Get returns the district with the given courier id.
func (c *Catalog) Get(id int64) (DistrictEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.byID[id]
	return entry, ok
}

// LastRefreshed reports when the snapshot was last rebuilt.
func (c *Catalog) LastRefreshed() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.refreshed
}

// StartAutoRefresh schedules a periodic wholesale rebuild of the catalog.
func (c *Catalog) StartAutoRefresh(interval time.Duration) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(
			func() {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
				defer cancel()

				if err := c.Refresh(ctx); err != nil {
					log.Error().Err(err).Msg("scheduled district refresh failed")
				}
			},
		),
	)
	if err != nil {
		return err
	}

	c.scheduler = scheduler
	scheduler.Start()
	return nil
}

// Stop shuts down the refresh scheduler if one was started.
func (c *Catalog) Stop() error {
	if c.scheduler == nil {
		return nil
	}
	return c.scheduler.Shutdown()
}
