package cache

import (
	"sync"
	"time"

	"github.com/jcoelho/carteira/internal/models"
)

// MemoryCache is an in-memory L1 cache for live quotes (per asset and
// valuation day) and metrics snapshots (per portfolio). Reconciliation
// is re-run on every request, so short TTLs here are purely a cost
// optimization; staleness beyond the TTL falls through to the
// underlying stores.
type MemoryCache struct {
	quotes     map[quoteKey]quoteEntry
	snapshots  map[int64]snapshotEntry
	quoteMu    sync.RWMutex
	snapshotMu sync.RWMutex
	quoteTTL   time.Duration
	snapTTL    time.Duration
}

// quoteKey scopes a cached close to one asset on one calendar day.
// Quotes for different as-of days are distinct values and must never
// answer for each other.
type quoteKey struct {
	assetID int64
	day     string
}

type quoteEntry struct {
	close     float64
	fetchedAt time.Time
}

type snapshotEntry struct {
	metrics   map[int64]models.AssetMetrics
	fetchedAt time.Time
}

// NewMemoryCache creates a new in-memory cache.
func NewMemoryCache(quoteTTL, snapshotTTL time.Duration) *MemoryCache {
	return &MemoryCache{
		quotes:    make(map[quoteKey]quoteEntry),
		snapshots: make(map[int64]snapshotEntry),
		quoteTTL:  quoteTTL,
		snapTTL:   snapshotTTL,
	}
}

// GetQuote retrieves a cached close for an asset on a valuation day, if
// fresh.
func (c *MemoryCache) GetQuote(assetID int64, asOf time.Time) (float64, bool) {
	c.quoteMu.RLock()
	defer c.quoteMu.RUnlock()

	entry, exists := c.quotes[quoteKey{assetID: assetID, day: asOf.Format("2006-01-02")}]
	if !exists || time.Since(entry.fetchedAt) > c.quoteTTL {
		return 0, false
	}
	return entry.close, true
}

// SetQuote caches a close quote for an asset on a valuation day.
func (c *MemoryCache) SetQuote(assetID int64, asOf time.Time, close float64) {
	c.quoteMu.Lock()
	defer c.quoteMu.Unlock()

	key := quoteKey{assetID: assetID, day: asOf.Format("2006-01-02")}
	c.quotes[key] = quoteEntry{close: close, fetchedAt: time.Now()}
}

// GetSnapshot retrieves a cached metrics snapshot if fresh.
func (c *MemoryCache) GetSnapshot(portfolioID int64) (map[int64]models.AssetMetrics, bool) {
	c.snapshotMu.RLock()
	defer c.snapshotMu.RUnlock()

	entry, exists := c.snapshots[portfolioID]
	if !exists || time.Since(entry.fetchedAt) > c.snapTTL {
		return nil, false
	}
	return entry.metrics, true
}

// SetSnapshot caches a portfolio metrics snapshot.
func (c *MemoryCache) SetSnapshot(portfolioID int64, metrics map[int64]models.AssetMetrics) {
	c.snapshotMu.Lock()
	defer c.snapshotMu.Unlock()

	c.snapshots[portfolioID] = snapshotEntry{metrics: metrics, fetchedAt: time.Now()}
}

// Clear removes all cached data.
func (c *MemoryCache) Clear() {
	c.quoteMu.Lock()
	c.quotes = make(map[quoteKey]quoteEntry)
	c.quoteMu.Unlock()

	c.snapshotMu.Lock()
	c.snapshots = make(map[int64]snapshotEntry)
	c.snapshotMu.Unlock()
}
