package console

import (
	"context"
	"sync"
	"time"

	"github.com/appetiteclub/apt"

	"github.com/tableside/foh/internal/posapi"
)

// DashboardSnapshot is the last successfully assembled dashboard state.
type DashboardSnapshot struct {
	Stats         dashboardStatsView
	PendingOrders []pendingOrderView
	UpdatedAt     time.Time
}

// TablesSnapshot is the last successfully fetched table occupancy view.
type TablesSnapshot struct {
	View      tablesPageView
	UpdatedAt time.Time
}

// SnapshotCache keeps the most recent good render state for the dashboard
// and table panels. The refresh loops write it; handlers fall back to it
// when a live fetch fails, so one backend hiccup does not blank a panel
// that had data a few seconds ago.
type SnapshotCache struct {
	mu        sync.RWMutex
	client    posapi.Client
	logger    apt.Logger
	dashboard *DashboardSnapshot
	tables    *TablesSnapshot
}

// NewSnapshotCache creates an empty cache over a backend client.
func NewSnapshotCache(client posapi.Client, logger apt.Logger) *SnapshotCache {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &SnapshotCache{client: client, logger: logger}
}

// RefreshDashboard fetches every dashboard source and stores the combined
// snapshot. Sources fail independently: a failed one keeps its zero value
// while the rest still land, and only a fully failed pass returns an error.
func (c *SnapshotCache) RefreshDashboard(ctx context.Context) error {
	var (
		failures int
		lastErr  error
	)

	qc, err := c.client.QueueCounts(ctx)
	if err != nil {
		failures++
		lastErr = err
		c.logger.Debug("queue counts unavailable", "error", err)
	}
	pc, err := c.client.PendingOrderCounts(ctx)
	if err != nil {
		failures++
		lastErr = err
		c.logger.Debug("pending counts unavailable", "error", err)
	}
	report, err := c.client.DailyReport(ctx)
	if err != nil {
		failures++
		lastErr = err
		c.logger.Debug("daily report unavailable", "error", err)
	}
	waiters, err := c.client.ListWaiters(ctx)
	if err != nil {
		failures++
		lastErr = err
		c.logger.Debug("waiters unavailable", "error", err)
	}
	orders, err := c.client.PendingOrders(ctx)
	if err != nil {
		failures++
		lastErr = err
		c.logger.Debug("pending orders unavailable", "error", err)
	}

	if failures == 5 {
		return lastErr
	}

	snapshot := &DashboardSnapshot{
		Stats:         buildDashboardStats(qc, pc, report, waiters),
		PendingOrders: buildPendingOrderViews(orders),
		UpdatedAt:     time.Now(),
	}

	c.mu.Lock()
	c.dashboard = snapshot
	c.mu.Unlock()
	return nil
}

// RefreshTables fetches table occupancy and stores it.
func (c *SnapshotCache) RefreshTables(ctx context.Context) error {
	tables, err := c.client.ListTables(ctx)
	if err != nil {
		return err
	}
	summary, err := c.client.TableStatus(ctx)
	if err != nil {
		// The listing alone still renders; the summary keeps its zeros.
		c.logger.Debug("table status unavailable", "error", err)
	}

	snapshot := &TablesSnapshot{
		View:      buildTablesView(tables, summary),
		UpdatedAt: time.Now(),
	}

	c.mu.Lock()
	c.tables = snapshot
	c.mu.Unlock()
	return nil
}

// Dashboard returns the last dashboard snapshot, nil before the first
// successful refresh.
func (c *SnapshotCache) Dashboard() *DashboardSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dashboard
}

// Tables returns the last tables snapshot, nil before the first
// successful refresh.
func (c *SnapshotCache) Tables() *TablesSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tables
}
