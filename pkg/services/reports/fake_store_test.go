package reports

import (
	"context"
	"time"

	"github.com/de-tools/report-pilot/pkg/models/store"
)

// fakeStore serves canned aggregates and records how it was queried.
type fakeStore struct {
	totals     *store.PeriodTotals
	byProduct  []store.GroupedRevenue
	byClient   []store.GroupedRevenue
	byCategory []store.GroupedRevenue
	byDay      []store.DailyRevenue
	activity   []store.CustomerActivity
	inventory  []store.InventoryLevel
	affinities []store.ProductAffinity

	err error

	totalsCalls int
	byDayCalls  int
	lastStart   time.Time
	lastEnd     time.Time
	lastLimit   int
	lastUserID  string
}

func (f *fakeStore) PeriodTotals(_ context.Context, start, end time.Time) (*store.PeriodTotals, error) {
	f.totalsCalls++
	f.lastStart, f.lastEnd = start, end
	return f.totals, f.err
}

func (f *fakeStore) RevenueByProduct(_ context.Context, start, end time.Time, limit int) ([]store.GroupedRevenue, error) {
	f.lastStart, f.lastEnd, f.lastLimit = start, end, limit
	return f.byProduct, f.err
}

func (f *fakeStore) RevenueByClient(_ context.Context, start, end time.Time, limit int) ([]store.GroupedRevenue, error) {
	f.lastStart, f.lastEnd, f.lastLimit = start, end, limit
	return f.byClient, f.err
}

func (f *fakeStore) RevenueByCategory(_ context.Context, start, end time.Time, limit int) ([]store.GroupedRevenue, error) {
	f.lastStart, f.lastEnd, f.lastLimit = start, end, limit
	return f.byCategory, f.err
}

func (f *fakeStore) RevenueByDay(_ context.Context, start, end time.Time) ([]store.DailyRevenue, error) {
	f.byDayCalls++
	f.lastStart, f.lastEnd = start, end
	return f.byDay, f.err
}

func (f *fakeStore) CustomerActivity(_ context.Context, start, end time.Time) ([]store.CustomerActivity, error) {
	f.lastStart, f.lastEnd = start, end
	return f.activity, f.err
}

func (f *fakeStore) InventoryLevels(_ context.Context) ([]store.InventoryLevel, error) {
	return f.inventory, f.err
}

func (f *fakeStore) CoPurchases(_ context.Context, userID string, limit int) ([]store.ProductAffinity, error) {
	f.lastUserID, f.lastLimit = userID, limit
	return f.affinities, f.err
}
