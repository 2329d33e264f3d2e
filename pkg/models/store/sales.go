package store

import "time"

// PeriodTotals aggregates order activity in a date range.
type PeriodTotals struct {
	Orders    int64
	Units     int64
	Revenue   float64
	Customers int64
}

// GroupedRevenue is one row of a revenue aggregation over a dimension
// (product, client or category).
type GroupedRevenue struct {
	Key     string
	Orders  int64
	Units   int64
	Revenue float64
}

// DailyRevenue is one point of the per-day revenue series.
type DailyRevenue struct {
	Day     time.Time
	Orders  int64
	Revenue float64
}

// CustomerActivity feeds RFM segmentation.
type CustomerActivity struct {
	CustomerID string
	Name       string
	LastOrder  time.Time
	Orders     int64
	Revenue    float64
}

// InventoryLevel is the current stock state of one product.
type InventoryLevel struct {
	ProductID    int64
	Name         string
	Stock        int64
	ReorderLevel int64
}

// ProductAffinity is a co-purchase score between a user's history and a
// candidate product.
type ProductAffinity struct {
	ProductID int64
	Name      string
	Score     float64
}
