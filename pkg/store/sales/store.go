package sales

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/de-tools/report-pilot/pkg/models/store"
)

// Store exposes the order-data aggregations the report generators consume.
type Store interface {
	PeriodTotals(ctx context.Context, start, end time.Time) (*store.PeriodTotals, error)
	RevenueByProduct(ctx context.Context, start, end time.Time, limit int) ([]store.GroupedRevenue, error)
	RevenueByClient(ctx context.Context, start, end time.Time, limit int) ([]store.GroupedRevenue, error)
	RevenueByCategory(ctx context.Context, start, end time.Time, limit int) ([]store.GroupedRevenue, error)
	RevenueByDay(ctx context.Context, start, end time.Time) ([]store.DailyRevenue, error)
	CustomerActivity(ctx context.Context, start, end time.Time) ([]store.CustomerActivity, error)
	InventoryLevels(ctx context.Context) ([]store.InventoryLevel, error)
	CoPurchases(ctx context.Context, userID string, limit int) ([]store.ProductAffinity, error)
}

type salesStore struct {
	db *sql.DB
}

// NewStore creates a Store over an open sql.DB handle.
func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &salesStore{db: db}, nil
}

func (s *salesStore) PeriodTotals(ctx context.Context, start, end time.Time) (*store.PeriodTotals, error) {
	query := `
		SELECT COUNT(DISTINCT o.id),
		       COALESCE(SUM(oi.quantity), 0),
		       COALESCE(SUM(oi.quantity * oi.unit_price), 0),
		       COUNT(DISTINCT o.customer_id)
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		WHERE o.created_at BETWEEN $1 AND $2
		  AND o.status = 'paid'`

	var totals store.PeriodTotals
	err := s.db.QueryRowContext(ctx, query, start, end).Scan(
		&totals.Orders, &totals.Units, &totals.Revenue, &totals.Customers)
	if err != nil {
		return nil, fmt.Errorf("query period totals: %w", err)
	}
	return &totals, nil
}

func (s *salesStore) RevenueByProduct(ctx context.Context, start, end time.Time, limit int) ([]store.GroupedRevenue, error) {
	query := `
		SELECT p.name,
		       COUNT(DISTINCT o.id),
		       COALESCE(SUM(oi.quantity), 0),
		       COALESCE(SUM(oi.quantity * oi.unit_price), 0) AS revenue
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		JOIN products p ON p.id = oi.product_id
		WHERE o.created_at BETWEEN $1 AND $2
		  AND o.status = 'paid'
		GROUP BY p.name
		ORDER BY revenue DESC
		LIMIT $3`
	return s.queryGrouped(ctx, query, start, end, limit)
}

func (s *salesStore) RevenueByClient(ctx context.Context, start, end time.Time, limit int) ([]store.GroupedRevenue, error) {
	query := `
		SELECT c.name,
		       COUNT(DISTINCT o.id),
		       COALESCE(SUM(oi.quantity), 0),
		       COALESCE(SUM(oi.quantity * oi.unit_price), 0) AS revenue
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		JOIN customers c ON c.id = o.customer_id
		WHERE o.created_at BETWEEN $1 AND $2
		  AND o.status = 'paid'
		GROUP BY c.name
		ORDER BY revenue DESC
		LIMIT $3`
	return s.queryGrouped(ctx, query, start, end, limit)
}

func (s *salesStore) RevenueByCategory(ctx context.Context, start, end time.Time, limit int) ([]store.GroupedRevenue, error) {
	query := `
		SELECT cat.name,
		       COUNT(DISTINCT o.id),
		       COALESCE(SUM(oi.quantity), 0),
		       COALESCE(SUM(oi.quantity * oi.unit_price), 0) AS revenue
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		JOIN products p ON p.id = oi.product_id
		JOIN categories cat ON cat.id = p.category_id
		WHERE o.created_at BETWEEN $1 AND $2
		  AND o.status = 'paid'
		GROUP BY cat.name
		ORDER BY revenue DESC
		LIMIT $3`
	return s.queryGrouped(ctx, query, start, end, limit)
}

func (s *salesStore) queryGrouped(ctx context.Context, query string, start, end time.Time, limit int) ([]store.GroupedRevenue, error) {
	rows, err := s.db.QueryContext(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("query grouped revenue: %w", err)
	}
	defer rows.Close()

	var result []store.GroupedRevenue
	for rows.Next() {
		var r store.GroupedRevenue
		if err := rows.Scan(&r.Key, &r.Orders, &r.Units, &r.Revenue); err != nil {
			return nil, fmt.Errorf("scan grouped revenue: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

func (s *salesStore) RevenueByDay(ctx context.Context, start, end time.Time) ([]store.DailyRevenue, error) {
	query := `
		SELECT DATE_TRUNC('day', o.created_at) AS day,
		       COUNT(DISTINCT o.id),
		       COALESCE(SUM(oi.quantity * oi.unit_price), 0)
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		WHERE o.created_at BETWEEN $1 AND $2
		  AND o.status = 'paid'
		GROUP BY day
		ORDER BY day`

	rows, err := s.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("query daily revenue: %w", err)
	}
	defer rows.Close()

	var result []store.DailyRevenue
	for rows.Next() {
		var r store.DailyRevenue
		if err := rows.Scan(&r.Day, &r.Orders, &r.Revenue); err != nil {
			return nil, fmt.Errorf("scan daily revenue: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

func (s *salesStore) CustomerActivity(ctx context.Context, start, end time.Time) ([]store.CustomerActivity, error) {
	query := `
		SELECT c.id, c.name,
		       MAX(o.created_at),
		       COUNT(DISTINCT o.id),
		       COALESCE(SUM(oi.quantity * oi.unit_price), 0)
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		JOIN customers c ON c.id = o.customer_id
		WHERE o.created_at BETWEEN $1 AND $2
		  AND o.status = 'paid'
		GROUP BY c.id, c.name`

	rows, err := s.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("query customer activity: %w", err)
	}
	defer rows.Close()

	var result []store.CustomerActivity
	for rows.Next() {
		var r store.CustomerActivity
		if err := rows.Scan(&r.CustomerID, &r.Name, &r.LastOrder, &r.Orders, &r.Revenue); err != nil {
			return nil, fmt.Errorf("scan customer activity: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

func (s *salesStore) InventoryLevels(ctx context.Context) ([]store.InventoryLevel, error) {
	query := `
		SELECT p.id, p.name, p.stock, p.reorder_level
		FROM products p
		ORDER BY p.stock ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query inventory levels: %w", err)
	}
	defer rows.Close()

	var result []store.InventoryLevel
	for rows.Next() {
		var r store.InventoryLevel
		if err := rows.Scan(&r.ProductID, &r.Name, &r.Stock, &r.ReorderLevel); err != nil {
			return nil, fmt.Errorf("scan inventory level: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

func (s *salesStore) CoPurchases(ctx context.Context, userID string, limit int) ([]store.ProductAffinity, error) {
	// Candidate products are those bought by customers who share at least
	// one product with the user's own history, excluding what the user
	// already bought.
	query := `
		WITH user_products AS (
			SELECT DISTINCT oi.product_id
			FROM orders o
			JOIN order_items oi ON oi.order_id = o.id
			WHERE o.customer_id = $1 AND o.status = 'paid'
		)
		SELECT p.id, p.name, COUNT(*)::float AS score
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		JOIN products p ON p.id = oi.product_id
		WHERE o.customer_id IN (
			SELECT DISTINCT o2.customer_id
			FROM orders o2
			JOIN order_items oi2 ON oi2.order_id = o2.id
			WHERE oi2.product_id IN (SELECT product_id FROM user_products)
			  AND o2.customer_id <> $1
		)
		AND oi.product_id NOT IN (SELECT product_id FROM user_products)
		GROUP BY p.id, p.name
		ORDER BY score DESC
		LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query co-purchases: %w", err)
	}
	defer rows.Close()

	var result []store.ProductAffinity
	for rows.Next() {
		var r store.ProductAffinity
		if err := rows.Scan(&r.ProductID, &r.Name, &r.Score); err != nil {
			return nil, fmt.Errorf("scan co-purchase: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}
