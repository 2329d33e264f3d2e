package reports

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/de-tools/report-pilot/pkg/models/domain"
	"github.com/de-tools/report-pilot/pkg/services/dispatch"
	"github.com/de-tools/report-pilot/pkg/store/sales"
)

// abcRowLimit bounds the product ranking pulled for Pareto classification.
const abcRowLimit = 1000

// AnalyticsService implements the advanced analytics generators: RFM, ABC,
// comparative, executive dashboard and inventory.
type AnalyticsService struct {
	store sales.Store
	now   func() time.Time
}

// NewAnalyticsService creates the advanced analytics generator.
func NewAnalyticsService(store sales.Store) *AnalyticsService {
	return &AnalyticsService{store: store, now: time.Now}
}

// RFMAnalysis segments customers by recency, frequency and monetary value.
// Each dimension is scored 1..5 by rank within the analyzed population.
func (s *AnalyticsService) RFMAnalysis(ctx context.Context, q dispatch.SalesQuery) (*domain.Report, error) {
	customers, err := s.store.CustomerActivity(ctx, q.Start, q.End)
	if err != nil {
		return nil, err
	}

	recency := make([]float64, len(customers))
	frequency := make([]float64, len(customers))
	monetary := make([]float64, len(customers))
	for i, c := range customers {
		// Lower days-since-last-order is better, so negate for ranking.
		recency[i] = -q.End.Sub(c.LastOrder).Hours() / 24
		frequency[i] = float64(c.Orders)
		monetary[i] = c.Revenue
	}

	rScores := quintileScores(recency)
	fScores := quintileScores(frequency)
	mScores := quintileScores(monetary)

	report := &domain.Report{
		Kind:        domain.ReportRFM,
		Title:       "Análisis RFM",
		Subtitle:    "Segmentación de clientes por recencia, frecuencia y monto",
		Period:      reportPeriod(q),
		Headers:     []string{"Cliente", "R", "F", "M", "Segmento"},
		Summary:     map[string]interface{}{"clientes": len(customers)},
		GeneratedAt: s.now(),
	}

	segments := map[string]int{}
	for i, c := range customers {
		segment := rfmSegment(rScores[i], fScores[i], mScores[i])
		segments[segment]++
		report.Rows = append(report.Rows, []interface{}{
			c.Name, rScores[i], fScores[i], mScores[i], segment,
		})
	}
	for segment, count := range segments {
		report.Summary[segment] = count
	}
	return report, nil
}

// quintileScores ranks values and maps each to 1..5, 5 being best.
func quintileScores(values []float64) []int {
	n := len(values)
	scores := make([]int, n)
	if n == 0 {
		return scores
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return values[order[a]] < values[order[b]] })

	for rank, idx := range order {
		scores[idx] = rank*5/n + 1
	}
	return scores
}

func rfmSegment(r, f, m int) string {
	switch {
	case r >= 4 && f >= 4 && m >= 4:
		return "Campeones"
	case r >= 4 && f >= 3:
		return "Leales"
	case r >= 3 && m >= 3:
		return "Potenciales"
	case r <= 2 && f >= 3:
		return "En riesgo"
	default:
		return "Ocasionales"
	}
}

// ABCAnalysis classifies products by cumulative revenue share: the first 80%
// is class A, the next 15% class B and the last 5% class C.
func (s *AnalyticsService) ABCAnalysis(ctx context.Context, q dispatch.SalesQuery) (*domain.Report, error) {
	products, err := s.store.RevenueByProduct(ctx, q.Start, q.End, abcRowLimit)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, p := range products {
		total += p.Revenue
	}

	report := &domain.Report{
		Kind:        domain.ReportABC,
		Title:       "Análisis ABC",
		Subtitle:    "Clasificación de productos por principio de Pareto",
		Period:      reportPeriod(q),
		Headers:     []string{"Producto", "Ingresos", "% Acumulado", "Clase"},
		Summary:     map[string]interface{}{},
		GeneratedAt: s.now(),
	}

	classes := map[string]int{"A": 0, "B": 0, "C": 0}
	var cumulative float64
	for _, p := range products {
		cumulative += p.Revenue
		share := 0.0
		if total > 0 {
			share = cumulative / total * 100
		}
		class := "C"
		switch {
		case share <= 80:
			class = "A"
		case share <= 95:
			class = "B"
		}
		classes[class]++
		report.Rows = append(report.Rows, []interface{}{p.Key, p.Revenue, share, class})
	}

	for class, count := range classes {
		report.Summary["clase_"+class] = count
	}
	report.Totals = map[string]float64{"ingresos": total}
	return report, nil
}

// Comparative contrasts two periods. When the parser could not infer them,
// the current month to date is compared against the full previous month.
func (s *AnalyticsService) Comparative(ctx context.Context, q dispatch.CompareQuery) (*domain.Report, error) {
	period1, period2 := q.Period1, q.Period2
	if period1 == nil || period2 == nil {
		period1, period2 = s.defaultComparison()
	}

	totals1, err := s.store.PeriodTotals(ctx, period1.Start, period1.End)
	if err != nil {
		return nil, err
	}
	totals2, err := s.store.PeriodTotals(ctx, period2.Start, period2.End)
	if err != nil {
		return nil, err
	}

	delta := totals1.Revenue - totals2.Revenue
	var deltaPct float64
	if totals2.Revenue > 0 {
		deltaPct = delta / totals2.Revenue * 100
	}

	return &domain.Report{
		Kind:     domain.ReportComparative,
		Title:    "Comparativo Temporal",
		Subtitle: fmt.Sprintf("%s vs %s", period1.Label, period2.Label),
		Headers:  []string{"Indicador", period1.Label, period2.Label, "Diferencia"},
		Rows: [][]interface{}{
			{"Órdenes", totals1.Orders, totals2.Orders, totals1.Orders - totals2.Orders},
			{"Unidades", totals1.Units, totals2.Units, totals1.Units - totals2.Units},
			{"Ingresos", totals1.Revenue, totals2.Revenue, delta},
		},
		Summary: map[string]interface{}{
			"variacion_pct": deltaPct,
		},
		Totals:      map[string]float64{"diferencia_ingresos": delta},
		GeneratedAt: s.now(),
	}, nil
}

func (s *AnalyticsService) defaultComparison() (*domain.Window, *domain.Window) {
	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prev := now.AddDate(0, -1, 0)
	prevStart := time.Date(prev.Year(), prev.Month(), 1, 0, 0, 0, 0, now.Location())
	prevEnd := monthStart.Add(-time.Second)
	return &domain.Window{Start: monthStart, End: now, Label: "mes actual"},
		&domain.Window{Start: prevStart, End: prevEnd, Label: "mes anterior"}
}

// ExecutiveDashboard composes the headline indicators with top products and
// top clients.
func (s *AnalyticsService) ExecutiveDashboard(ctx context.Context, q dispatch.SalesQuery) (*domain.Report, error) {
	totals, err := s.store.PeriodTotals(ctx, q.Start, q.End)
	if err != nil {
		return nil, err
	}
	topProducts, err := s.store.RevenueByProduct(ctx, q.Start, q.End, 5)
	if err != nil {
		return nil, err
	}
	topClients, err := s.store.RevenueByClient(ctx, q.Start, q.End, 5)
	if err != nil {
		return nil, err
	}

	products := &domain.Report{
		Kind:    domain.ReportExecutive,
		Title:   "Top Productos",
		Headers: []string{"Producto", "Ingresos"},
	}
	for _, p := range topProducts {
		products.Rows = append(products.Rows, []interface{}{p.Key, p.Revenue})
	}

	clients := &domain.Report{
		Kind:    domain.ReportExecutive,
		Title:   "Top Clientes",
		Headers: []string{"Cliente", "Ingresos"},
	}
	for _, c := range topClients {
		clients.Rows = append(clients.Rows, []interface{}{c.Key, c.Revenue})
	}

	return &domain.Report{
		Kind:   domain.ReportExecutive,
		Title:  "Dashboard Ejecutivo",
		Period: reportPeriod(q),
		Summary: map[string]interface{}{
			"ordenes":  totals.Orders,
			"unidades": totals.Units,
			"ingresos": totals.Revenue,
			"clientes": totals.Customers,
		},
		Sections:    []*domain.Report{products, clients},
		Totals:      map[string]float64{"ingresos": totals.Revenue},
		GeneratedAt: s.now(),
	}, nil
}

// InventoryStatus lists stock levels, flagging products at or below their
// reorder level.
func (s *AnalyticsService) InventoryStatus(ctx context.Context, q dispatch.SalesQuery) (*domain.Report, error) {
	levels, err := s.store.InventoryLevels(ctx)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{
		Kind:        domain.ReportInventory,
		Title:       "Reporte de Inventario",
		Headers:     []string{"Producto", "Stock", "Nivel de reposición", "Estado"},
		Summary:     map[string]interface{}{},
		GeneratedAt: s.now(),
	}

	var lowStock, outOfStock int
	for _, level := range levels {
		status := "ok"
		switch {
		case level.Stock == 0:
			status = "agotado"
			outOfStock++
		case level.Stock <= level.ReorderLevel:
			status = "bajo"
			lowStock++
		}
		report.Rows = append(report.Rows, []interface{}{
			level.Name, level.Stock, level.ReorderLevel, status,
		})
	}

	report.Summary["productos"] = len(levels)
	report.Summary["stock_bajo"] = lowStock
	report.Summary["agotados"] = outOfStock
	return report, nil
}
