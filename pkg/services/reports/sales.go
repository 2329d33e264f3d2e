package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/report-pilot/pkg/models/domain"
	"github.com/de-tools/report-pilot/pkg/models/store"
	"github.com/de-tools/report-pilot/pkg/services/dispatch"
	"github.com/de-tools/report-pilot/pkg/store/sales"
)

const defaultRowLimit = 20

// SalesService implements the five basic sales aggregations over the order
// store.
type SalesService struct {
	store sales.Store
	now   func() time.Time
}

// NewSalesService creates the basic sales report generator.
func NewSalesService(store sales.Store) *SalesService {
	return &SalesService{store: store, now: time.Now}
}

func (s *SalesService) SalesSummary(ctx context.Context, q dispatch.SalesQuery) (*domain.Report, error) {
	totals, err := s.store.PeriodTotals(ctx, q.Start, q.End)
	if err != nil {
		return nil, err
	}

	avgTicket := 0.0
	if totals.Orders > 0 {
		avgTicket = totals.Revenue / float64(totals.Orders)
	}

	return &domain.Report{
		Kind:    domain.ReportSalesBasic,
		Title:   "Reporte de Ventas",
		Period:  reportPeriod(q),
		Headers: []string{"Indicador", "Valor"},
		Rows: [][]interface{}{
			{"Órdenes", totals.Orders},
			{"Unidades vendidas", totals.Units},
			{"Ingresos", totals.Revenue},
			{"Clientes distintos", totals.Customers},
			{"Ticket promedio", avgTicket},
		},
		Totals:      map[string]float64{"ingresos": totals.Revenue},
		GeneratedAt: s.now(),
	}, nil
}

func (s *SalesService) SalesByProduct(ctx context.Context, q dispatch.SalesQuery) (*domain.Report, error) {
	rows, err := s.store.RevenueByProduct(ctx, q.Start, q.End, rowLimit(q.Limit))
	if err != nil {
		return nil, err
	}
	return s.groupedReport(domain.ReportSalesByProduct, "Ventas por Producto", "Producto", q, rows), nil
}

func (s *SalesService) SalesByClient(ctx context.Context, q dispatch.SalesQuery) (*domain.Report, error) {
	rows, err := s.store.RevenueByClient(ctx, q.Start, q.End, rowLimit(q.Limit))
	if err != nil {
		return nil, err
	}
	return s.groupedReport(domain.ReportSalesByClient, "Ventas por Cliente", "Cliente", q, rows), nil
}

func (s *SalesService) SalesByCategory(ctx context.Context, q dispatch.SalesQuery) (*domain.Report, error) {
	rows, err := s.store.RevenueByCategory(ctx, q.Start, q.End, rowLimit(q.Limit))
	if err != nil {
		return nil, err
	}
	return s.groupedReport(domain.ReportSalesByCategory, "Ventas por Categoría", "Categoría", q, rows), nil
}

func (s *SalesService) SalesByPeriod(ctx context.Context, q dispatch.SalesQuery) (*domain.Report, error) {
	series, err := s.store.RevenueByDay(ctx, q.Start, q.End)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{
		Kind:        domain.ReportSalesByPeriod,
		Title:       "Ventas por Período",
		Period:      reportPeriod(q),
		Headers:     []string{"Fecha", "Órdenes", "Ingresos"},
		Totals:      map[string]float64{},
		GeneratedAt: s.now(),
	}
	for _, point := range series {
		report.Rows = append(report.Rows, []interface{}{
			point.Day.Format("2006-01-02"), point.Orders, point.Revenue,
		})
		report.Totals["ingresos"] += point.Revenue
	}
	return report, nil
}

func (s *SalesService) groupedReport(kind domain.ReportKind, title, dimension string, q dispatch.SalesQuery, rows []store.GroupedRevenue) *domain.Report {
	report := &domain.Report{
		Kind:        kind,
		Title:       title,
		Subtitle:    fmt.Sprintf("Agrupado por %s", dimension),
		Period:      reportPeriod(q),
		Headers:     []string{dimension, "Órdenes", "Unidades", "Ingresos"},
		Totals:      map[string]float64{},
		GeneratedAt: s.now(),
	}

	for _, row := range rows {
		if q.MinAmount != nil && row.Revenue < *q.MinAmount {
			continue
		}
		if q.MaxAmount != nil && row.Revenue > *q.MaxAmount {
			continue
		}
		report.Rows = append(report.Rows, []interface{}{row.Key, row.Orders, row.Units, row.Revenue})
		report.Totals["ingresos"] += row.Revenue
	}
	return report
}

func rowLimit(limit int) int {
	if limit > 0 {
		return limit
	}
	return defaultRowLimit
}

func reportPeriod(q dispatch.SalesQuery) *domain.TimePeriod {
	if q.Start.IsZero() && q.End.IsZero() {
		return nil
	}
	return &domain.TimePeriod{Start: q.Start, End: q.End, Label: q.PeriodLabel}
}
