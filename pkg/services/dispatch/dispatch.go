package dispatch

import (
	"context"
	"time"

	"github.com/de-tools/report-pilot/pkg/models/domain"
)

// SalesQuery carries the parameters shared by the tabular sales and
// analytics generators.
type SalesQuery struct {
	Start       time.Time
	End         time.Time
	PeriodLabel string
	GroupBy     domain.GroupBy
	Limit       int
	MinAmount   *float64
	MaxAmount   *float64
	Currency    string
}

// CompareQuery carries the two windows of a comparative report. Nil windows
// mean the parser could not infer them and the generator applies its own
// defaults.
type CompareQuery struct {
	Period1 *domain.Window
	Period2 *domain.Window
}

// ForecastQuery carries the horizon of a forecast generator.
type ForecastQuery struct {
	Horizon int
	Limit   int
}

// PersonalQuery carries the parameters of user-scoped ML generators.
type PersonalQuery struct {
	UserID  string
	Horizon int
	Limit   int
}

// SalesReporter is the family of five basic sales aggregations.
type SalesReporter interface {
	SalesSummary(ctx context.Context, q SalesQuery) (*domain.Report, error)
	SalesByProduct(ctx context.Context, q SalesQuery) (*domain.Report, error)
	SalesByClient(ctx context.Context, q SalesQuery) (*domain.Report, error)
	SalesByCategory(ctx context.Context, q SalesQuery) (*domain.Report, error)
	SalesByPeriod(ctx context.Context, q SalesQuery) (*domain.Report, error)
}

// AnalyticsReporter is the family of five advanced analytics generators.
type AnalyticsReporter interface {
	RFMAnalysis(ctx context.Context, q SalesQuery) (*domain.Report, error)
	ABCAnalysis(ctx context.Context, q SalesQuery) (*domain.Report, error)
	Comparative(ctx context.Context, q CompareQuery) (*domain.Report, error)
	ExecutiveDashboard(ctx context.Context, q SalesQuery) (*domain.Report, error)
	InventoryStatus(ctx context.Context, q SalesQuery) (*domain.Report, error)
}

// MLReporter is the family of four forecast/recommendation generators.
type MLReporter interface {
	SalesForecast(ctx context.Context, q ForecastQuery) (*domain.Report, error)
	ProductForecast(ctx context.Context, q ForecastQuery) (*domain.Report, error)
	Recommendations(ctx context.Context, q PersonalQuery) (*domain.Report, error)
	MLDashboard(ctx context.Context, q PersonalQuery) (*domain.Report, error)
}
