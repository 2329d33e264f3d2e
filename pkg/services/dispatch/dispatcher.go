package dispatch

import (
	"context"
	"fmt"

	"github.com/de-tools/report-pilot/pkg/models/domain"
	"github.com/rs/zerolog"
)

// Dispatcher routes a parsed command to exactly one generator, translating
// the parser's parameter vocabulary into each family's query type. Generator
// failures never escape as panics: they come back wrapped in GeneratorError.
type Dispatcher struct {
	sales     SalesReporter
	analytics AnalyticsReporter
	ml        MLReporter
}

// NewDispatcher wires the three generator families.
func NewDispatcher(sales SalesReporter, analytics AnalyticsReporter, ml MLReporter) *Dispatcher {
	return &Dispatcher{
		sales:     sales,
		analytics: analytics,
		ml:        ml,
	}
}

// Dispatch invokes the generator matching cmd.Kind. The user is required
// only by personalized ML reports; passing nil for the rest is fine.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd domain.ParsedCommand, user *domain.User) (report *domain.Report, err error) {
	logger := zerolog.Ctx(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Str("report", string(cmd.Kind)).Msg("generator panicked")
			report = nil
			err = &GeneratorError{Kind: cmd.Kind, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	report, err = d.route(ctx, cmd, user)
	if err != nil {
		if _, ok := err.(*GeneratorError); !ok && err != ErrUnsupportedReport {
			err = &GeneratorError{Kind: cmd.Kind, Err: err}
		}
		return nil, err
	}
	return report, nil
}

func (d *Dispatcher) route(ctx context.Context, cmd domain.ParsedCommand, user *domain.User) (*domain.Report, error) {
	switch cmd.Kind {
	case domain.ReportSalesBasic:
		return d.sales.SalesSummary(ctx, salesQuery(cmd.Params))
	case domain.ReportSalesByProduct:
		return d.sales.SalesByProduct(ctx, salesQuery(cmd.Params))
	case domain.ReportSalesByClient:
		return d.sales.SalesByClient(ctx, salesQuery(cmd.Params))
	case domain.ReportSalesByCategory:
		return d.sales.SalesByCategory(ctx, salesQuery(cmd.Params))
	case domain.ReportSalesByPeriod:
		return d.sales.SalesByPeriod(ctx, salesQuery(cmd.Params))

	case domain.ReportRFM:
		return d.analytics.RFMAnalysis(ctx, salesQuery(cmd.Params))
	case domain.ReportABC:
		return d.analytics.ABCAnalysis(ctx, salesQuery(cmd.Params))
	case domain.ReportComparative:
		return d.analytics.Comparative(ctx, CompareQuery{
			Period1: cmd.Params.Period1,
			Period2: cmd.Params.Period2,
		})
	case domain.ReportExecutive:
		return d.analytics.ExecutiveDashboard(ctx, salesQuery(cmd.Params))
	case domain.ReportInventory:
		return d.analytics.InventoryStatus(ctx, salesQuery(cmd.Params))

	case domain.ReportSalesForecast:
		return d.ml.SalesForecast(ctx, ForecastQuery{
			Horizon: cmd.Params.ForecastDays,
			Limit:   cmd.Params.Limit,
		})
	case domain.ReportProductForecast:
		return d.ml.ProductForecast(ctx, ForecastQuery{
			Horizon: cmd.Params.ForecastDays,
			Limit:   cmd.Params.Limit,
		})
	case domain.ReportRecommendations:
		q, err := personalQuery(cmd.Params, user)
		if err != nil {
			return nil, err
		}
		return d.ml.Recommendations(ctx, q)
	case domain.ReportMLDashboard:
		q, err := personalQuery(cmd.Params, user)
		if err != nil {
			return nil, err
		}
		return d.ml.MLDashboard(ctx, q)
	}

	return nil, ErrUnsupportedReport
}

func salesQuery(params domain.Params) SalesQuery {
	q := SalesQuery{
		PeriodLabel: params.PeriodText,
		GroupBy:     params.GroupBy,
		Limit:       params.Limit,
		MinAmount:   params.MinAmount,
		MaxAmount:   params.MaxAmount,
		Currency:    params.Currency,
	}
	if params.StartDate != nil {
		q.Start = *params.StartDate
	}
	if params.EndDate != nil {
		q.End = *params.EndDate
	}
	return q
}

func personalQuery(params domain.Params, user *domain.User) (PersonalQuery, error) {
	if user == nil || user.ID == "" {
		return PersonalQuery{}, ErrUserRequired
	}
	return PersonalQuery{
		UserID:  user.ID,
		Horizon: params.ForecastDays,
		Limit:   params.Limit,
	}, nil
}
