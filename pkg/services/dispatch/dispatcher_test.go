package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/de-tools/report-pilot/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSales struct{ mock.Mock }

func (m *mockSales) SalesSummary(ctx context.Context, q SalesQuery) (*domain.Report, error) {
	args := m.Called(ctx, q)
	return reportArg(args.Get(0)), args.Error(1)
}

func (m *mockSales) SalesByProduct(ctx context.Context, q SalesQuery) (*domain.Report, error) {
	args := m.Called(ctx, q)
	return reportArg(args.Get(0)), args.Error(1)
}

func (m *mockSales) SalesByClient(ctx context.Context, q SalesQuery) (*domain.Report, error) {
	args := m.Called(ctx, q)
	return reportArg(args.Get(0)), args.Error(1)
}

func (m *mockSales) SalesByCategory(ctx context.Context, q SalesQuery) (*domain.Report, error) {
	args := m.Called(ctx, q)
	return reportArg(args.Get(0)), args.Error(1)
}

func (m *mockSales) SalesByPeriod(ctx context.Context, q SalesQuery) (*domain.Report, error) {
	args := m.Called(ctx, q)
	return reportArg(args.Get(0)), args.Error(1)
}

type mockAnalytics struct{ mock.Mock }

func (m *mockAnalytics) RFMAnalysis(ctx context.Context, q SalesQuery) (*domain.Report, error) {
	args := m.Called(ctx, q)
	return reportArg(args.Get(0)), args.Error(1)
}

func (m *mockAnalytics) ABCAnalysis(ctx context.Context, q SalesQuery) (*domain.Report, error) {
	args := m.Called(ctx, q)
	return reportArg(args.Get(0)), args.Error(1)
}

func (m *mockAnalytics) Comparative(ctx context.Context, q CompareQuery) (*domain.Report, error) {
	args := m.Called(ctx, q)
	return reportArg(args.Get(0)), args.Error(1)
}

func (m *mockAnalytics) ExecutiveDashboard(ctx context.Context, q SalesQuery) (*domain.Report, error) {
	args := m.Called(ctx, q)
	return reportArg(args.Get(0)), args.Error(1)
}

func (m *mockAnalytics) InventoryStatus(ctx context.Context, q SalesQuery) (*domain.Report, error) {
	args := m.Called(ctx, q)
	return reportArg(args.Get(0)), args.Error(1)
}

type mockML struct{ mock.Mock }

func (m *mockML) SalesForecast(ctx context.Context, q ForecastQuery) (*domain.Report, error) {
	args := m.Called(ctx, q)
	return reportArg(args.Get(0)), args.Error(1)
}

func (m *mockML) ProductForecast(ctx context.Context, q ForecastQuery) (*domain.Report, error) {
	args := m.Called(ctx, q)
	return reportArg(args.Get(0)), args.Error(1)
}

func (m *mockML) Recommendations(ctx context.Context, q PersonalQuery) (*domain.Report, error) {
	args := m.Called(ctx, q)
	return reportArg(args.Get(0)), args.Error(1)
}

func (m *mockML) MLDashboard(ctx context.Context, q PersonalQuery) (*domain.Report, error) {
	args := m.Called(ctx, q)
	return reportArg(args.Get(0)), args.Error(1)
}

func reportArg(v interface{}) *domain.Report {
	if v == nil {
		return nil
	}
	return v.(*domain.Report)
}

func newMockedDispatcher() (*Dispatcher, *mockSales, *mockAnalytics, *mockML) {
	sales := &mockSales{}
	analytics := &mockAnalytics{}
	ml := &mockML{}
	return NewDispatcher(sales, analytics, ml), sales, analytics, ml
}

func TestDispatchTranslatesSalesQuery(t *testing.T) {
	d, sales, _, _ := newMockedDispatcher()

	start := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.September, 30, 23, 59, 59, 0, time.UTC)
	minAmount := 100.0

	cmd := domain.ParsedCommand{
		Kind: domain.ReportSalesByProduct,
		Params: domain.Params{
			StartDate:  &start,
			EndDate:    &end,
			PeriodText: "mes anterior",
			GroupBy:    domain.GroupByProduct,
			Limit:      5,
			MinAmount:  &minAmount,
			Currency:   "USD",
		},
	}

	expected := SalesQuery{
		Start:       start,
		End:         end,
		PeriodLabel: "mes anterior",
		GroupBy:     domain.GroupByProduct,
		Limit:       5,
		MinAmount:   &minAmount,
		Currency:    "USD",
	}
	generated := &domain.Report{Kind: domain.ReportSalesByProduct}
	sales.On("SalesByProduct", mock.Anything, expected).Return(generated, nil)

	report, err := d.Dispatch(context.Background(), cmd, nil)

	require.NoError(t, err)
	assert.Equal(t, generated, report)
	sales.AssertExpectations(t)
}

func TestDispatchRoutesEveryKind(t *testing.T) {
	d, sales, analytics, ml := newMockedDispatcher()
	user := &domain.User{ID: "u1", Name: "Ana"}

	sales.On("SalesSummary", mock.Anything, mock.Anything).Return(&domain.Report{}, nil)
	sales.On("SalesByProduct", mock.Anything, mock.Anything).Return(&domain.Report{}, nil)
	sales.On("SalesByClient", mock.Anything, mock.Anything).Return(&domain.Report{}, nil)
	sales.On("SalesByCategory", mock.Anything, mock.Anything).Return(&domain.Report{}, nil)
	sales.On("SalesByPeriod", mock.Anything, mock.Anything).Return(&domain.Report{}, nil)
	analytics.On("RFMAnalysis", mock.Anything, mock.Anything).Return(&domain.Report{}, nil)
	analytics.On("ABCAnalysis", mock.Anything, mock.Anything).Return(&domain.Report{}, nil)
	analytics.On("Comparative", mock.Anything, mock.Anything).Return(&domain.Report{}, nil)
	analytics.On("ExecutiveDashboard", mock.Anything, mock.Anything).Return(&domain.Report{}, nil)
	analytics.On("InventoryStatus", mock.Anything, mock.Anything).Return(&domain.Report{}, nil)
	ml.On("SalesForecast", mock.Anything, mock.Anything).Return(&domain.Report{}, nil)
	ml.On("ProductForecast", mock.Anything, mock.Anything).Return(&domain.Report{}, nil)
	ml.On("Recommendations", mock.Anything, mock.Anything).Return(&domain.Report{}, nil)
	ml.On("MLDashboard", mock.Anything, mock.Anything).Return(&domain.Report{}, nil)

	for _, entry := range domain.Catalog() {
		report, err := d.Dispatch(context.Background(), domain.ParsedCommand{Kind: entry.Kind}, user)
		require.NoError(t, err, "kind: %s", entry.Kind)
		assert.NotNil(t, report, "kind: %s", entry.Kind)
	}
}

func TestDispatchUnsupportedKind(t *testing.T) {
	d, _, _, _ := newMockedDispatcher()

	report, err := d.Dispatch(context.Background(), domain.ParsedCommand{Kind: "inexistente"}, nil)

	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrUnsupportedReport)
}

func TestDispatchPersonalizedReportRequiresUser(t *testing.T) {
	d, _, _, ml := newMockedDispatcher()

	for _, kind := range []domain.ReportKind{domain.ReportRecommendations, domain.ReportMLDashboard} {
		report, err := d.Dispatch(context.Background(), domain.ParsedCommand{Kind: kind}, nil)
		assert.Nil(t, report, "kind: %s", kind)
		assert.ErrorIs(t, err, ErrUserRequired, "kind: %s", kind)
	}

	ml.AssertNotCalled(t, "Recommendations", mock.Anything, mock.Anything)
	ml.AssertNotCalled(t, "MLDashboard", mock.Anything, mock.Anything)
}

func TestDispatchTranslatesPersonalQuery(t *testing.T) {
	d, _, _, ml := newMockedDispatcher()

	cmd := domain.ParsedCommand{
		Kind:   domain.ReportRecommendations,
		Params: domain.Params{ForecastDays: 14, Limit: 3},
	}
	expected := PersonalQuery{UserID: "u1", Horizon: 14, Limit: 3}
	ml.On("Recommendations", mock.Anything, expected).Return(&domain.Report{}, nil)

	_, err := d.Dispatch(context.Background(), cmd, &domain.User{ID: "u1"})

	require.NoError(t, err)
	ml.AssertExpectations(t)
}

func TestDispatchWrapsGeneratorFailure(t *testing.T) {
	d, sales, _, _ := newMockedDispatcher()

	cause := errors.New("query timeout")
	sales.On("SalesSummary", mock.Anything, mock.Anything).Return(nil, cause)

	report, err := d.Dispatch(context.Background(), domain.ParsedCommand{Kind: domain.ReportSalesBasic}, nil)

	assert.Nil(t, report)
	var genErr *GeneratorError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, domain.ReportSalesBasic, genErr.Kind)
	assert.ErrorIs(t, err, cause)
}

func TestDispatchRecoversGeneratorPanic(t *testing.T) {
	d, sales, _, _ := newMockedDispatcher()

	sales.On("SalesSummary", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		panic("nil store")
	}).Return(nil, nil)

	report, err := d.Dispatch(context.Background(), domain.ParsedCommand{Kind: domain.ReportSalesBasic}, nil)

	assert.Nil(t, report)
	var genErr *GeneratorError
	require.ErrorAs(t, err, &genErr)
	assert.Contains(t, genErr.Error(), "panic")
}
