package reports

import (
	"context"
	"testing"
	"time"

	"github.com/de-tools/report-pilot/pkg/models/domain"
	"github.com/de-tools/report-pilot/pkg/models/store"
	"github.com/de-tools/report-pilot/pkg/services/dispatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMLService(fs *fakeStore) *MLService {
	svc := NewMLService(fs)
	svc.now = func() time.Time { return reportNow }
	return svc
}

func TestSalesForecast(t *testing.T) {
	start := reportNow.AddDate(0, 0, -3)
	fs := &fakeStore{byDay: dailySeries(start, 10, 20, 30)}
	svc := newTestMLService(fs)

	report, err := svc.SalesForecast(context.Background(), dispatch.ForecastQuery{Horizon: 7})

	require.NoError(t, err)
	assert.Equal(t, domain.ReportSalesForecast, report.Kind)
	require.Len(t, report.Predictions, 7)
	assert.Equal(t, reportNow.AddDate(0, 0, 1), report.Predictions[0].Date)
	assert.InDelta(t, 40.0, report.Predictions[0].Value, 1e-9)
	assert.InDelta(t, 100.0, report.Predictions[6].Value, 1e-9)
	assert.Equal(t, 7, report.Summary["horizonte_dias"])
	assert.Equal(t, "creciente", report.Summary["tendencia"])
}

func TestSalesForecastDefaultHorizon(t *testing.T) {
	fs := &fakeStore{byDay: dailySeries(reportNow.AddDate(0, 0, -5), 10, 20, 30)}
	svc := newTestMLService(fs)

	report, err := svc.SalesForecast(context.Background(), dispatch.ForecastQuery{})

	require.NoError(t, err)
	assert.Len(t, report.Predictions, defaultHorizon)
}

func TestSalesForecastMemoizesModel(t *testing.T) {
	fs := &fakeStore{byDay: dailySeries(reportNow.AddDate(0, 0, -5), 10, 20, 30)}
	svc := newTestMLService(fs)

	_, err := svc.SalesForecast(context.Background(), dispatch.ForecastQuery{Horizon: 7})
	require.NoError(t, err)
	_, err = svc.SalesForecast(context.Background(), dispatch.ForecastQuery{Horizon: 14})
	require.NoError(t, err)

	assert.Equal(t, 1, fs.byDayCalls)
}

func TestSalesForecastWithoutHistory(t *testing.T) {
	fs := &fakeStore{}
	svc := newTestMLService(fs)

	report, err := svc.SalesForecast(context.Background(), dispatch.ForecastQuery{Horizon: 7})

	assert.Nil(t, report)
	assert.ErrorContains(t, err, "not enough history")
}

func TestProductForecastDistributesByRevenueShare(t *testing.T) {
	fs := &fakeStore{
		byDay: dailySeries(reportNow.AddDate(0, 0, -3), 100, 100, 100),
		byProduct: []store.GroupedRevenue{
			{Key: "Teclado", Revenue: 750},
			{Key: "Mouse", Revenue: 250},
		},
	}
	svc := newTestMLService(fs)

	report, err := svc.ProductForecast(context.Background(), dispatch.ForecastQuery{Horizon: 10})

	require.NoError(t, err)
	require.Len(t, report.Rows, 2)
	// Flat history projects 100 per day, 1000 over the horizon.
	assert.InDelta(t, 75.0, report.Rows[0][1].(float64), 1e-9)
	assert.InDelta(t, 750.0, report.Rows[0][2].(float64), 1e-9)
	assert.InDelta(t, 25.0, report.Rows[1][1].(float64), 1e-9)
	assert.InDelta(t, 250.0, report.Rows[1][2].(float64), 1e-9)
}

func TestRecommendations(t *testing.T) {
	fs := &fakeStore{affinities: []store.ProductAffinity{
		{ProductID: 9, Name: "Monitor", Score: 12},
		{ProductID: 4, Name: "Webcam", Score: 7},
	}}
	svc := newTestMLService(fs)

	report, err := svc.Recommendations(context.Background(), dispatch.PersonalQuery{UserID: "u1"})

	require.NoError(t, err)
	assert.Equal(t, domain.ReportRecommendations, report.Kind)
	assert.Equal(t, "u1", fs.lastUserID)
	assert.Equal(t, defaultRecommendations, fs.lastLimit)
	require.Len(t, report.Items, 2)
	assert.Equal(t, "Monitor", report.Items[0].Name)
	assert.InDelta(t, 12.0, report.Items[0].Score, 1e-9)
}

func TestRecommendationsRequireUser(t *testing.T) {
	svc := newTestMLService(&fakeStore{})

	report, err := svc.Recommendations(context.Background(), dispatch.PersonalQuery{})

	assert.Nil(t, report)
	assert.ErrorIs(t, err, dispatch.ErrUserRequired)
}

func TestMLDashboardComposesSections(t *testing.T) {
	fs := &fakeStore{
		byDay:      dailySeries(reportNow.AddDate(0, 0, -3), 100, 110, 120),
		byProduct:  []store.GroupedRevenue{{Key: "Teclado", Revenue: 500}},
		affinities: []store.ProductAffinity{{ProductID: 9, Name: "Monitor", Score: 3}},
	}
	svc := newTestMLService(fs)

	report, err := svc.MLDashboard(context.Background(), dispatch.PersonalQuery{UserID: "u1", Horizon: 7})

	require.NoError(t, err)
	assert.Equal(t, domain.ReportMLDashboard, report.Kind)
	require.Len(t, report.Sections, 3)
	assert.Equal(t, domain.ReportSalesForecast, report.Sections[0].Kind)
	assert.Equal(t, domain.ReportProductForecast, report.Sections[1].Kind)
	assert.Equal(t, domain.ReportRecommendations, report.Sections[2].Kind)
}

func TestMLDashboardRequiresUser(t *testing.T) {
	svc := newTestMLService(&fakeStore{})

	report, err := svc.MLDashboard(context.Background(), dispatch.PersonalQuery{})

	assert.Nil(t, report)
	assert.ErrorIs(t, err, dispatch.ErrUserRequired)
}
