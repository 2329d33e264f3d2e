package reports

import (
	"testing"
	"time"

	"github.com/de-tools/report-pilot/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dailySeries(start time.Time, revenues ...float64) []store.DailyRevenue {
	series := make([]store.DailyRevenue, len(revenues))
	for i, revenue := range revenues {
		series[i] = store.DailyRevenue{Day: start.AddDate(0, 0, i), Revenue: revenue}
	}
	return series
}

func TestFitLinearModel(t *testing.T) {
	start := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	model, err := fitLinearModel(dailySeries(start, 10, 20, 30))

	require.NoError(t, err)
	assert.InDelta(t, 10.0, model.slope, 1e-9)
	assert.InDelta(t, 10.0, model.intercept, 1e-9)
	assert.InDelta(t, 2.0, model.lastIndex, 1e-9)
	assert.Equal(t, 3, model.samples)

	// One day past the series continues the straight line.
	assert.InDelta(t, 40.0, model.predict(1), 1e-9)
	assert.InDelta(t, 70.0, model.predict(4), 1e-9)
	assert.Equal(t, "creciente", model.trend())
}

func TestFitLinearModelFlatSeries(t *testing.T) {
	start := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	model, err := fitLinearModel(dailySeries(start, 100, 100, 100))

	require.NoError(t, err)
	assert.InDelta(t, 0.0, model.slope, 1e-9)
	assert.InDelta(t, 100.0, model.predict(10), 1e-9)
	assert.Equal(t, "estable", model.trend())
}

func TestFitLinearModelNeedsTwoPoints(t *testing.T) {
	start := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	_, err := fitLinearModel(nil)
	assert.Error(t, err)

	_, err = fitLinearModel(dailySeries(start, 42))
	assert.Error(t, err)
}

func TestFitLinearModelRejectsSingleDayHistory(t *testing.T) {
	day := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	series := []store.DailyRevenue{
		{Day: day, Revenue: 10},
		{Day: day, Revenue: 20},
	}

	_, err := fitLinearModel(series)
	assert.ErrorContains(t, err, "degenerate")
}

func TestPredictClampsNegativeProjection(t *testing.T) {
	start := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	model, err := fitLinearModel(dailySeries(start, 100, 50, 0))

	require.NoError(t, err)
	assert.Equal(t, "decreciente", model.trend())
	assert.InDelta(t, 0.0, model.predict(5), 1e-9)
}
