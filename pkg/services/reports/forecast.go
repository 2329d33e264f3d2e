package reports

import (
	"fmt"
	"time"

	"github.com/de-tools/report-pilot/pkg/models/store"
)

// linearModel is a least-squares fit of daily revenue against day index.
type linearModel struct {
	slope     float64
	intercept float64
	base      time.Time
	lastIndex float64
	samples   int
}

// fitLinearModel trains on a daily revenue series. It needs at least two
// points; with fewer there is no trend to extrapolate.
func fitLinearModel(series []store.DailyRevenue) (*linearModel, error) {
	if len(series) < 2 {
		return nil, fmt.Errorf("not enough history to train: %d points", len(series))
	}

	base := series[0].Day
	var sumX, sumY, sumXY, sumXX float64
	var lastIndex float64
	for _, point := range series {
		x := point.Day.Sub(base).Hours() / 24
		y := point.Revenue
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
		if x > lastIndex {
			lastIndex = x
		}
	}

	n := float64(len(series))
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return nil, fmt.Errorf("degenerate history: all points on the same day")
	}

	slope := (n*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / n

	return &linearModel{
		slope:     slope,
		intercept: intercept,
		base:      base,
		lastIndex: lastIndex,
		samples:   len(series),
	}, nil
}

// predict extrapolates revenue for the given day offset past the end of the
// training series. Negative projections clamp to zero.
func (m *linearModel) predict(daysAhead int) float64 {
	x := m.lastIndex + float64(daysAhead)
	value := m.intercept + m.slope*x
	if value < 0 {
		return 0
	}
	return value
}

func (m *linearModel) trend() string {
	switch {
	case m.slope > 0:
		return "creciente"
	case m.slope < 0:
		return "decreciente"
	default:
		return "estable"
	}
}
