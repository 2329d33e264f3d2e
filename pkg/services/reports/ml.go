package reports

import (
	"context"
	"sync"
	"time"

	"github.com/de-tools/report-pilot/pkg/models/domain"
	"github.com/de-tools/report-pilot/pkg/services/dispatch"
	"github.com/de-tools/report-pilot/pkg/store/sales"
)

const (
	defaultHorizon         = 30
	defaultRecommendations = 5
	trainingWindowDays     = 90
)

// MLService implements the forecast and recommendation generators. Training
// is expensive relative to a dispatch, so the fitted model is memoized and
// shared across calls.
type MLService struct {
	store sales.Store
	now   func() time.Time

	mu    sync.Mutex
	model *linearModel
}

// NewMLService creates the ML report generator.
func NewMLService(store sales.Store) *MLService {
	return &MLService{store: store, now: time.Now}
}

// trainedModel returns the memoized revenue model, fitting it on the last 90
// days of daily revenue the first time it is needed.
func (s *MLService) trainedModel(ctx context.Context) (*linearModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.model != nil {
		return s.model, nil
	}

	now := s.now()
	series, err := s.store.RevenueByDay(ctx, now.AddDate(0, 0, -trainingWindowDays), now)
	if err != nil {
		return nil, err
	}
	model, err := fitLinearModel(series)
	if err != nil {
		return nil, err
	}
	s.model = model
	return model, nil
}

func (s *MLService) SalesForecast(ctx context.Context, q dispatch.ForecastQuery) (*domain.Report, error) {
	model, err := s.trainedModel(ctx)
	if err != nil {
		return nil, err
	}

	horizon := q.Horizon
	if horizon <= 0 {
		horizon = defaultHorizon
	}

	now := s.now()
	report := &domain.Report{
		Kind:        domain.ReportSalesForecast,
		Title:       "Predicción de Ventas",
		GeneratedAt: now,
	}

	var total float64
	for day := 1; day <= horizon; day++ {
		value := model.predict(day)
		total += value
		date := now.AddDate(0, 0, day)
		report.Predictions = append(report.Predictions, domain.Prediction{
			Date:  date,
			Label: date.Format("2006-01-02"),
			Value: value,
		})
	}

	report.Summary = map[string]interface{}{
		"horizonte_dias":   horizon,
		"total_proyectado": total,
		"promedio_diario":  total / float64(horizon),
		"tendencia":        model.trend(),
		"muestras_modelo":  model.samples,
	}
	return report, nil
}

// ProductForecast distributes the aggregate forecast across products in
// proportion to their revenue share in the training window.
func (s *MLService) ProductForecast(ctx context.Context, q dispatch.ForecastQuery) (*domain.Report, error) {
	model, err := s.trainedModel(ctx)
	if err != nil {
		return nil, err
	}

	horizon := q.Horizon
	if horizon <= 0 {
		horizon = defaultHorizon
	}
	limit := q.Limit
	if limit <= 0 {
		limit = defaultRowLimit
	}

	now := s.now()
	products, err := s.store.RevenueByProduct(ctx, now.AddDate(0, 0, -trainingWindowDays), now, limit)
	if err != nil {
		return nil, err
	}

	var windowTotal float64
	for _, p := range products {
		windowTotal += p.Revenue
	}

	var forecastTotal float64
	for day := 1; day <= horizon; day++ {
		forecastTotal += model.predict(day)
	}

	report := &domain.Report{
		Kind:        domain.ReportProductForecast,
		Title:       "Predicción por Producto",
		Headers:     []string{"Producto", "Participación %", "Proyección"},
		GeneratedAt: now,
		Summary: map[string]interface{}{
			"horizonte_dias":   horizon,
			"total_proyectado": forecastTotal,
		},
	}
	for _, p := range products {
		share := 0.0
		if windowTotal > 0 {
			share = p.Revenue / windowTotal
		}
		report.Rows = append(report.Rows, []interface{}{
			p.Key, share * 100, share * forecastTotal,
		})
	}
	return report, nil
}

func (s *MLService) Recommendations(ctx context.Context, q dispatch.PersonalQuery) (*domain.Report, error) {
	if q.UserID == "" {
		return nil, dispatch.ErrUserRequired
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultRecommendations
	}

	affinities, err := s.store.CoPurchases(ctx, q.UserID, limit)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{
		Kind:        domain.ReportRecommendations,
		Title:       "Recomendaciones",
		GeneratedAt: s.now(),
		Summary:     map[string]interface{}{"usuario": q.UserID},
	}
	for _, a := range affinities {
		report.Items = append(report.Items, domain.ScoredItem{
			ID:     a.ProductID,
			Name:   a.Name,
			Score:  a.Score,
			Reason: "comprado junto a productos de tu historial",
		})
	}
	return report, nil
}

// MLDashboard composes the other three ML generators into one report.
func (s *MLService) MLDashboard(ctx context.Context, q dispatch.PersonalQuery) (*domain.Report, error) {
	if q.UserID == "" {
		return nil, dispatch.ErrUserRequired
	}

	forecast, err := s.SalesForecast(ctx, dispatch.ForecastQuery{Horizon: q.Horizon})
	if err != nil {
		return nil, err
	}
	productForecast, err := s.ProductForecast(ctx, dispatch.ForecastQuery{Horizon: q.Horizon, Limit: q.Limit})
	if err != nil {
		return nil, err
	}
	recommendations, err := s.Recommendations(ctx, q)
	if err != nil {
		return nil, err
	}

	return &domain.Report{
		Kind:        domain.ReportMLDashboard,
		Title:       "Dashboard ML",
		Sections:    []*domain.Report{forecast, productForecast, recommendations},
		Summary:     forecast.Summary,
		GeneratedAt: s.now(),
	}, nil
}
