package parser

import (
	"testing"

	"github.com/de-tools/report-pilot/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected domain.ReportKind
	}{
		{
			name:     "basic sales report",
			text:     "reporte de ventas del ultimo mes",
			expected: domain.ReportSalesBasic,
		},
		{
			name:     "sales by product beats basic sales on priority",
			text:     "ventas por producto de esta semana",
			expected: domain.ReportSalesByProduct,
		},
		{
			name:     "rfm analysis",
			text:     "analisis rfm de clientes en excel",
			expected: domain.ReportRFM,
		},
		{
			name:     "sales forecast via plural keyword",
			text:     "predicciones de ventas para los proximos 7 dias",
			expected: domain.ReportSalesForecast,
		},
		{
			name:     "ml dashboard beats executive dashboard",
			text:     "dashboard ml en pdf",
			expected: domain.ReportMLDashboard,
		},
		{
			name:     "product forecast beats sales forecast on specificity",
			text:     "prediccion por producto para 2 semanas",
			expected: domain.ReportProductForecast,
		},
		{
			name:     "inventory keyword owns productos agotados",
			text:     "productos agotados",
			expected: domain.ReportInventory,
		},
		{
			name:     "comparative via vs",
			text:     "ventas de septiembre vs octubre",
			expected: domain.ReportComparative,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classify(tt.text, domain.Catalog())
			assert.True(t, result.matched)
			assert.Equal(t, tt.expected, result.entry.Kind)
		})
	}
}

// Every catalog keyword, issued alone as a command, must classify to the entry
// that declares it.
func TestClassifyEveryKeywordResolvesToItsEntry(t *testing.T) {
	for _, entry := range domain.Catalog() {
		for _, keyword := range entry.Keywords {
			result := classify(keyword, domain.Catalog())
			assert.True(t, result.matched, "keyword %q did not match anything", keyword)
			assert.Equal(t, entry.Kind, result.entry.Kind,
				"keyword %q classified as %s", keyword, result.entry.Kind)
		}
	}
}

func TestClassifyFallsBackToBasicSales(t *testing.T) {
	result := classify("cualquier cosa sin sentido", domain.Catalog())

	assert.False(t, result.matched)
	assert.Equal(t, domain.ReportSalesBasic, result.entry.Kind)
	assert.Empty(t, result.alternatives)
}

func TestClassifyPrefixBonus(t *testing.T) {
	prefixed := classify("ventas", domain.Catalog())
	embedded := classify("dame ventas", domain.Catalog())

	require.True(t, prefixed.matched)
	require.True(t, embedded.matched)
	assert.Equal(t, prefixed.entry.Kind, embedded.entry.Kind)
	assert.Greater(t, prefixed.score, embedded.score)
}

func TestClassifyAlternatives(t *testing.T) {
	result := classify("ventas por producto de esta semana", domain.Catalog())

	require.True(t, result.matched)
	assert.LessOrEqual(t, len(result.alternatives), maxAlternatives)
	for i, alt := range result.alternatives {
		assert.NotEqual(t, result.entry.Kind, alt.Kind)
		assert.LessOrEqual(t, alt.Score, result.score)
		if i > 0 {
			assert.LessOrEqual(t, alt.Score, result.alternatives[i-1].Score)
		}
	}
}

func TestClassifyTieBreaksLexicographically(t *testing.T) {
	tied := []domain.CatalogEntry{
		{Kind: "alfa", Name: "Alfa", Keywords: []string{"empate"}, Priority: 5},
		{Kind: "beta", Name: "Beta", Keywords: []string{"empate"}, Priority: 5},
	}

	result := classify("quiero un empate", tied)

	require.True(t, result.matched)
	assert.Equal(t, domain.ReportKind("alfa"), result.entry.Kind)
}

func TestContainsPhrase(t *testing.T) {
	tests := []struct {
		text     string
		phrase   string
		expected bool
	}{
		{"analisis abc de productos", "abc", true},
		{"clasificacion abcdef", "abc", false},
		{"ventas", "ventas", true},
		{"preventas de hoy", "ventas", false},
		{"reporte de ventas", "reporte de ventas", true},
		{"", "ventas", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, containsPhrase(tt.text, tt.phrase),
			"containsPhrase(%q, %q)", tt.text, tt.phrase)
	}
}
