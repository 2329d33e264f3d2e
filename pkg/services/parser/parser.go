package parser

import (
	"context"
	"time"

	"github.com/de-tools/report-pilot/pkg/models/domain"
	"github.com/rs/zerolog"
)

// Parser interprets free-text report commands against the report catalog.
// It is stateless apart from the read-only catalog and safe for concurrent
// use.
type Parser struct {
	catalog []domain.CatalogEntry
	now     func() time.Time
}

// Option customizes a Parser.
type Option func(*Parser)

// WithClock overrides the time source, used by tests to pin "now".
func WithClock(now func() time.Time) Option {
	return func(p *Parser) { p.now = now }
}

// WithCatalog overrides the report catalog.
func WithCatalog(catalog []domain.CatalogEntry) Option {
	return func(p *Parser) { p.catalog = catalog }
}

// New creates a Parser over the process-wide report catalog.
func New(opts ...Option) *Parser {
	p := &Parser{
		catalog: domain.Catalog(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse runs the full interpretation pipeline: normalization,
// classification, the extraction stages the matched report kind calls for,
// confidence scoring and format validation. Extraction stages never fail the
// command; an expression that cannot be resolved simply leaves its field
// absent.
func (p *Parser) Parse(ctx context.Context, raw string) domain.ParsedCommand {
	logger := zerolog.Ctx(ctx)

	text := Normalize(raw)
	if text == "" {
		return domain.ParsedCommand{
			Format: domain.FormatJSON,
			Error:  "comando vacío",
		}
	}

	result := classify(text, p.catalog)
	entry := result.entry

	cmd := domain.ParsedCommand{
		Success:      true,
		Kind:         entry.Kind,
		Name:         entry.Name,
		Description:  entry.Description,
		Format:       extractFormat(text),
		Alternatives: result.alternatives,
	}

	now := p.now()

	if entry.ML {
		// ML reports predict forward from now; they never take a
		// historical range.
		cmd.Params.ForecastDays = extractHorizon(text)
	} else {
		dates := extractDates(text, now)
		start, end := dates.start, dates.end
		cmd.Params.StartDate = &start
		cmd.Params.EndDate = &end
		cmd.Params.PeriodText = dates.label
	}

	cmd.Params.GroupBy = extractGrouping(text)

	filters := extractNumericFilters(text)
	cmd.Params.Limit = filters.limit
	cmd.Params.MinAmount = filters.minAmount
	cmd.Params.MaxAmount = filters.maxAmount
	cmd.Params.Currency = filters.currency

	if entry.Kind == domain.ReportComparative {
		cmd.Params.Period1, cmd.Params.Period2 = extractComparisonPeriods(text, now)
	}

	cmd.Confidence = scoreConfidence(text, result.matched, cmd)
	cmd = validateFormat(cmd, entry)

	logger.Debug().
		Str("report", string(cmd.Kind)).
		Str("format", string(cmd.Format)).
		Float64("confidence", cmd.Confidence).
		Msg("command parsed")

	return cmd
}

// Catalog exposes the parser's catalog, used by the orchestrator for the
// list intent.
func (p *Parser) Catalog() []domain.CatalogEntry {
	return p.catalog
}
