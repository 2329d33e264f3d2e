package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/de-tools/report-pilot/pkg/models/domain"
	"github.com/de-tools/report-pilot/pkg/services/parser"
	"github.com/rs/zerolog"
)

// Interpreter turns raw text into a ParsedCommand.
type Interpreter interface {
	Parse(ctx context.Context, raw string) domain.ParsedCommand
	Catalog() []domain.CatalogEntry
}

// Router executes a parsed command against its report generator.
type Router interface {
	Dispatch(ctx context.Context, cmd domain.ParsedCommand, user *domain.User) (*domain.Report, error)
}

// Processor is the top-level entry point: it resolves the command intent,
// runs interpretation and dispatch for report commands, and always returns a
// structured outcome. No error or panic from the stages below escapes it.
type Processor struct {
	interpreter Interpreter
	router      Router
}

// NewProcessor wires the orchestrator.
func NewProcessor(interpreter Interpreter, router Router) *Processor {
	return &Processor{interpreter: interpreter, router: router}
}

var helpPhrases = []string{
	"ayuda", "help", "que puedes hacer", "como funciona", "como se usa",
	"que comandos",
}

var listPhrases = []string{
	"que reportes", "reportes disponibles", "lista de reportes",
	"listar reportes", "catalogo de reportes", "catalogo",
}

// Process interprets raw text and, for report commands, dispatches the
// matched generator. Help and catalog-listing intents bypass extraction
// entirely.
func (p *Processor) Process(ctx context.Context, raw string, user *domain.User) domain.CommandOutcome {
	logger := zerolog.Ctx(ctx)
	text := parser.Normalize(raw)

	switch sniffIntent(text) {
	case domain.IntentHelp:
		return p.helpOutcome()
	case domain.IntentListCatalog:
		return p.catalogOutcome()
	}

	cmd := p.interpreter.Parse(ctx, raw)
	if cmd.Error != "" {
		return domain.CommandOutcome{
			Intent:  domain.IntentReport,
			Command: cmd,
			Error:   cmd.Error,
		}
	}

	if cmd.Confidence < parser.LowConfidenceThreshold {
		outcome := domain.CommandOutcome{
			Intent:      domain.IntentReport,
			Command:     cmd,
			Suggestions: cmd.Alternatives,
			Error:       "no pude interpretar el comando con suficiente certeza",
		}
		if len(cmd.Alternatives) > 0 {
			outcome.Message = fmt.Sprintf("¿Quisiste decir %q?", cmd.Alternatives[0].Name)
		}
		return outcome
	}

	report, err := p.router.Dispatch(ctx, cmd, user)
	if err != nil {
		logger.Warn().Err(err).Str("report", string(cmd.Kind)).Msg("dispatch failed")
		return domain.CommandOutcome{
			Intent:      domain.IntentReport,
			Command:     cmd,
			Error:       err.Error(),
			Suggestions: cmd.Alternatives,
		}
	}

	return domain.CommandOutcome{
		Success:     true,
		Intent:      domain.IntentReport,
		Command:     cmd,
		Report:      report,
		Message:     cmd.Warning,
		Suggestions: cmd.Alternatives,
	}
}

// Parse runs interpretation only, for callers wanting a dry run without
// executing any generator.
func (p *Processor) Parse(ctx context.Context, raw string) domain.ParsedCommand {
	return p.interpreter.Parse(ctx, raw)
}

// Catalog exposes the report catalog for listing surfaces.
func (p *Processor) Catalog() []domain.CatalogEntry {
	return p.interpreter.Catalog()
}

func sniffIntent(text string) domain.Intent {
	for _, phrase := range helpPhrases {
		if containsPhrase(text, phrase) {
			return domain.IntentHelp
		}
	}
	for _, phrase := range listPhrases {
		if containsPhrase(text, phrase) {
			return domain.IntentListCatalog
		}
	}
	return domain.IntentReport
}

func containsPhrase(text, phrase string) bool {
	return strings.Contains(" "+text+" ", " "+phrase+" ")
}

func (p *Processor) helpOutcome() domain.CommandOutcome {
	return domain.CommandOutcome{
		Success: true,
		Intent:  domain.IntentHelp,
		Command: domain.ParsedCommand{Success: true, Confidence: 1},
		Message: "Pide un reporte en lenguaje natural, por ejemplo: " +
			`"ventas del último mes en pdf", "top 5 productos de esta semana", ` +
			`"predicción de ventas para los próximos 7 días". ` +
			`Escribe "reportes disponibles" para ver el catálogo.`,
	}
}

func (p *Processor) catalogOutcome() domain.CommandOutcome {
	report := &domain.Report{
		Title:   "Reportes disponibles",
		Headers: []string{"Identificador", "Nombre", "Descripción", "Formatos"},
	}
	for _, entry := range p.interpreter.Catalog() {
		formats := ""
		for i, f := range entry.Formats {
			if i > 0 {
				formats += ", "
			}
			formats += string(f)
		}
		report.Rows = append(report.Rows, []interface{}{
			string(entry.Kind), entry.Name, entry.Description, formats,
		})
	}

	return domain.CommandOutcome{
		Success: true,
		Intent:  domain.IntentListCatalog,
		Command: domain.ParsedCommand{Success: true, Confidence: 1},
		Report:  report,
	}
}
