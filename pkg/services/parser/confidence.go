package parser

import (
	"strings"

	"github.com/de-tools/report-pilot/pkg/models/domain"
)

// LowConfidenceThreshold is the score below which the orchestrator offers
// alternatives instead of dispatching.
const LowConfidenceThreshold = 0.3

// scoreConfidence sums independent signal bonuses into a [0,1] score. Adding
// a signal to an otherwise-fixed command never lowers the score.
func scoreConfidence(text string, matched bool, cmd domain.ParsedCommand) float64 {
	var confidence float64

	if matched {
		confidence += 0.4
	}
	if cmd.Params.StartDate != nil && cmd.Params.EndDate != nil {
		confidence += 0.2
	}
	if cmd.Format == domain.FormatPDF || cmd.Format == domain.FormatExcel {
		confidence += 0.1
	}
	if cmd.Params.GroupBy != "" {
		confidence += 0.15
	}
	if len(strings.Fields(text)) >= 5 {
		confidence += 0.15
	}

	if confidence > 1 {
		confidence = 1
	}
	return confidence
}

// validateFormat downgrades an unsupported format to the entry's first
// supported one, keeping the original request visible to the caller. This is
// a degrade-gracefully policy, never an error.
func validateFormat(cmd domain.ParsedCommand, entry domain.CatalogEntry) domain.ParsedCommand {
	if entry.SupportsFormat(cmd.Format) {
		return cmd
	}

	cmd.Params.FormatChanged = true
	cmd.Params.OriginalFormat = cmd.Format
	cmd.Format = entry.DefaultFormat()
	cmd.Warning = "formato '" + string(cmd.Params.OriginalFormat) + "' no disponible para este reporte, se usará '" + string(cmd.Format) + "'"
	return cmd
}
