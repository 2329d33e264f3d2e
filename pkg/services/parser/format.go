package parser

import "github.com/de-tools/report-pilot/pkg/models/domain"

type formatGroup struct {
	format   domain.OutputFormat
	keywords []string
}

// formatGroups is checked in order; the first group with a keyword present in
// the command wins.
var formatGroups = []formatGroup{
	{domain.FormatPDF, []string{"pdf", "documento pdf"}},
	{domain.FormatExcel, []string{"excel", "xls", "xlsx", "hoja de calculo", "planilla"}},
	{domain.FormatJSON, []string{"json", "pantalla", "datos", "texto"}},
}

// extractFormat detects the requested export format, defaulting to JSON.
func extractFormat(text string) domain.OutputFormat {
	for _, group := range formatGroups {
		for _, keyword := range group.keywords {
			if containsPhrase(text, keyword) {
				return group.format
			}
		}
	}
	return domain.FormatJSON
}
