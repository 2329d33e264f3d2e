package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/report-pilot/pkg/adapters"
	"github.com/de-tools/report-pilot/pkg/models/domain"
)

type TableConfig struct {
	CellWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{CellWidth: 24}
}

// Reporter renders command outcomes to a writer, either as indented JSON or
// as plain-text tables.
type Reporter struct {
	writer io.Writer
	config TableConfig
	asJSON bool
}

func NewReporter(writer io.Writer, asJSON bool) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
		asJSON: asJSON,
	}
}

func (r *Reporter) Handle(outcome domain.CommandOutcome) error {
	if r.asJSON {
		encoder := json.NewEncoder(r.writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(adapters.MapCommandOutcomeDomainToApi(outcome))
	}

	funcMap := template.FuncMap{
		"formatRow": func(cells []interface{}) string {
			parts := make([]string, len(cells))
			for i, cell := range cells {
				parts[i] = fmt.Sprintf("%-*v", r.config.CellWidth, cell)
			}
			return "| " + strings.Join(parts, " | ") + " |"
		},
		"formatHeader": func(headers []string) string {
			parts := make([]string, len(headers))
			for i, h := range headers {
				parts[i] = fmt.Sprintf("%-*s", r.config.CellWidth, h)
			}
			return "| " + strings.Join(parts, " | ") + " |"
		},
	}

	tmpl := `{{if not .Success}}ERROR: {{.Error}}
{{if .Message}}{{.Message}}
{{end}}{{else}}{{if .Message}}{{.Message}}
{{end}}{{if .Report}}{{template "report" .Report}}{{end}}{{end}}
{{- define "report"}}
{{.Title}}{{if .Subtitle}} ({{.Subtitle}}){{end}}
{{if .Period}}Período: {{.Period.Start.Format "2006-01-02"}} a {{.Period.End.Format "2006-01-02"}}{{if .Period.Label}} [{{.Period.Label}}]{{end}}
{{end}}{{range $key, $value := .Summary}}{{$key}}: {{$value}}
{{end}}{{if .Headers}}{{formatHeader .Headers}}
{{range .Rows}}{{formatRow .}}
{{end}}{{end}}{{range .Predictions}}{{.Label}}: {{printf "%.2f" .Value}}
{{end}}{{range .Items}}{{.Name}} (score {{printf "%.1f" .Score}}){{if .Reason}}: {{.Reason}}{{end}}
{{end}}{{range $key, $value := .Totals}}TOTAL {{$key}}: {{printf "%.2f" $value}}
{{end}}{{range .Sections}}{{template "report" .}}{{end}}{{end}}`

	t, err := template.New("outcome").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(r.writer, outcome)
}
