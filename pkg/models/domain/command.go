package domain

import "time"

// GroupBy names the dimension a report should be grouped on.
type GroupBy string

const (
	GroupByProduct  GroupBy = "product"
	GroupByClient   GroupBy = "client"
	GroupByCategory GroupBy = "category"
	GroupByDate     GroupBy = "date"
)

// Window is a concrete date interval with a human-readable label.
type Window struct {
	Start time.Time
	End   time.Time
	Label string
}

// Params carries every value the extraction stages can pull out of a command.
// Optional numeric bounds and dates are pointers so "absent" is distinguishable
// from a zero value.
type Params struct {
	StartDate  *time.Time
	EndDate    *time.Time
	PeriodText string

	GroupBy   GroupBy
	Limit     int
	MinAmount *float64
	MaxAmount *float64
	Currency  string

	// ForecastDays is the ML horizon in days; zero when not an ML report.
	ForecastDays int

	// Period1/Period2 are set only for comparative reports.
	Period1 *Window
	Period2 *Window

	// FormatChanged records a format downgrade applied during validation.
	FormatChanged  bool
	OriginalFormat OutputFormat
}

// Alternative is a non-winning classification candidate offered back to the
// caller for "did you mean" style suggestions.
type Alternative struct {
	Kind  ReportKind
	Name  string
	Score float64
}

// ParsedCommand is the interpreter's output: one per invocation, immutable
// once returned.
type ParsedCommand struct {
	Success      bool
	Kind         ReportKind
	Name         string
	Description  string
	Format       OutputFormat
	Params       Params
	Confidence   float64
	Alternatives []Alternative
	Warning      string
	Error        string
}

// Intent is the coarse command category the orchestrator resolves before any
// report-specific extraction runs.
type Intent string

const (
	IntentReport      Intent = "report"
	IntentHelp        Intent = "help"
	IntentListCatalog Intent = "list_catalog"
)

// User is the opaque authenticated identity required by personalized ML
// reports.
type User struct {
	ID   string
	Name string
}

// CommandOutcome is the envelope the orchestrator hands back to its caller.
// Failures are expressed through Success/Error, never through panics or raw
// errors escaping the orchestrator.
type CommandOutcome struct {
	Success     bool
	Intent      Intent
	Command     ParsedCommand
	Report      *Report
	Message     string
	Error       string
	Suggestions []Alternative
}
