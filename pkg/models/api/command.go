package api

import "time"

// CommandRequest is the body of an interpret/execute call.
type CommandRequest struct {
	Command string `json:"command"`
	UserID  string `json:"user_id,omitempty"`
}

type Alternative struct {
	Kind  string  `json:"kind"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

type Params struct {
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	PeriodText     string     `json:"period_text,omitempty"`
	GroupBy        string     `json:"group_by,omitempty"`
	Limit          int        `json:"limit,omitempty"`
	MinAmount      *float64   `json:"min_amount,omitempty"`
	MaxAmount      *float64   `json:"max_amount,omitempty"`
	Currency       string     `json:"currency,omitempty"`
	ForecastDays   int        `json:"forecast_days,omitempty"`
	Period1        *Window    `json:"period1,omitempty"`
	Period2        *Window    `json:"period2,omitempty"`
	FormatChanged  bool       `json:"format_changed,omitempty"`
	OriginalFormat string     `json:"original_format,omitempty"`
}

type ParsedCommand struct {
	Success      bool          `json:"success"`
	Kind         string        `json:"report_type,omitempty"`
	Name         string        `json:"report_name,omitempty"`
	Description  string        `json:"description,omitempty"`
	Format       string        `json:"format"`
	Params       Params        `json:"params"`
	Confidence   float64       `json:"confidence"`
	Alternatives []Alternative `json:"alternatives,omitempty"`
	Warning      string        `json:"warning,omitempty"`
	Error        string        `json:"error,omitempty"`
}

type TimePeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label,omitempty"`
}

type Prediction struct {
	Date  time.Time `json:"date"`
	Label string    `json:"label"`
	Value float64   `json:"value"`
}

type ScoredItem struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason,omitempty"`
}

type Report struct {
	Kind        string                 `json:"kind,omitempty"`
	Title       string                 `json:"title"`
	Subtitle    string                 `json:"subtitle,omitempty"`
	Period      *TimePeriod            `json:"period,omitempty"`
	Headers     []string               `json:"headers,omitempty"`
	Rows        [][]interface{}        `json:"rows,omitempty"`
	Totals      map[string]float64     `json:"totals,omitempty"`
	Summary     map[string]interface{} `json:"summary,omitempty"`
	Predictions []Prediction           `json:"predictions,omitempty"`
	Items       []ScoredItem           `json:"items,omitempty"`
	Sections    []*Report              `json:"sections,omitempty"`
	GeneratedAt time.Time              `json:"generated_at"`
}

type CommandOutcome struct {
	Success     bool          `json:"success"`
	Intent      string        `json:"intent"`
	Command     ParsedCommand `json:"command"`
	Report      *Report       `json:"report,omitempty"`
	Message     string        `json:"message,omitempty"`
	Error       string        `json:"error,omitempty"`
	Suggestions []Alternative `json:"suggestions,omitempty"`
}

type CatalogEntry struct {
	Kind        string   `json:"kind"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Formats     []string `json:"formats"`
	ML          bool     `json:"ml"`
}
