package domain

import "time"

// TimePeriod represents the time range a report covers.
type TimePeriod struct {
	Start time.Time
	End   time.Time
	Label string
}

// Prediction is a single forecasted point produced by an ML generator.
type Prediction struct {
	Date  time.Time
	Label string
	Value float64
}

// ScoredItem is a ranked entry produced by the recommendation generator.
type ScoredItem struct {
	ID     int64
	Name   string
	Score  float64
	Reason string
}

// Report is the generator-agnostic envelope shared by all report kinds.
// Tabular generators fill Headers/Rows/Totals, ML generators fill
// Predictions and Summary, the recommender fills Items. Every generator sets
// Kind, Title and GeneratedAt.
type Report struct {
	Kind        ReportKind
	Title       string
	Subtitle    string
	Period      *TimePeriod
	Headers     []string
	Rows        [][]interface{}
	Totals      map[string]float64
	Summary     map[string]interface{}
	Predictions []Prediction
	Items       []ScoredItem
	Sections    []*Report
	GeneratedAt time.Time
}
