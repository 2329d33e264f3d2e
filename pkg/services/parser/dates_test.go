package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Wednesday, mid-month, so week and month windows are all distinct.
var testNow = time.Date(2025, time.October, 15, 12, 0, 0, 0, time.UTC)

func date(year int, month time.Month, day, hour, min, sec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, time.UTC)
}

func TestExtractDates(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		start time.Time
		end   time.Time
	}{
		{
			name:  "word to word range",
			text:  "ventas del primero al quince de octubre",
			start: date(2025, time.October, 1, 0, 0, 0),
			end:   date(2025, time.October, 15, 23, 59, 59),
		},
		{
			name:  "word to digit range",
			text:  "del primero al 10 de octubre",
			start: date(2025, time.October, 1, 0, 0, 0),
			end:   date(2025, time.October, 10, 23, 59, 59),
		},
		{
			name:  "digit range with explicit year",
			text:  "del 3 al 10 de octubre del 2024",
			start: date(2024, time.October, 3, 0, 0, 0),
			end:   date(2024, time.October, 10, 23, 59, 59),
		},
		{
			name:  "cross month range",
			text:  "del 28 de septiembre al 5 de octubre",
			start: date(2025, time.September, 28, 0, 0, 0),
			end:   date(2025, time.October, 5, 23, 59, 59),
		},
		{
			name:  "cross month range over year boundary",
			text:  "del 28 de diciembre al 5 de enero",
			start: date(2025, time.December, 28, 0, 0, 0),
			end:   date(2026, time.January, 5, 23, 59, 59),
		},
		{
			name:  "single day word ordinal",
			text:  "ventas del primero de octubre",
			start: date(2025, time.October, 1, 0, 0, 0),
			end:   date(2025, time.October, 1, 23, 59, 59),
		},
		{
			name:  "single day digit",
			text:  "ventas del 3 de octubre",
			start: date(2025, time.October, 3, 0, 0, 0),
			end:   date(2025, time.October, 3, 23, 59, 59),
		},
		{
			name:  "short date without year",
			text:  "ventas del 03/10",
			start: date(2025, time.October, 3, 0, 0, 0),
			end:   date(2025, time.October, 3, 23, 59, 59),
		},
		{
			name:  "short date with year",
			text:  "ventas del 03/10/2024",
			start: date(2024, time.October, 3, 0, 0, 0),
			end:   date(2024, time.October, 3, 23, 59, 59),
		},
		{
			name:  "last n days",
			text:  "ventas de los ultimos 7 dias",
			start: date(2025, time.October, 8, 0, 0, 0),
			end:   testNow,
		},
		{
			name:  "absolute range",
			text:  "ventas del 01/10/2025 al 10/10/2025",
			start: date(2025, time.October, 1, 0, 0, 0),
			end:   date(2025, time.October, 10, 23, 59, 59),
		},
		{
			name:  "previous month",
			text:  "reporte de ventas del ultimo mes",
			start: date(2025, time.September, 1, 0, 0, 0),
			end:   date(2025, time.September, 30, 23, 59, 59),
		},
		{
			name:  "named month",
			text:  "ventas del mes de septiembre",
			start: date(2025, time.September, 1, 0, 0, 0),
			end:   date(2025, time.September, 30, 23, 59, 59),
		},
		{
			name:  "named month with year",
			text:  "ventas del mes de febrero del 2024",
			start: date(2024, time.February, 1, 0, 0, 0),
			end:   date(2024, time.February, 29, 23, 59, 59),
		},
		{
			name:  "current month runs to now",
			text:  "ventas de este mes",
			start: date(2025, time.October, 1, 0, 0, 0),
			end:   testNow,
		},
		{
			name:  "current week starts monday",
			text:  "ventas de esta semana",
			start: date(2025, time.October, 13, 0, 0, 0),
			end:   testNow,
		},
		{
			name:  "previous week is a closed window",
			text:  "ventas de la semana pasada",
			start: date(2025, time.October, 6, 0, 0, 0),
			end:   date(2025, time.October, 12, 23, 59, 59),
		},
		{
			name:  "today",
			text:  "ventas de hoy",
			start: date(2025, time.October, 15, 0, 0, 0),
			end:   testNow,
		},
		{
			name:  "calendar year clamps to dec 31",
			text:  "ventas del ano 2024",
			start: date(2024, time.January, 1, 0, 0, 0),
			end:   date(2024, time.December, 31, 23, 59, 59),
		},
		{
			name:  "no time reference defaults to current month",
			text:  "reporte de ventas",
			start: date(2025, time.October, 1, 0, 0, 0),
			end:   testNow,
		},
		{
			name:  "malformed calendar day falls through to the default",
			text:  "ventas del 31 de septiembre",
			start: date(2025, time.October, 1, 0, 0, 0),
			end:   testNow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := extractDates(tt.text, testNow)
			assert.Equal(t, tt.start, r.start)
			assert.Equal(t, tt.end, r.end)
			assert.NotEmpty(t, r.label)
		})
	}
}

// Whatever the input, the resolved window must be ordered.
func TestExtractDatesStartNeverAfterEnd(t *testing.T) {
	texts := []string{
		"ventas del primero al quince de octubre",
		"del 28 de diciembre al 5 de enero",
		"ultimos 90 dias",
		"ventas de hoy",
		"ventas del ano 2023",
		"algo sin fechas",
		"del 10 al 3 de octubre",
	}

	for _, text := range texts {
		r := extractDates(text, testNow)
		assert.False(t, r.start.After(r.end), "window inverted for %q", text)
	}
}

func TestExtractDatesInvertedRangeIsRejected(t *testing.T) {
	// The inverted range is rejected by the range strategy; the cascade then
	// resolves the remaining "3 de octubre" as a single day.
	r := extractDates("del 10 al 3 de octubre", testNow)

	assert.Equal(t, date(2025, time.October, 3, 0, 0, 0), r.start)
	assert.Equal(t, date(2025, time.October, 3, 23, 59, 59), r.end)
}

func TestMakeDateRejectsNormalizedValues(t *testing.T) {
	_, ok := makeDate(2025, time.November, 31, time.UTC)
	assert.False(t, ok)

	_, ok = makeDate(2025, time.February, 29, time.UTC)
	assert.False(t, ok)

	d, ok := makeDate(2024, time.February, 29, time.UTC)
	assert.True(t, ok)
	assert.Equal(t, date(2024, time.February, 29, 0, 0, 0), d)
}

func TestMondayOf(t *testing.T) {
	tests := []struct {
		day      time.Time
		expected time.Time
	}{
		{date(2025, time.October, 15, 12, 0, 0), date(2025, time.October, 13, 0, 0, 0)},
		{date(2025, time.October, 13, 0, 0, 0), date(2025, time.October, 13, 0, 0, 0)},
		{date(2025, time.October, 19, 23, 0, 0), date(2025, time.October, 13, 0, 0, 0)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, mondayOf(tt.day))
	}
}
