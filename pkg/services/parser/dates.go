package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateRange is the resolved time window of a command plus its human-readable
// label.
type dateRange struct {
	start time.Time
	end   time.Time
	label string
}

// dateStrategy is one pattern in the extraction cascade. A nil result means
// "no match, try the next one"; malformed calendar values (day 31 in a 30-day
// month) are also reported as nil so the cascade keeps going.
type dateStrategy struct {
	name  string
	apply func(text string, now time.Time) *dateRange
}

var monthNumbers = map[string]time.Month{
	"enero":      time.January,
	"febrero":    time.February,
	"marzo":      time.March,
	"abril":      time.April,
	"mayo":       time.May,
	"junio":      time.June,
	"julio":      time.July,
	"agosto":     time.August,
	"septiembre": time.September,
	"setiembre":  time.September,
	"octubre":    time.October,
	"noviembre":  time.November,
	"diciembre":  time.December,
}

const monthPattern = "enero|febrero|marzo|abril|mayo|junio|julio|agosto|septiembre|setiembre|octubre|noviembre|diciembre"

var (
	wordWordRangeRe = regexp.MustCompile(
		`\bdel? (` + wordNumberPattern + `) al (` + wordNumberPattern + `) de (` + monthPattern + `)(?: del? (\d{4}))?\b`)
	wordDigitCrossRangeRe = regexp.MustCompile(
		`\bdel? (` + wordNumberPattern + `) de (` + monthPattern + `) al (\d{1,2}) de (` + monthPattern + `)(?: del? (\d{4}))?\b`)
	wordDigitRangeRe = regexp.MustCompile(
		`\bdel? (` + wordNumberPattern + `) al (\d{1,2}) de (` + monthPattern + `)(?: del? (\d{4}))?\b`)
	digitCrossRangeRe = regexp.MustCompile(
		`\bdel? (\d{1,2}) de (` + monthPattern + `) al (\d{1,2}) de (` + monthPattern + `)(?: del? (\d{4}))?\b`)
	digitRangeRe = regexp.MustCompile(
		`\bdel? (\d{1,2}) al (\d{1,2}) de (` + monthPattern + `)(?: del? (\d{4}))?\b`)
	wordDayMonthRe = regexp.MustCompile(
		`\b(` + wordNumberPattern + `) de (` + monthPattern + `)(?: del? (\d{4}))?\b`)
	digitDayMonthRe = regexp.MustCompile(
		`\b(\d{1,2}) de (` + monthPattern + `)(?: del? (\d{4}))?\b`)
	shortDateRe     = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d{4}))?\b`)
	lastNDaysRe     = regexp.MustCompile(`\bultimos? (\d+|` + wordNumberPattern + `) dias\b`)
	absoluteRangeRe = regexp.MustCompile(
		`\b(\d{1,2})/(\d{1,2})/(\d{4}) al (\d{1,2})/(\d{1,2})/(\d{4})\b`)
	monthOnlyRe = regexp.MustCompile(`\bmes de (` + monthPattern + `)(?: del? (\d{4}))?\b`)
	yearRe      = regexp.MustCompile(`\b(?:ano|del ano) (\d{4})\b`)
	hoyRe       = regexp.MustCompile(`\bhoy\b`)
)

// dateStrategies is ordered from most to least specific. The first strategy
// that matches wins and the rest never run.
var dateStrategies = []dateStrategy{
	{"word_word_range", extractWordWordRange},
	{"word_digit_range", extractWordDigitRange},
	{"digit_digit_range", extractDigitRange},
	{"word_day_month", extractWordDayMonth},
	{"digit_day_month", extractDigitDayMonth},
	{"short_date", extractShortDate},
	{"last_n_days", extractLastNDays},
	{"absolute_range", extractAbsoluteRange},
	{"previous_month", extractPreviousMonth},
	{"named_month", extractNamedMonth},
	{"current_month", extractCurrentMonth},
	{"current_week", extractCurrentWeek},
	{"previous_week", extractPreviousWeek},
	{"today", extractToday},
	{"calendar_year", extractCalendarYear},
}

// extractDates resolves the natural-language time reference in text into a
// concrete window. When no strategy matches, it falls back to the current
// month to date.
func extractDates(text string, now time.Time) dateRange {
	for _, strategy := range dateStrategies {
		if r := strategy.apply(text, now); r != nil {
			return *r
		}
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return dateRange{start: monthStart, end: now, label: "mes actual"}
}

// --- calendar helpers ---

// makeDate builds a timezone-aware instant and rejects values time.Date would
// silently normalize, e.g. November 31 rolling into December.
func makeDate(year int, month time.Month, day int, loc *time.Location) (time.Time, bool) {
	t := time.Date(year, month, day, 0, 0, 0, 0, loc)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func monthBounds(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return start, dayEnd(start.AddDate(0, 1, -1))
}

func mondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return dayStart(t.AddDate(0, 0, -offset))
}

func yearOrCurrent(capture string, now time.Time) int {
	if capture == "" {
		return now.Year()
	}
	year, err := strconv.Atoi(capture)
	if err != nil {
		return now.Year()
	}
	return year
}

func spanLabel(start, end time.Time) string {
	return fmt.Sprintf("del %s al %s", start.Format("02/01/2006"), end.Format("02/01/2006"))
}

// --- strategies ---

func extractWordWordRange(text string, now time.Time) *dateRange {
	m := wordWordRangeRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	startDay, ok1 := parseNumberToken(m[1])
	endDay, ok2 := parseNumberToken(m[2])
	if !ok1 || !ok2 {
		return nil
	}
	return buildSameMonthRange(startDay, endDay, monthNumbers[m[3]], yearOrCurrent(m[4], now), now)
}

func extractWordDigitRange(text string, now time.Time) *dateRange {
	if m := wordDigitCrossRangeRe.FindStringSubmatch(text); m != nil {
		startDay, ok := parseNumberToken(m[1])
		if !ok {
			return nil
		}
		endDay, _ := strconv.Atoi(m[3])
		return buildCrossMonthRange(startDay, monthNumbers[m[2]], endDay, monthNumbers[m[4]], yearOrCurrent(m[5], now), now)
	}

	m := wordDigitRangeRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	startDay, ok := parseNumberToken(m[1])
	if !ok {
		return nil
	}
	endDay, _ := strconv.Atoi(m[2])
	return buildSameMonthRange(startDay, endDay, monthNumbers[m[3]], yearOrCurrent(m[4], now), now)
}

func extractDigitRange(text string, now time.Time) *dateRange {
	if m := digitCrossRangeRe.FindStringSubmatch(text); m != nil {
		startDay, _ := strconv.Atoi(m[1])
		endDay, _ := strconv.Atoi(m[3])
		return buildCrossMonthRange(startDay, monthNumbers[m[2]], endDay, monthNumbers[m[4]], yearOrCurrent(m[5], now), now)
	}

	m := digitRangeRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	startDay, _ := strconv.Atoi(m[1])
	endDay, _ := strconv.Atoi(m[2])
	return buildSameMonthRange(startDay, endDay, monthNumbers[m[3]], yearOrCurrent(m[4], now), now)
}

func buildSameMonthRange(startDay, endDay int, month time.Month, year int, now time.Time) *dateRange {
	start, ok := makeDate(year, month, startDay, now.Location())
	if !ok {
		return nil
	}
	end, ok := makeDate(year, month, endDay, now.Location())
	if !ok {
		return nil
	}
	if end.Before(start) {
		return nil
	}
	end = dayEnd(end)
	return &dateRange{start: start, end: end, label: spanLabel(start, end)}
}

func buildCrossMonthRange(startDay int, startMonth time.Month, endDay int, endMonth time.Month, year int, now time.Time) *dateRange {
	start, ok := makeDate(year, startMonth, startDay, now.Location())
	if !ok {
		return nil
	}
	endYear := year
	if endMonth < startMonth {
		// "del 28 de diciembre al 5 de enero" crosses a year boundary.
		endYear = year + 1
	}
	end, ok := makeDate(endYear, endMonth, endDay, now.Location())
	if !ok {
		return nil
	}
	if end.Before(start) {
		return nil
	}
	end = dayEnd(end)
	return &dateRange{start: start, end: end, label: spanLabel(start, end)}
}

func extractWordDayMonth(text string, now time.Time) *dateRange {
	m := wordDayMonthRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	day, ok := parseNumberToken(m[1])
	if !ok {
		return nil
	}
	return buildSingleDay(day, monthNumbers[m[2]], yearOrCurrent(m[3], now), now)
}

func extractDigitDayMonth(text string, now time.Time) *dateRange {
	m := digitDayMonthRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	day, _ := strconv.Atoi(m[1])
	return buildSingleDay(day, monthNumbers[m[2]], yearOrCurrent(m[3], now), now)
}

func buildSingleDay(day int, month time.Month, year int, now time.Time) *dateRange {
	start, ok := makeDate(year, month, day, now.Location())
	if !ok {
		return nil
	}
	return &dateRange{start: start, end: dayEnd(start), label: start.Format("02/01/2006")}
}

func extractShortDate(text string, now time.Time) *dateRange {
	// A DD/MM here could be the first endpoint of an explicit range; leave
	// that text for the absolute-range strategy.
	if absoluteRangeRe.MatchString(text) {
		return nil
	}
	m := shortDateRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return nil
	}
	return buildSingleDay(day, time.Month(month), yearOrCurrent(m[3], now), now)
}

func extractLastNDays(text string, now time.Time) *dateRange {
	m := lastNDaysRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	n, ok := parseNumberToken(m[1])
	if !ok || n <= 0 {
		return nil
	}
	return &dateRange{
		start: dayStart(now.AddDate(0, 0, -n)),
		end:   now,
		label: fmt.Sprintf("últimos %d días", n),
	}
}

func extractAbsoluteRange(text string, now time.Time) *dateRange {
	m := absoluteRangeRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	d1, _ := strconv.Atoi(m[1])
	mo1, _ := strconv.Atoi(m[2])
	y1, _ := strconv.Atoi(m[3])
	d2, _ := strconv.Atoi(m[4])
	mo2, _ := strconv.Atoi(m[5])
	y2, _ := strconv.Atoi(m[6])
	if mo1 < 1 || mo1 > 12 || mo2 < 1 || mo2 > 12 {
		return nil
	}
	start, ok := makeDate(y1, time.Month(mo1), d1, now.Location())
	if !ok {
		return nil
	}
	end, ok := makeDate(y2, time.Month(mo2), d2, now.Location())
	if !ok {
		return nil
	}
	if end.Before(start) {
		return nil
	}
	end = dayEnd(end)
	return &dateRange{start: start, end: end, label: spanLabel(start, end)}
}

func extractPreviousMonth(text string, now time.Time) *dateRange {
	if !strings.Contains(text, "ultimo mes") &&
		!strings.Contains(text, "mes pasado") &&
		!strings.Contains(text, "mes anterior") {
		return nil
	}
	prev := now.AddDate(0, -1, 0)
	start, end := monthBounds(prev.Year(), prev.Month(), now.Location())
	return &dateRange{start: start, end: end, label: "mes anterior"}
}

func extractNamedMonth(text string, now time.Time) *dateRange {
	// Skip when the text carries a specific day reference; that form belongs
	// to an earlier strategy even if it failed on a malformed calendar value.
	if digitDayMonthRe.MatchString(text) || wordDayMonthRe.MatchString(text) {
		return nil
	}
	m := monthOnlyRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	month := monthNumbers[m[1]]
	year := yearOrCurrent(m[2], now)
	start, end := monthBounds(year, month, now.Location())
	return &dateRange{start: start, end: end, label: fmt.Sprintf("mes de %s %d", m[1], year)}
}

func extractCurrentMonth(text string, now time.Time) *dateRange {
	if !strings.Contains(text, "este mes") &&
		!strings.Contains(text, "mes actual") &&
		!strings.Contains(text, "mes en curso") {
		return nil
	}
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return &dateRange{start: start, end: now, label: "mes actual"}
}

func extractCurrentWeek(text string, now time.Time) *dateRange {
	if !strings.Contains(text, "esta semana") &&
		!strings.Contains(text, "semana actual") &&
		!strings.Contains(text, "semana en curso") {
		return nil
	}
	return &dateRange{start: mondayOf(now), end: now, label: "semana actual"}
}

func extractPreviousWeek(text string, now time.Time) *dateRange {
	if !strings.Contains(text, "semana anterior") &&
		!strings.Contains(text, "semana pasada") {
		return nil
	}
	monday := mondayOf(now).AddDate(0, 0, -7)
	return &dateRange{start: monday, end: dayEnd(monday.AddDate(0, 0, 6)), label: "semana anterior"}
}

func extractToday(text string, now time.Time) *dateRange {
	if !hoyRe.MatchString(text) {
		return nil
	}
	return &dateRange{start: dayStart(now), end: now, label: "hoy"}
}

func extractCalendarYear(text string, now time.Time) *dateRange {
	m := yearRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	year, _ := strconv.Atoi(m[1])
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, now.Location())
	// End of year is clamped to Dec 31 23:59:59 rather than computed as
	// "January 1 of next year minus one tick".
	end := time.Date(year, time.December, 31, 23, 59, 59, 0, now.Location())
	return &dateRange{start: start, end: end, label: fmt.Sprintf("año %d", year)}
}
