package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/de-tools/report-pilot/pkg/models/domain"
)

var (
	vsLastMonthRe = regexp.MustCompile(
		`respecto a(?:l)? mes (?:pasado|anterior)|vs\.? (?:el )?mes (?:pasado|anterior)|contra (?:el )?mes (?:pasado|anterior)|comparad[oa] con (?:el )?mes (?:pasado|anterior)`)
	vsLastWeekRe = regexp.MustCompile(
		`esta semana (?:vs\.?|versus|contra|respecto a(?:l)?(?: la)?) semana`)
	vsLastYearRe = regexp.MustCompile(
		`ano actual (?:vs\.?|versus|contra|respecto a(?:l)?) ano|respecto a(?:l)? ano (?:pasado|anterior)|vs\.? (?:el )?ano (?:pasado|anterior)`)
	anyMonthRe = regexp.MustCompile(`\b(` + monthPattern + `)\b`)
)

// extractComparisonPeriods derives the two windows of a comparative report
// from one of four canonical phrasings. Both results are nil when none match;
// the comparative generator then falls back to its own defaults.
func extractComparisonPeriods(text string, now time.Time) (*domain.Window, *domain.Window) {
	loc := now.Location()

	if vsLastMonthRe.MatchString(text) {
		currentStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		prev := now.AddDate(0, -1, 0)
		prevStart, prevEnd := monthBounds(prev.Year(), prev.Month(), loc)
		return &domain.Window{Start: currentStart, End: now, Label: "mes actual"},
			&domain.Window{Start: prevStart, End: prevEnd, Label: "mes anterior"}
	}

	if vsLastWeekRe.MatchString(text) {
		monday := mondayOf(now)
		prevMonday := monday.AddDate(0, 0, -7)
		return &domain.Window{Start: monday, End: now, Label: "semana actual"},
			&domain.Window{Start: prevMonday, End: dayEnd(prevMonday.AddDate(0, 0, 6)), Label: "semana anterior"}
	}

	if vsLastYearRe.MatchString(text) {
		yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc)
		prevStart := time.Date(now.Year()-1, time.January, 1, 0, 0, 0, 0, loc)
		prevEnd := time.Date(now.Year()-1, time.December, 31, 23, 59, 59, 0, loc)
		return &domain.Window{Start: yearStart, End: now, Label: fmt.Sprintf("año %d", now.Year())},
			&domain.Window{Start: prevStart, End: prevEnd, Label: fmt.Sprintf("año %d", now.Year()-1)}
	}

	// Two distinct month names compare those full months in mention order.
	if first, second, ok := firstTwoMonths(text); ok {
		w1 := fullMonthWindow(first, now)
		w2 := fullMonthWindow(second, now)
		return &w1, &w2
	}

	return nil, nil
}

func firstTwoMonths(text string) (string, string, bool) {
	matches := anyMonthRe.FindAllString(text, -1)
	if len(matches) < 2 {
		return "", "", false
	}
	for _, candidate := range matches[1:] {
		if monthNumbers[candidate] != monthNumbers[matches[0]] {
			return matches[0], candidate, true
		}
	}
	return "", "", false
}

func fullMonthWindow(monthName string, now time.Time) domain.Window {
	start, end := monthBounds(now.Year(), monthNumbers[monthName], now.Location())
	label := strings.ToUpper(monthName[:1]) + monthName[1:]
	return domain.Window{Start: start, End: end, Label: label}
}
