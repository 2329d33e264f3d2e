package parser

import (
	"regexp"
	"strconv"
)

// numericFilters holds the independent numeric constraints of a command.
// Nil bounds mean the constraint was absent.
type numericFilters struct {
	limit     int
	minAmount *float64
	maxAmount *float64
	currency  string
}

var (
	limitRe = regexp.MustCompile(
		`\b(?:top|mejores|primeros|primeras) (\d+|` + wordNumberPattern + `)\b`)
	minAmountRe = regexp.MustCompile(
		`\b(?:mayor(?:es)? (?:a|de|que)|mas de|superior(?:es)? a) (\d+(?:\.\d+)?|` + wordNumberPattern + `)\b`)
	maxAmountRe = regexp.MustCompile(
		`\b(?:menor(?:es)? (?:a|de|que)|menos de|inferior(?:es)? a) (\d+(?:\.\d+)?|` + wordNumberPattern + `)\b`)
	betweenRe = regexp.MustCompile(`\bentre (\d+(?:\.\d+)?) y (\d+(?:\.\d+)?)\b`)
)

type currencyGroup struct {
	code     string
	keywords []string
}

var currencyGroups = []currencyGroup{
	{"USD", []string{"dolar", "dolares", "usd"}},
	{"MXN", []string{"peso", "pesos", "mxn"}},
	{"PEN", []string{"sol", "soles", "pen"}},
	{"EUR", []string{"euro", "euros", "eur"}},
}

// extractNumericFilters pulls top-N limits, amount bounds and currency hints
// out of the command. The constraints are independent: "top 5 entre 100 y 500"
// sets all three fields.
func extractNumericFilters(text string) numericFilters {
	var filters numericFilters

	if m := limitRe.FindStringSubmatch(text); m != nil {
		if n, ok := parseNumberToken(m[1]); ok && n > 0 {
			filters.limit = n
		}
	}

	if m := betweenRe.FindStringSubmatch(text); m != nil {
		filters.minAmount = parseAmount(m[1])
		filters.maxAmount = parseAmount(m[2])
	} else {
		if m := minAmountRe.FindStringSubmatch(text); m != nil {
			filters.minAmount = parseAmountToken(m[1])
		}
		if m := maxAmountRe.FindStringSubmatch(text); m != nil {
			filters.maxAmount = parseAmountToken(m[1])
		}
	}

	for _, group := range currencyGroups {
		for _, keyword := range group.keywords {
			if containsPhrase(text, keyword) {
				filters.currency = group.code
				break
			}
		}
		if filters.currency != "" {
			break
		}
	}

	return filters
}

func parseAmount(token string) *float64 {
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return nil
	}
	return &value
}

// parseAmountToken accepts a digit literal (preferred) or a number-word.
func parseAmountToken(token string) *float64 {
	if amount := parseAmount(token); amount != nil {
		return amount
	}
	if n, ok := wordNumbers[token]; ok {
		value := float64(n)
		return &value
	}
	return nil
}
