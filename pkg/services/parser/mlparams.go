package parser

import "regexp"

// defaultHorizonDays is the forecast horizon used when the command does not
// mention one.
const defaultHorizonDays = 30

// horizonUnits converts a time unit to days. The month and year factors are
// deliberate approximations: downstream forecast generators were tuned
// against the 30-day month convention.
var horizonUnits = map[string]int{
	"dia":     1,
	"dias":    1,
	"semana":  7,
	"semanas": 7,
	"mes":     30,
	"meses":   30,
	"ano":     365,
	"anos":    365,
}

const unitPattern = `dias?|semanas?|mes|meses|anos?`

var (
	digitHorizonRe = regexp.MustCompile(`\b(\d+) (` + unitPattern + `)\b`)
	wordHorizonRe  = regexp.MustCompile(`\b(` + wordNumberPattern + `) (` + unitPattern + `)\b`)
	nextUnitRe     = regexp.MustCompile(`\bproxim[oa]s? (` + unitPattern + `)\b`)
)

// extractHorizon resolves the forecast horizon in days for ML reports. The
// first matching form wins: digit+unit, number-word+unit, then a bare
// "próxima semana" style unit implying one.
func extractHorizon(text string) int {
	if m := digitHorizonRe.FindStringSubmatch(text); m != nil {
		if n, ok := parseNumberToken(m[1]); ok && n > 0 {
			return n * horizonUnits[m[2]]
		}
	}

	if m := wordHorizonRe.FindStringSubmatch(text); m != nil {
		if n, ok := parseNumberToken(m[1]); ok && n > 0 {
			return n * horizonUnits[m[2]]
		}
	}

	if m := nextUnitRe.FindStringSubmatch(text); m != nil {
		return horizonUnits[m[1]]
	}

	return defaultHorizonDays
}
