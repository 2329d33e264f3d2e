package parser

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripDiacritics = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Normalize lowercases the command, strips diacritical marks ("predicción"
// becomes "prediccion") and collapses whitespace runs to single spaces. It is
// a projection: Normalize(Normalize(s)) == Normalize(s).
func Normalize(raw string) string {
	lowered := strings.ToLower(raw)

	stripped, _, err := transform.String(stripDiacritics, lowered)
	if err != nil {
		// Transform only fails on invalid UTF-8; keep the lowered text so
		// normalization stays total.
		stripped = lowered
	}

	return strings.Join(strings.Fields(stripped), " ")
}
