package parser

import (
	"sort"
	"strconv"
	"strings"
)

// wordNumbers maps the closed set of Spanish number-words the interpreter
// accepts wherever a digit could appear. Ordinals are included because day
// references like "primero de octubre" are ordinal in Spanish.
var wordNumbers = map[string]int{
	"uno":         1,
	"una":         1,
	"dos":         2,
	"tres":        3,
	"cuatro":      4,
	"cinco":       5,
	"seis":        6,
	"siete":       7,
	"ocho":        8,
	"nueve":       9,
	"diez":        10,
	"once":        11,
	"doce":        12,
	"trece":       13,
	"catorce":     14,
	"quince":      15,
	"dieciseis":   16,
	"diecisiete":  17,
	"dieciocho":   18,
	"diecinueve":  19,
	"veinte":      20,
	"veintiuno":   21,
	"veinticinco": 25,
	"treinta":     30,
	"cuarenta":    40,
	"cincuenta":   50,
	"sesenta":     60,
	"setenta":     70,
	"ochenta":     80,
	"noventa":     90,

	"primero": 1,
	"primer":  1,
	"segundo": 2,
	"tercero": 3,
	"tercer":  3,
	"cuarto":  4,
	"quinto":  5,
	"sexto":   6,
	"septimo": 7,
	"octavo":  8,
	"noveno":  9,
	"decimo":  10,
}

// wordNumberPattern is a regex alternation over every known number-word,
// longest first so "veintiuno" wins over "uno" inside the same token.
var wordNumberPattern = buildWordNumberPattern()

func buildWordNumberPattern() string {
	words := make([]string, 0, len(wordNumbers))
	for w := range wordNumbers {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
	return strings.Join(words, "|")
}

// parseNumberToken resolves a captured token that may be either a digit
// literal or a number-word. The digit branch is preferred.
func parseNumberToken(token string) (int, bool) {
	if n, err := strconv.Atoi(token); err == nil {
		return n, true
	}
	n, ok := wordNumbers[token]
	return n, ok
}
