package parser

import (
	"sort"
	"strings"

	"github.com/de-tools/report-pilot/pkg/models/domain"
)

const maxAlternatives = 3

// classification is the outcome of matching a command against the catalog.
type classification struct {
	entry        domain.CatalogEntry
	score        float64
	matched      bool
	alternatives []domain.Alternative
}

// classify scores the normalized command against every catalog entry and
// picks the best match. Scoring per entry: each keyword phrase found in the
// text contributes (words-in-phrase * 2), multiplied by 1.5 when the command
// starts with that phrase; the entry total is then weighted by priority/10.
// Ties resolve to the lexicographically smaller identifier because the
// catalog iterates in sorted order and only a strictly higher score replaces
// the current best.
func classify(text string, catalog []domain.CatalogEntry) classification {
	var best classification
	var scored []domain.Alternative

	for _, entry := range catalog {
		score := scoreEntry(text, entry)
		if score <= 0 {
			continue
		}
		scored = append(scored, domain.Alternative{
			Kind:  entry.Kind,
			Name:  entry.Name,
			Score: score,
		})
		if !best.matched || score > best.score {
			best = classification{entry: entry, score: score, matched: true}
		}
	}

	if !best.matched {
		// Nothing matched: fall back to the basic sales report without
		// contributing classification confidence.
		fallback, _ := domain.CatalogEntryFor(domain.ReportSalesBasic)
		return classification{entry: fallback}
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	alternatives := make([]domain.Alternative, 0, maxAlternatives)
	for _, alt := range scored {
		if alt.Kind == best.entry.Kind {
			continue
		}
		alternatives = append(alternatives, alt)
		if len(alternatives) == maxAlternatives {
			break
		}
	}
	best.alternatives = alternatives

	return best
}

func scoreEntry(text string, entry domain.CatalogEntry) float64 {
	var score float64
	for _, keyword := range entry.Keywords {
		if !containsPhrase(text, keyword) {
			continue
		}
		phraseScore := float64(len(strings.Fields(keyword))) * 2
		if strings.HasPrefix(text, keyword) {
			phraseScore *= 1.5
		}
		score += phraseScore
	}
	return score * float64(entry.Priority) / 10
}

// containsPhrase matches on word boundaries so "abc" does not fire inside
// "fabcar".
func containsPhrase(text, phrase string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], phrase)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(phrase)
		startOK := start == 0 || text[start-1] == ' '
		endOK := end == len(text) || text[end] == ' '
		if startOK && endOK {
			return true
		}
		idx = start + 1
	}
}
