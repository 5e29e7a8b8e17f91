package district

import (
	"strings"
	"unicode"
)

// Resolve and Suggest are two modes of the same matcher. Resolve picks the single
// best district for a finalized city input and is gated by a confidence threshold;
// Suggest ranks the top candidates for live autocomplete and is deliberately
// permissive. Both share the normalization core below (abbreviation expansion,
// Arabic-script detection, word splitting).

const (
	// minQueryLength rejects inputs too short to mean anything.
	minQueryLength = 2

	// resolveThreshold is the minimum confidence accepted in resolve mode.
	resolveThreshold = 50
)

// cityAbbreviations maps the shorthand customers actually type to the full city
// name, applied word by word before any scoring.
var cityAbbreviations = map[string]string{
	"casa":      "casablanca",
	"casablanc": "casablanca",
	"rb":        "rabat",
	"rba":       "rabat",
	"kech":      "marrakech",
	"marrakesh": "marrakech",
	"mkch":      "marrakech",
	"tanja":     "tanger",
	"tangier":   "tanger",
	"fes":       "fès",
	"agad":      "agadir",
	"moham":     "mohammedia",
	"eljadida":  "el jadida",
}

// Match is the outcome of a resolve call. Never persisted.
type Match struct {
	District DistrictEntry
	Score    int
}

// Resolve returns the single best-scoring district for a free-text city input,
// or false when no entry clears the confidence threshold.
//
// Ties keep the first-seen catalog entry. The catalog arrives in the courier's
// own order, which is the precedence the legacy storefront shipped with.
func Resolve(query string, entries []DistrictEntry) (*Match, bool) {
	normalized := normalizeQuery(query)
	if len([]rune(normalized)) < minQueryLength {
		return nil, false
	}

	arabic := containsArabic(normalized)

	var best *Match
	for _, entry := range entries {
		var score int
		if arabic {
			score = scoreArabic(normalized, entry)
		} else {
			score = scoreLatin(normalized, entry)
		}

		if best == nil || score > best.Score {
			best = &Match{District: entry, Score: score}
		}
	}

	if best == nil || best.Score < resolveThreshold {
		return nil, false
	}
	return best, true
}

// scoreLatin scores a Latin-script query against the entry's city and district
// names: exact 100, prefix 80, substring 60, all-words overlap up to 50.
func scoreLatin(query string, entry DistrictEntry) int {
	score := 0
	for _, candidate := range []string{normalizeText(entry.City), normalizeText(entry.Name)} {
		if candidate == "" {
			continue
		}
		switch {
		case candidate == query:
			return 100
		case strings.HasPrefix(candidate, query):
			score = maxInt(score, 80)
		case strings.Contains(candidate, query):
			score = maxInt(score, 60)
		default:
			score = maxInt(score, wordOverlapScore(query, candidate, 50, true))
		}
	}
	return score
}

// scoreArabic scores an Arabic-script query against the entry's Arabic name:
// exact 100, prefix 85, substring 70, word overlap up to 65.
func scoreArabic(query string, entry DistrictEntry) int {
	candidate := normalizeText(entry.ArabicName)
	if candidate == "" {
		return 0
	}
	switch {
	case candidate == query:
		return 100
	case strings.HasPrefix(candidate, query):
		return 85
	case strings.Contains(candidate, query):
		return 70
	default:
		return wordOverlapScore(query, candidate, 65, false)
	}
}

// wordOverlapScore counts query words present in the candidate (exact or prefix)
// and scales the hit ratio to maxScore. With requireAll, a single missed query
// word zeroes the score.
func wordOverlapScore(query, candidate string, maxScore int, requireAll bool) int {
	queryWords := strings.Fields(query)
	candidateWords := strings.Fields(candidate)
	if len(queryWords) == 0 || len(candidateWords) == 0 {
		return 0
	}

	matched := 0
	for _, qw := range queryWords {
		for _, cw := range candidateWords {
			if cw == qw || strings.HasPrefix(cw, qw) {
				matched++
				break
			}
		}
	}

	if matched == 0 {
		return 0
	}
	if requireAll && matched < len(queryWords) {
		return 0
	}

	span := len(queryWords)
	if len(candidateWords) > span {
		span = len(candidateWords)
	}
	return maxScore * matched / span
}

// normalizeQuery lowercases, collapses whitespace and expands abbreviations.
func normalizeQuery(query string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(query)))
	for i, word := range words {
		if full, ok := cityAbbreviations[word]; ok {
			words[i] = full
		}
	}
	return strings.Join(words, " ")
}

// normalizeText lowercases and collapses whitespace without expanding anything.
// Catalog entries carry full names already.
func normalizeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(text))), " ")
}

// containsArabic reports whether the input holds at least one Arabic-script rune.
func containsArabic(s string) bool {
	for _, r := range s {
		if unicode.In(r, unicode.Arabic) {
			return true
		}
	}
	return false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
