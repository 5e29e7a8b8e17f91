package district

import (
	"sort"
	"strings"
)

const maxSuggestions = 8

// word-level scores for suggest mode.
const (
	wordExactScore      = 30
	wordPrefixScore     = 25
	wordRevPrefixScore  = 15
	wordSubstringScore  = 10
	wordRevSubstrScore  = 8
	adjacencyBonus      = 15
	fullMatchBonus      = 30
)

// Suggestion is one autocomplete candidate.
type Suggestion struct {
	District   DistrictEntry `json:"district"`
	Score      int           `json:"score"`
	FullMatch  bool          `json:"full_match"`
	MatchRatio float64       `json:"match_ratio"`
}

// Suggest ranks the catalog against a partial city input and returns up to the
// top 8 candidates for live autocomplete. Unlike Resolve it has no confidence
// threshold; anything with a positive score may surface.
func Suggest(query string, entries []DistrictEntry) []Suggestion {
	normalized := normalizeQuery(query)
	if len([]rune(normalized)) < minQueryLength {
		return nil
	}

	queryWords := strings.Fields(normalized)
	arabic := containsArabic(normalized)

	suggestions := make([]Suggestion, 0, len(entries))
	for _, entry := range entries {
		candidate := normalizeText(entry.City + " " + entry.Name)
		if arabic {
			candidate = normalizeText(entry.ArabicName)
		}
		candidateWords := strings.Fields(candidate)
		if len(candidateWords) == 0 {
			continue
		}

		score, matchedPositions := scoreSuggestWords(queryWords, candidateWords)
		if score == 0 {
			continue
		}

		matched := 0
		for _, pos := range matchedPositions {
			if pos >= 0 {
				matched++
			}
		}

		// Consecutive query words landing on consecutive candidate words
		// signal a phrase match.
		for i := 1; i < len(matchedPositions); i++ {
			if matchedPositions[i] >= 0 && matchedPositions[i] == matchedPositions[i-1]+1 {
				score += adjacencyBonus
			}
		}

		fullMatch := matched == len(queryWords) && len(queryWords) > 1
		if fullMatch {
			score += fullMatchBonus
		}

		suggestions = append(suggestions, Suggestion{
			District:   entry,
			Score:      score,
			FullMatch:  fullMatch,
			MatchRatio: float64(matched) / float64(len(candidateWords)),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.FullMatch != b.FullMatch {
			return a.FullMatch
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.MatchRatio != b.MatchRatio {
			return a.MatchRatio > b.MatchRatio
		}
		return displayName(a.District) < displayName(b.District)
	})

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// scoreSuggestWords scores every query word against its best candidate word and
// records which candidate position it landed on (-1 when unmatched).
func scoreSuggestWords(queryWords, candidateWords []string) (int, []int) {
	total := 0
	positions := make([]int, len(queryWords))

	for i, qw := range queryWords {
		best := 0
		positions[i] = -1
		for j, cw := range candidateWords {
			var s int
			switch {
			case cw == qw:
				s = wordExactScore
			case strings.HasPrefix(cw, qw):
				s = wordPrefixScore
			case strings.HasPrefix(qw, cw):
				s = wordRevPrefixScore
			case strings.Contains(cw, qw):
				s = wordSubstringScore
			case strings.Contains(qw, cw):
				s = wordRevSubstrScore
			}
			if s > best {
				best = s
				positions[i] = j
			}
		}
		total += best
	}

	return total, positions
}

func displayName(entry DistrictEntry) string {
	return normalizeText(entry.City + " " + entry.Name)
}
