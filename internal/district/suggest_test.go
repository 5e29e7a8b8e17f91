package district

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestReturnsNothingForShortQueries(t *testing.T) {
	assert.Empty(t, Suggest("", testEntries()))
	assert.Empty(t, Suggest("c", testEntries()))
}

func TestSuggestCapsResultsAtEight(t *testing.T) {
	entries := make([]DistrictEntry, 0, 20)
	for i := 0; i < 20; i++ {
		entries = append(entries, DistrictEntry{
			ID:    int64(i + 1),
			City:  "Casablanca",
			Name:  fmt.Sprintf("Quartier %02d", i+1),
			Price: decimal.NewFromInt(35),
		})
	}

	suggestions := Suggest("casablanca", entries)
	assert.Len(t, suggestions, maxSuggestions)
}

func TestSuggestRanksExactWordAboveSubstring(t *testing.T) {
	entries := []DistrictEntry{
		{ID: 1, City: "Tanger", Name: "Centre"},
		{ID: 2, City: "Casablanca", Name: "Centre Ville"},
		{ID: 3, City: "Rabat", Name: "Hassan"},
	}

	suggestions := Suggest("tanger", entries)
	require.NotEmpty(t, suggestions)
	assert.Equal(t, int64(1), suggestions[0].District.ID)
}

func TestSuggestFullMatchRanksFirst(t *testing.T) {
	entries := []DistrictEntry{
		{ID: 1, City: "Casablanca", Name: "Maarif"},
		{ID: 2, City: "Casablanca", Name: "Ain Diab"},
		{ID: 3, City: "Casablanca", Name: "Ain Sebaa"},
	}

	suggestions := Suggest("casablanca ain diab", entries)
	require.NotEmpty(t, suggestions)
	assert.Equal(t, int64(2), suggestions[0].District.ID)
	assert.True(t, suggestions[0].FullMatch)
}

func TestSuggestAdjacencyBonusPrefersPhraseOrder(t *testing.T) {
	entries := []DistrictEntry{
		{ID: 1, City: "Ain", Name: "Diab Casablanca"},
		{ID: 2, City: "Casablanca", Name: "Ain Diab"},
	}

	suggestions := Suggest("ain diab", entries)
	require.Len(t, suggestions, 2)
	// Both contain the words; the entry where they are consecutive in the same
	// order gets the adjacency bonus.
	assert.True(t, suggestions[0].Score >= suggestions[1].Score)
}

func TestSuggestAlphabeticalTieBreak(t *testing.T) {
	entries := []DistrictEntry{
		{ID: 1, City: "Salé", Name: "Tabriquet"},
		{ID: 2, City: "Salé", Name: "Bettana"},
	}

	suggestions := Suggest("salé", entries)
	require.Len(t, suggestions, 2)
	assert.Equal(t, int64(2), suggestions[0].District.ID, "equal scores should order alphabetically")
}

func TestSuggestExpandsAbbreviations(t *testing.T) {
	suggestions := Suggest("casa", testEntries())
	require.NotEmpty(t, suggestions)
	assert.Equal(t, "Casablanca", suggestions[0].District.City)
}

func TestSuggestArabicQuery(t *testing.T) {
	suggestions := Suggest("مراكش", testEntries())
	require.NotEmpty(t, suggestions)
	assert.Equal(t, int64(4), suggestions[0].District.ID)
}
