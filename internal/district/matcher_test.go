package district

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntries() []DistrictEntry {
	return []DistrictEntry{
		{ID: 1, City: "Casablanca", Name: "Maarif", ArabicName: "الدار البيضاء المعاريف", Price: decimal.NewFromInt(35)},
		{ID: 2, City: "Casablanca", Name: "Ain Diab", ArabicName: "الدار البيضاء عين الذياب", Price: decimal.NewFromInt(35)},
		{ID: 3, City: "Rabat", Name: "Agdal", ArabicName: "الرباط أكدال", Price: decimal.NewFromInt(40)},
		{ID: 4, City: "Marrakech", Name: "Guéliz", ArabicName: "مراكش جليز", Price: decimal.NewFromInt(45)},
		{ID: 5, City: "Tanger", Name: "Centre", ArabicName: "طنجة المركز", Price: decimal.NewFromInt(45)},
		{ID: CatchAllDistrictID, City: "Autre", Name: "Autre", ArabicName: "أخرى", Price: decimal.NewFromInt(50)},
	}
}

func TestResolveExactCityMatchScoresFull(t *testing.T) {
	entries := testEntries()

	for _, entry := range entries {
		match, ok := Resolve(entry.City, entries)
		require.True(t, ok, "city %q should resolve", entry.City)
		assert.Equal(t, 100, match.Score)
		assert.Equal(t, entry.City, match.District.City)
	}
}

func TestResolveExactDistrictNameMatchScoresFull(t *testing.T) {
	entries := testEntries()

	match, ok := Resolve("agdal", entries)
	require.True(t, ok)
	assert.Equal(t, 100, match.Score)
	assert.Equal(t, int64(3), match.District.ID)
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	match, ok := Resolve("CASABLANCA", testEntries())
	require.True(t, ok)
	assert.Equal(t, 100, match.Score)
}

func TestResolveRejectsShortQueries(t *testing.T) {
	for _, query := range []string{"", "c", " a "} {
		match, ok := Resolve(query, testEntries())
		assert.False(t, ok, "query %q should not resolve", query)
		assert.Nil(t, match)
	}
}

func TestResolveExpandsAbbreviations(t *testing.T) {
	match, ok := Resolve("Casa", testEntries())
	require.True(t, ok)
	assert.GreaterOrEqual(t, match.Score, 80)
	assert.Equal(t, "Casablanca", match.District.City)

	match, ok = Resolve("rb", testEntries())
	require.True(t, ok)
	assert.Equal(t, "Rabat", match.District.City)
}

func TestResolvePrefixMatchScoresEighty(t *testing.T) {
	match, ok := Resolve("marrak", testEntries())
	require.True(t, ok)
	assert.Equal(t, 80, match.Score)
	assert.Equal(t, "Marrakech", match.District.City)
}

func TestResolveNeverReturnsBelowThreshold(t *testing.T) {
	match, ok := Resolve("zz", testEntries())
	assert.False(t, ok)
	assert.Nil(t, match)

	if match, ok := Resolve("diab", testEntries()); ok {
		assert.GreaterOrEqual(t, match.Score, resolveThreshold)
	}
}

func TestResolveTieKeepsFirstSeenEntry(t *testing.T) {
	// Both Casablanca entries score identically on a city-only query;
	// the catalog's own order decides.
	match, ok := Resolve("casablanca", testEntries())
	require.True(t, ok)
	assert.Equal(t, int64(1), match.District.ID)
}

func TestResolveArabicQuery(t *testing.T) {
	entries := testEntries()

	match, ok := Resolve("الرباط أكدال", entries)
	require.True(t, ok)
	assert.Equal(t, 100, match.Score)
	assert.Equal(t, int64(3), match.District.ID)

	// Prefix of the Arabic name.
	match, ok = Resolve("مراكش", entries)
	require.True(t, ok)
	assert.Equal(t, 85, match.Score)
	assert.Equal(t, int64(4), match.District.ID)
}
