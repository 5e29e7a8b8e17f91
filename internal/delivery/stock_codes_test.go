package delivery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCodeMap() CodeMap {
	return CodeMap{
		"racket-vertex-black": Simple("PRA427", "PRA427B", "PRA999"),
		"balls-tour-3pack":    Simple("PRB120", "PRB121"),
		"shoes-court-pro": Sized(map[string]FallbackChain{
			"41": {"PRH241", "PRH241B"},
			"42": {"PRH242", "PRH242B"},
		}),
	}
}

func TestResolveChainByVariationID(t *testing.T) {
	chain := testCodeMap().ResolveChain(LineItem{VariationID: "racket-vertex-black"})
	assert.Equal(t, FallbackChain{"PRA427", "PRA427B", "PRA999"}, chain)
}

func TestResolveChainBySize(t *testing.T) {
	chain := testCodeMap().ResolveChain(LineItem{VariationID: "shoes-court-pro", Size: "42"})
	assert.Equal(t, FallbackChain{"PRH242", "PRH242B"}, chain)
}

func TestResolveChainFallsBackToNameHeuristics(t *testing.T) {
	chain := testCodeMap().ResolveChain(LineItem{VariationID: "unknown", ProductName: "Vertex 03 Racket"})
	assert.Equal(t, FallbackChain{"PRA427", "PRA427B"}, chain)
}

func TestResolveChainDefaultsForUnrecognizedItems(t *testing.T) {
	chain := testCodeMap().ResolveChain(LineItem{VariationID: "unknown", ProductName: "Mystery item"})
	assert.Equal(t, defaultChain, chain)
}

func TestBuildAttemptChainAggregatesQuantities(t *testing.T) {
	// Two items sharing the same level-0 code must sum their quantities.
	codeMap := CodeMap{
		"a": Simple("PRA427", "PRA427B"),
		"b": Simple("PRA427", "PRA999"),
	}
	items := []LineItem{
		{VariationID: "a", Quantity: 2},
		{VariationID: "b", Quantity: 3},
	}

	chain := BuildAttemptChain(items, codeMap)
	require.Len(t, chain, 2)
	assert.Equal(t, "PRA427:5", chain[0])
	assert.Equal(t, "PRA427B:2,PRA999:3", chain[1])
}

func TestBuildAttemptChainPadsShorterChains(t *testing.T) {
	codeMap := CodeMap{
		"deep":    Simple("C1", "C2", "C3"),
		"shallow": Simple("S1"),
	}
	items := []LineItem{
		{VariationID: "deep", Quantity: 1},
		{VariationID: "shallow", Quantity: 2},
	}

	chain := BuildAttemptChain(items, codeMap)
	require.Len(t, chain, 3)
	assert.Equal(t, "C1:1,S1:2", chain[0])
	assert.Equal(t, "C2:1,S1:2", chain[1])
	assert.Equal(t, "C3:1,S1:2", chain[2])
}

func TestBuildAttemptChainEmptyItems(t *testing.T) {
	assert.Nil(t, BuildAttemptChain(nil, testCodeMap()))
}
