package delivery

import (
	"fmt"
	"strings"
)

// FallbackChain is an ordered list of courier stock codes. Earlier codes are
// preferred; later codes are the recovery path when the courier reports the
// earlier one out of stock.
type FallbackChain []string

// CodeMapping resolves a product variation to its fallback chain. Exactly one
// of Simple or Sized is set; Sized keys chains by size. Legacy config carried
// these as loose shapes (bare code, primary/fallback pair, nested size table),
// here they are normalized once through the constructors below.
type CodeMapping struct {
	Simple FallbackChain
	Sized  map[string]FallbackChain
}

// Simple builds a size-independent mapping.
func Simple(codes ...string) CodeMapping {
	return CodeMapping{Simple: FallbackChain(codes)}
}

// Sized builds a per-size mapping.
func Sized(chains map[string]FallbackChain) CodeMapping {
	return CodeMapping{Sized: chains}
}

// CodeMap keys mappings by product-variation identifier.
type CodeMap map[string]CodeMapping

// defaultChain is the last-resort pair for items nothing else recognizes.
var defaultChain = FallbackChain{"PRGEN001", "PRGEN002"}

// nameHeuristics maps product-name substrings to chains, used when an item's
// variation id is not in the map.
var nameHeuristics = []struct {
	substring string
	chain     FallbackChain
}{
	{"racket", FallbackChain{"PRA427", "PRA427B"}},
	{"raquette", FallbackChain{"PRA427", "PRA427B"}},
	{"ball", FallbackChain{"PRB120", "PRB121"}},
	{"balle", FallbackChain{"PRB120", "PRB121"}},
	{"bag", FallbackChain{"PRS310", "PRS311"}},
	{"sac", FallbackChain{"PRS310", "PRS311"}},
	{"shoe", FallbackChain{"PRH200", "PRH201"}},
	{"grip", FallbackChain{"PRG050", "PRG051"}},
}

// ResolveChain returns the fallback chain for one line item: mapping by
// variation id (and size when the mapping is sized), then name heuristics,
// then the hardcoded default pair.
func (m CodeMap) ResolveChain(item LineItem) FallbackChain {
	if mapping, ok := m[item.VariationID]; ok {
		if mapping.Sized != nil {
			if chain, ok := mapping.Sized[item.Size]; ok && len(chain) > 0 {
				return chain
			}
		} else if len(mapping.Simple) > 0 {
			return mapping.Simple
		}
	}

	name := strings.ToLower(item.ProductName)
	for _, h := range nameHeuristics {
		if strings.Contains(name, h.substring) {
			return h.chain
		}
	}

	return defaultChain
}

// BuildAttemptChain computes every fallback level up front. Level k aggregates
// "code:qty" across all items' k-th code (quantities summed per code); items
// with a shorter chain keep contributing their last code. Level 0 is always
// the normal payload.
func BuildAttemptChain(items []LineItem, codeMap CodeMap) []string {
	depth := 0
	chains := make([]FallbackChain, len(items))
	for i, item := range items {
		chains[i] = codeMap.ResolveChain(item)
		if len(chains[i]) > depth {
			depth = len(chains[i])
		}
	}
	if depth == 0 {
		return nil
	}

	levels := make([]string, 0, depth)
	for level := 0; level < depth; level++ {
		quantities := make(map[string]int64)
		var order []string

		for i, item := range items {
			chain := chains[i]
			code := chain[len(chain)-1]
			if level < len(chain) {
				code = chain[level]
			}
			if _, seen := quantities[code]; !seen {
				order = append(order, code)
			}
			quantities[code] += item.Quantity
		}

		parts := make([]string, 0, len(order))
		for _, code := range order {
			parts = append(parts, fmt.Sprintf("%s:%d", code, quantities[code]))
		}
		levels = append(levels, strings.Join(parts, ","))
	}

	return levels
}
