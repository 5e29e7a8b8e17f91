package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogSlugsAreUniqueAndResolvable(t *testing.T) {
	c := NewCatalog()

	seen := make(map[string]bool)
	for _, p := range c.List() {
		require.NotEmpty(t, p.Slug)
		assert.False(t, seen[p.Slug], "duplicate slug %q", p.Slug)
		seen[p.Slug] = true

		got, err := c.GetBySlug(p.Slug)
		require.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)
	}
}

func TestGetBySlugUnknown(t *testing.T) {
	_, err := NewCatalog().GetBySlug("no-such-product")
	assert.Error(t, err)
}

func TestGetVariation(t *testing.T) {
	c := NewCatalog()

	product, variation, err := c.GetVariation("racket-vertex-black")
	require.NoError(t, err)
	assert.Equal(t, "prod-racket-vertex", product.ID)
	assert.Equal(t, "Black", variation.Color)

	_, _, err = c.GetVariation("missing")
	assert.Error(t, err)
}

func TestEveryVariationHasAStockChain(t *testing.T) {
	c := NewCatalog()
	codes := StockCodes()

	for _, p := range c.List() {
		for _, v := range p.Variations {
			mapping, ok := codes[v.ID]
			require.True(t, ok, "variation %q has no stock mapping", v.ID)

			if mapping.Sized != nil {
				for _, size := range v.Sizes {
					chain, ok := mapping.Sized[size]
					require.True(t, ok, "variation %q size %q has no chain", v.ID, size)
					assert.NotEmpty(t, chain)
				}
			} else {
				assert.NotEmpty(t, mapping.Simple, "variation %q chain is empty", v.ID)
			}
		}
	}
}
