package catalog

import (
	"fmt"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

// Product is one storefront article. Slugs are derived from the name and used
// as the public identifier in URLs.
type Product struct {
	ID          string          `json:"id"`
	Slug        string          `json:"slug"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Images      []string        `json:"images"`
	Variations  []Variation     `json:"variations"`
}

// Variation is a purchasable flavor of a product (color and available sizes).
type Variation struct {
	ID    string   `json:"id"`
	Color string   `json:"color"`
	Sizes []string `json:"sizes,omitempty"`
}

// Catalog is the static in-process product catalog.
type Catalog struct {
	products    []Product
	bySlug      map[string]*Product
	byVariation map[string]*Product
}

func NewCatalog() *Catalog {
	c := &Catalog{
		bySlug:      make(map[string]*Product),
		byVariation: make(map[string]*Product),
	}

	c.products = defaultProducts()
	for i := range c.products {
		p := &c.products[i]
		if p.Slug == "" {
			p.Slug = slug.Make(p.Name)
		}
		c.bySlug[p.Slug] = p
		for _, v := range p.Variations {
			c.byVariation[v.ID] = p
		}
	}

	return c
}

// List returns all products. Callers must treat the slice as read-only.
func (c *Catalog) List() []Product {
	return c.products
}

// GetBySlug returns the product published under the given slug.
func (c *Catalog) GetBySlug(s string) (*Product, error) {
	p, ok := c.bySlug[s]
	if !ok {
		return nil, fmt.Errorf("product %q not found", s)
	}
	return p, nil
}

// GetVariation returns the product and variation for a variation id.
func (c *Catalog) GetVariation(variationID string) (*Product, *Variation, error) {
	p, ok := c.byVariation[variationID]
	if !ok {
		return nil, nil, fmt.Errorf("variation %q not found", variationID)
	}
	for i := range p.Variations {
		if p.Variations[i].ID == variationID {
			return p, &p.Variations[i], nil
		}
	}
	return nil, nil, fmt.Errorf("variation %q not found", variationID)
}
