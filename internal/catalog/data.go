package catalog

import (
	"github.com/G-omar-H/weLovePadel-sub000/internal/delivery"
	"github.com/shopspring/decimal"
)

func defaultProducts() []Product {
	return []Product{
		{
			ID:       "prod-racket-vertex",
			Name:     "Vertex 03 Racket",
			Category: "rackets",
			Price:    decimal.NewFromInt(2890),
			Description: "Diamond-shape attack racket, carbon face, medium-hard " +
				"EVA core. The club favorite for advanced players.",
			Images: []string{"/img/products/vertex-03-black.jpg", "/img/products/vertex-03-red.jpg"},
			Variations: []Variation{
				{ID: "racket-vertex-black", Color: "Black"},
				{ID: "racket-vertex-red", Color: "Red"},
			},
		},
		{
			ID:       "prod-racket-spark",
			Name:     "Spark Control Racket",
			Category: "rackets",
			Price:    decimal.NewFromInt(1490),
			Description: "Round-shape control racket with soft EVA core, " +
				"forgiving sweet spot for intermediate players.",
			Images: []string{"/img/products/spark-control.jpg"},
			Variations: []Variation{
				{ID: "racket-spark-blue", Color: "Blue"},
			},
		},
		{
			ID:          "prod-balls-tour",
			Name:        "Tour Padel Balls (3-pack)",
			Category:    "balls",
			Price:       decimal.NewFromInt(89),
			Description: "Pressurized tournament balls, WPT approved.",
			Images:      []string{"/img/products/balls-tour.jpg"},
			Variations: []Variation{
				{ID: "balls-tour-3pack", Color: "Yellow"},
			},
		},
		{
			ID:          "prod-shoes-court",
			Name:        "Court Pro Shoes",
			Category:    "shoes",
			Price:       decimal.NewFromInt(1190),
			Description: "Clay-pattern outsole, reinforced toe, made for lateral movement.",
			Images:      []string{"/img/products/court-pro.jpg"},
			Variations: []Variation{
				{ID: "shoes-court-pro", Color: "White", Sizes: []string{"40", "41", "42", "43", "44"}},
			},
		},
		{
			ID:          "prod-bag-weekend",
			Name:        "Weekend Padel Bag",
			Category:    "bags",
			Price:       decimal.NewFromInt(690),
			Description: "Two-racket thermo compartment, shoe pocket, shoulder strap.",
			Images:      []string{"/img/products/weekend-bag.jpg"},
			Variations: []Variation{
				{ID: "bag-weekend-black", Color: "Black"},
				{ID: "bag-weekend-navy", Color: "Navy"},
			},
		},
		{
			ID:          "prod-overgrip-3pack",
			Name:        "Comfort Overgrips (3-pack)",
			Category:    "accessories",
			Price:       decimal.NewFromInt(59),
			Description: "Tacky absorbent overgrips, white.",
			Images:      []string{"/img/products/overgrips.jpg"},
			Variations: []Variation{
				{ID: "grip-comfort-white", Color: "White"},
			},
		},
	}
}

// StockCodes maps every variation to its courier fallback chain. Order inside
// a chain is retry precedence: the first code is preferred, later codes are
// the recovery path when the courier reports the earlier one out of stock.
func StockCodes() delivery.CodeMap {
	return delivery.CodeMap{
		"racket-vertex-black": delivery.Simple("PRA427", "PRA427B", "PRA999"),
		"racket-vertex-red":   delivery.Simple("PRA428", "PRA428B", "PRA999"),
		"racket-spark-blue":   delivery.Simple("PRA510", "PRA999"),
		"balls-tour-3pack":    delivery.Simple("PRB120", "PRB121"),
		"bag-weekend-black":   delivery.Simple("PRS310", "PRS311"),
		"bag-weekend-navy":    delivery.Simple("PRS312", "PRS311"),
		"grip-comfort-white":  delivery.Simple("PRG050", "PRG051"),
		"shoes-court-pro": delivery.Sized(map[string]delivery.FallbackChain{
			"40": {"PRH240", "PRH240B"},
			"41": {"PRH241", "PRH241B"},
			"42": {"PRH242", "PRH242B"},
			"43": {"PRH243", "PRH243B"},
			"44": {"PRH244", "PRH244B"},
		}),
	}
}
