// Package catalog exposes the fixed merchandising taxonomy the storefront
// renders its filters and forms from. The lists are constants of the
// business, not database state.
package catalog

import "ramba-be/internal/product"

type Category struct {
	Type          product.ProductType `json:"type"`
	Label         string              `json:"label"`
	SubCategories []string            `json:"sub_categories"`
	Materials     []string            `json:"materials"`
}

type Taxonomy struct {
	Categories      []Category `json:"categories"`
	Materials       []string   `json:"materials"`
	WashCareOptions []string   `json:"wash_care_options"`
}

var labels = map[product.ProductType]string{
	product.TypeShawl:   "Shawls",
	product.TypeStole:   "Stoles",
	product.TypeMuffler: "Mufflers",
	product.TypeRumala:  "Rumala",
	product.TypeDress:   "Dresses",
	product.TypeKimono:  "Kimonos",
	product.TypeCape:    "Capes",
	product.TypeKaftan:  "Kaftans",
	product.TypeScarf:   "Scarfs",
}

var subCategories = map[product.ProductType][]string{
	product.TypeShawl: {
		"Plain Shawls", "Embroidered Shawls", "Printed Shawls",
		"Woven Shawls", "Reversible Shawls",
	},
	product.TypeStole: {
		"Lightweight Stoles", "Digital Printed Stoles", "Embroidered Stoles",
		"Kani Stoles", "Reversible Stoles", "Hand Printed Stoles",
	},
	product.TypeMuffler: {
		"Super Silk Mufflers", "Wool Mufflers", "Boiled Wool Mufflers",
		"Embriodary Mufflers", "Unisex Mufflers",
	},
	product.TypeRumala: {
		"Plain Rumala", "Printed Rumala", "Embroidered Rumala",
		"Mulberry Silk Rumala", "Pure Silk Rumala",
		"Silk Embroidered Rumala", "Silk Printed Rumala",
	},
	product.TypeKimono: {
		"Open Kimonos", "Belted Kimonos", "Long Kimonos", "Short Kimonos",
	},
	product.TypeDress: {
		"Casual Dresses", "Evening Dresses", "Ethnic Dresses",
		"Layered / Winter Dresses", "Beach Dress",
	},
	product.TypeCape: {
		"Winter Capes", "Fashion Capes", "Long Capes", "Short Capes",
	},
	product.TypeKaftan: {
		"Tunics", "Dress",
	},
	product.TypeScarf: {
		"Scarf (Long): 50 × 180 cm", "Scarf (Square): 90 × 90 cm",
	},
}

var materials = []string{
	"Pashmina", "Cashmere Wool", "Merino Wool", "Lambswool", "Yak Wool",
	"Alpaca Wool", "Angora Wool", "Wool", "Tweed Wool", "Worsted Wool",
	"Boiled Wool", "Super Silk", "Silk–Wool Blend", "Cotton–Wool Blend",
	"Acrylic–Wool Blend", "Poly–Wool Blend", "Silk", "Mulberry Silk",
	"Tussar Silk", "Eri Silk", "Modal", "Modal–Silk Blend",
	"Viscose / Rayon", "Cotton", "Organic Cotton", "Linen", "Bamboo",
	"Tencel / Lyocell", "Wool (lightweight)", "Blended", "Viscose crepe",
	"Satin", "Cashmere", "Blend", "Pure Silk (Mulberry Silk)",
	"Pashmina (Cashmere Grade)",
}

// categoryMaterials narrows the material list for categories that only come
// in a subset; categories absent here offer the full list.
var categoryMaterials = map[product.ProductType][]string{
	product.TypeMuffler: {
		"Merino Wool", "Lambswool", "Cashmere Wool", "Yak Wool", "Wool",
		"Acrylic–Wool Blend", "Poly–Wool Blend", "Cotton",
	},
	product.TypeRumala: {
		"Mulberry Silk", "Tussar Silk", "Eri Silk", "Cotton",
		"Organic Cotton", "Modal", "Modal–Silk Blend", "Linen", "Pashmina",
		"Cashmere Wool", "Merino Wool", "Tweed Wool", "Blended",
		"Acrylic–Wool Blend",
	},
}

var washCareOptions = []string{
	"Dry Clean Only", "Hand Wash Cold", "Machine Wash Gentle",
	"Do Not Bleach", "Iron Low Heat", "Tumble Dry Low",
}

func Get() Taxonomy {
	categories := make([]Category, 0, len(product.AllTypes))
	for _, pt := range product.AllTypes {
		mats := categoryMaterials[pt]
		if mats == nil {
			mats = materials
		}
		categories = append(categories, Category{
			Type:          pt,
			Label:         labels[pt],
			SubCategories: subCategories[pt],
			Materials:     mats,
		})
	}

	return Taxonomy{
		Categories:      categories,
		Materials:       materials,
		WashCareOptions: washCareOptions,
	}
}
