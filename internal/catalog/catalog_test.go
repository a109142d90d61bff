package catalog

import (
	"testing"

	"ramba-be/internal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	tax := Get()

	require.Len(t, tax.Categories, len(product.AllTypes))
	assert.NotEmpty(t, tax.Materials)
	assert.NotEmpty(t, tax.WashCareOptions)

	byType := make(map[product.ProductType]Category, len(tax.Categories))
	for _, c := range tax.Categories {
		byType[c.Type] = c
	}

	t.Run("EveryCategoryLabelled", func(t *testing.T) {
		for _, c := range tax.Categories {
			assert.NotEmpty(t, c.Label, "type %s", c.Type)
		}
	})

	t.Run("OrderFollowsProductTypes", func(t *testing.T) {
		for i, pt := range product.AllTypes {
			assert.Equal(t, pt, tax.Categories[i].Type)
		}
	})

	t.Run("MufflersHaveNarrowedMaterials", func(t *testing.T) {
		mufflers := byType[product.TypeMuffler]
		assert.Less(t, len(mufflers.Materials), len(tax.Materials))
		assert.Contains(t, mufflers.Materials, "Merino Wool")
	})

	t.Run("ShawlsOfferFullMaterialList", func(t *testing.T) {
		shawls := byType[product.TypeShawl]
		assert.Equal(t, tax.Materials, shawls.Materials)
	})

	t.Run("SubCategoriesPresent", func(t *testing.T) {
		assert.Contains(t, byType[product.TypeShawl].SubCategories, "Embroidered Shawls")
		assert.Contains(t, byType[product.TypeRumala].SubCategories, "Pure Silk Rumala")
	})
}
