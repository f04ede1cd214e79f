package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fixtureProducts() []Product {
	return []Product{
		{ID: "1", Name: "Bear Logo T-Shirt", Description: "Heavyweight cotton tee", Price: 39.99, Category: "T-Shirts", Sizes: []string{"S", "M", "L"}, Colors: []string{"Black", "White"}, InStock: true},
		{ID: "2", Name: "Classic Denim Jacket", Description: "Stonewashed denim", Price: 89.99, Category: "Jackets", Sizes: []string{"M", "L"}, Colors: []string{"Indigo"}, InStock: true},
		{ID: "3", Name: "Urban Hoodie", Description: "Fleece-lined pullover", Price: 59.99, Category: "Hoodies", Sizes: []string{"S", "XL"}, Colors: []string{"Charcoal", "Olive"}, InStock: false},
		{ID: "4", Name: "Vintage T-Shirt", Description: "Garment-dyed tee", Price: 34.99, Category: "T-Shirts", Sizes: []string{"S"}, Colors: []string{"Rust"}, InStock: true},
	}
}

func ids(products []Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestApply_NoCriteriaKeepsSourceOrder(t *testing.T) {
	products := fixtureProducts()

	got := Apply(products, FilterSpec{})

	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(got))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	products := fixtureProducts()

	Apply(products, FilterSpec{Sort: SortPriceAsc, Search: "tee"})

	assert.Equal(t, ids(fixtureProducts()), ids(products))
}

func TestApply_SearchMatchesNameAndDescription(t *testing.T) {
	products := fixtureProducts()

	t.Run("matches name case-insensitively", func(t *testing.T) {
		got := Apply(products, FilterSpec{Search: "  DENIM "})
		assert.Equal(t, []string{"2"}, ids(got))
	})

	t.Run("matches description", func(t *testing.T) {
		got := Apply(products, FilterSpec{Search: "fleece"})
		assert.Equal(t, []string{"3"}, ids(got))
	})

	t.Run("blank search is inactive", func(t *testing.T) {
		got := Apply(products, FilterSpec{Search: "   "})
		assert.Len(t, got, 4)
	})
}

func TestApply_CategoryFilter(t *testing.T) {
	products := fixtureProducts()

	got := Apply(products, FilterSpec{Categories: []string{"T-Shirts"}})

	assert.Equal(t, []string{"1", "4"}, ids(got))
}

func TestApply_PriceRange(t *testing.T) {
	products := fixtureProducts()

	t.Run("min and max bound", func(t *testing.T) {
		got := Apply(products, FilterSpec{MinPrice: 35, MaxPrice: 60})
		assert.Equal(t, []string{"1", "3"}, ids(got))
	})

	t.Run("zero max price means unbounded", func(t *testing.T) {
		got := Apply(products, FilterSpec{MinPrice: 50})
		assert.Equal(t, []string{"2", "3"}, ids(got))
	})

	t.Run("boundary prices are inclusive", func(t *testing.T) {
		got := Apply(products, FilterSpec{MinPrice: 39.99, MaxPrice: 39.99})
		assert.Equal(t, []string{"1"}, ids(got))
	})
}

func TestApply_SizeAndColorIntersect(t *testing.T) {
	products := fixtureProducts()

	t.Run("any overlapping size matches", func(t *testing.T) {
		got := Apply(products, FilterSpec{Sizes: []string{"XL", "M"}})
		assert.Equal(t, []string{"1", "2", "3"}, ids(got))
	})

	t.Run("color filter", func(t *testing.T) {
		got := Apply(products, FilterSpec{Colors: []string{"Rust", "Indigo"}})
		assert.Equal(t, []string{"2", "4"}, ids(got))
	})

	t.Run("empty multi-select is inactive", func(t *testing.T) {
		got := Apply(products, FilterSpec{Sizes: []string{}, Colors: nil})
		assert.Len(t, got, 4)
	})
}

func TestApply_InStockOnly(t *testing.T) {
	products := fixtureProducts()

	got := Apply(products, FilterSpec{InStockOnly: true})

	assert.Equal(t, []string{"1", "2", "4"}, ids(got))
}

func TestApply_Sorting(t *testing.T) {
	products := fixtureProducts()

	t.Run("price ascending", func(t *testing.T) {
		got := Apply(products, FilterSpec{Sort: SortPriceAsc})
		assert.Equal(t, []string{"4", "1", "3", "2"}, ids(got))
	})

	t.Run("price descending", func(t *testing.T) {
		got := Apply(products, FilterSpec{Sort: SortPriceDesc})
		assert.Equal(t, []string{"2", "3", "1", "4"}, ids(got))
	})

	t.Run("name ascending", func(t *testing.T) {
		got := Apply(products, FilterSpec{Sort: SortNameAsc})
		assert.Equal(t, []string{"1", "2", "3", "4"}, ids(got))
	})

	t.Run("name descending", func(t *testing.T) {
		got := Apply(products, FilterSpec{Sort: SortNameDesc})
		assert.Equal(t, []string{"4", "3", "2", "1"}, ids(got))
	})

	t.Run("unknown sort key keeps source order", func(t *testing.T) {
		got := Apply(products, FilterSpec{Sort: SortKey("bogus")})
		assert.Equal(t, []string{"1", "2", "3", "4"}, ids(got))
	})
}

func TestApply_FiltersComposeBeforeSort(t *testing.T) {
	products := fixtureProducts()

	got := Apply(products, FilterSpec{
		Categories: []string{"T-Shirts", "Jackets"},
		MaxPrice:   90,
		Sort:       SortPriceDesc,
	})

	assert.Equal(t, []string{"2", "1", "4"}, ids(got))
}

func TestApply_EmptyInput(t *testing.T) {
	got := Apply(nil, FilterSpec{Search: "tee", Sort: SortPriceAsc})

	assert.NotNil(t, got)
	assert.Empty(t, got)
}
