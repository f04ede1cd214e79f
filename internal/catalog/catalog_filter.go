package catalog

import (
	"sort"
	"strings"
)

type SortKey string

const (
	SortNone      SortKey = ""
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
)

// FilterSpec is the current set of narrowing/sorting criteria for the product
// listing. It is rebuilt on every request and has no identity beyond that.
//
// An empty multi-select (no categories, sizes or colors ticked) means the
// filter is inactive, not that nothing matches. MaxPrice <= 0 means no upper
// bound.
type FilterSpec struct {
	Search      string
	Categories  []string
	Sizes       []string
	Colors      []string
	MinPrice    float64
	MaxPrice    float64
	InStockOnly bool
	Sort        SortKey
}

// Apply narrows and orders products according to the given criteria. It is pure: the input
// slice is never modified and the result is a fresh slice. Stages run in a
// fixed order with sort always last; without a sort key the source order is
// kept.
func Apply(products []Product, spec FilterSpec) []Product {
	result := make([]Product, 0, len(products))
	for _, p := range products {
		result = append(result, p)
	}

	if term := strings.ToLower(strings.TrimSpace(spec.Search)); term != "" {
		result = keep(result, func(p Product) bool {
			return strings.Contains(strings.ToLower(p.Name), term) ||
				strings.Contains(strings.ToLower(p.Description), term)
		})
	}

	if len(spec.Categories) > 0 {
		result = keep(result, func(p Product) bool {
			return contains(spec.Categories, p.Category)
		})
	}

	result = keep(result, func(p Product) bool {
		if p.Price < spec.MinPrice {
			return false
		}
		if spec.MaxPrice > 0 && p.Price > spec.MaxPrice {
			return false
		}
		return true
	})

	if len(spec.Sizes) > 0 {
		result = keep(result, func(p Product) bool {
			return intersects(p.Sizes, spec.Sizes)
		})
	}

	if len(spec.Colors) > 0 {
		result = keep(result, func(p Product) bool {
			return intersects(p.Colors, spec.Colors)
		})
	}

	if spec.InStockOnly {
		result = keep(result, func(p Product) bool {
			return p.InStock
		})
	}

	switch spec.Sort {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	case SortNameAsc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	case SortNameDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Name > result[j].Name })
	}

	return result
}

func keep(products []Product, pred func(Product) bool) []Product {
	out := products[:0]
	for _, p := range products {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, v := range a {
		if contains(b, v) {
			return true
		}
	}
	return false
}
