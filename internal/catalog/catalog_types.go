// Package catalog carries the read-only product record the storefront works
// with, the filter/sort pipeline behind the product listing, and the variant
// selection guard used before add-to-cart.
package catalog

type Images struct {
	Front string `json:"front,omitempty"`
	Back  string `json:"back,omitempty"`
}

// Product is a read-only reference entity. The storefront core never mutates
// one; it only reads products handed to it by the catalog API.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Sizes       []string `json:"sizes,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	InStock     bool     `json:"inStock"`
	Tags        []string `json:"tags,omitempty"`
	Images      Images   `json:"images"`
}

// Categories the admin dashboard offers. Products outside this set are
// rejected at creation time.
var Categories = []string{"T-Shirts", "Jackets", "Hoodies", "Dresses", "Pants", "Accessories"}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
