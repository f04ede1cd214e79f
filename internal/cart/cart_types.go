package cart

import "github.com/thekidkid/clothing-brand/internal/catalog"

// LineItem is one product entry in the cart. Items are keyed by product id:
// a product appears at most once and re-adding it bumps the quantity instead.
// Quantity is always >= 1; anything lower removes the item.
type LineItem struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
	Size     string          `json:"size,omitempty"`
	Color    string          `json:"color,omitempty"`
}

// WishlistEntry is set membership, nothing more. Keyed by product id.
type WishlistEntry struct {
	Product catalog.Product `json:"product"`
}

// decodeLineItems parses a stored cart blob. Stored state is untrusted: on
// any decode failure or shape mismatch the whole collection is discarded and
// the session starts empty.
func decodeLineItems(raw []byte) ([]LineItem, bool) {
	items, ok := decodeJSON[LineItem](raw)
	if !ok {
		return nil, false
	}
	for _, it := range items {
		if it.Product.ID == "" || it.Quantity < 1 {
			return nil, false
		}
	}
	return items, true
}

func decodeWishlistEntries(raw []byte) ([]WishlistEntry, bool) {
	entries, ok := decodeJSON[WishlistEntry](raw)
	if !ok {
		return nil, false
	}
	for _, e := range entries {
		if e.Product.ID == "" {
			return nil, false
		}
	}
	return entries, true
}
