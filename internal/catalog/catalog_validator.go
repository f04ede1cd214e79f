package catalog

// CanAddToCart reports whether a variant is fully chosen. The product detail
// surface calls this before letting an item into the cart; the cart container
// itself does not validate variants.
func CanAddToCart(selectedSize, selectedColor string) bool {
	return selectedSize != "" && selectedColor != ""
}
