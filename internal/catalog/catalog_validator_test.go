package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanAddToCart(t *testing.T) {
	assert.True(t, CanAddToCart("M", "Black"))
	assert.False(t, CanAddToCart("", "Black"))
	assert.False(t, CanAddToCart("M", ""))
	assert.False(t, CanAddToCart("", ""))
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, ValidCategory(c))
	}
	assert.False(t, ValidCategory("Electronics"))
	assert.False(t, ValidCategory("t-shirts"))
	assert.False(t, ValidCategory(""))
}
