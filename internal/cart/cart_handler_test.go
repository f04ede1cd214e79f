package cart

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thekidkid/clothing-brand/internal/catalog"
	"github.com/thekidkid/clothing-brand/internal/kvstore"
	"github.com/thekidkid/clothing-brand/internal/product"
)

type fakeProductSource struct {
	products map[string]catalog.Product
}

func (f *fakeProductSource) GetPublic(_ context.Context, productID string) (catalog.Product, error) {
	p, ok := f.products[productID]
	if !ok {
		return catalog.Product{}, product.ErrProductNotFound
	}
	return p, nil
}

func newTestRouter(t *testing.T, sessions kvstore.Factory, products ProductSource) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewHandler(sessions, products)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("session_id", "test-session")
		c.Next()
	})

	r.GET("/cart", h.GetCart)
	r.POST("/cart/items", h.AddItem)
	r.PATCH("/cart/items/:productId", h.UpdateQuantity)
	r.DELETE("/cart/items/:productId", h.RemoveItem)
	r.DELETE("/cart", h.ClearCart)
	r.POST("/cart/notification/dismiss", h.DismissNotification)
	r.GET("/wishlist", h.GetWishlist)
	r.POST("/wishlist/items/:productId", h.ToggleWishlist)
	r.DELETE("/wishlist/items/:productId", h.RemoveFromWishlist)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func testFixtures() (*fakeProductSource, kvstore.Factory) {
	src := &fakeProductSource{products: map[string]catalog.Product{
		tee.ID:    tee,
		jacket.ID: jacket,
	}}
	return src, kvstore.NewMemoryFactory()
}

type cartEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Items []LineItem `json:"items"`
		Total float64    `json:"total"`
		Count int        `json:"count"`
		Notification *struct {
			Message string `json:"message"`
			Open    bool   `json:"open"`
		} `json:"notification"`
	} `json:"data"`
}

func TestGetCart_EmptySession(t *testing.T) {
	src, sessions := testFixtures()
	r := newTestRouter(t, sessions, src)

	w := doJSON(t, r, http.MethodGet, "/cart", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var res cartEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Empty(t, res.Data.Items)
	assert.Zero(t, res.Data.Count)
	assert.Nil(t, res.Data.Notification)
}

func TestAddItem(t *testing.T) {
	t.Run("adds with full variant selection", func(t *testing.T) {
		src, sessions := testFixtures()
		r := newTestRouter(t, sessions, src)

		w := doJSON(t, r, http.MethodPost, "/cart/items", gin.H{
			"productId": tee.ID, "size": "M", "color": "Black",
		})

		require.Equal(t, http.StatusOK, w.Code)
		var res cartEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		require.Len(t, res.Data.Items, 1)
		assert.Equal(t, 1, res.Data.Count)
		require.NotNil(t, res.Data.Notification)
		assert.Equal(t, "Bear Logo T-Shirt added to cart", res.Data.Notification.Message)
	})

	t.Run("rejects a variant product without size and color", func(t *testing.T) {
		src, sessions := testFixtures()
		r := newTestRouter(t, sessions, src)

		w := doJSON(t, r, http.MethodPost, "/cart/items", gin.H{
			"productId": tee.ID, "size": "M",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Select a size and color first")
	})

	t.Run("unknown product is 404", func(t *testing.T) {
		src, sessions := testFixtures()
		r := newTestRouter(t, sessions, src)

		w := doJSON(t, r, http.MethodPost, "/cart/items", gin.H{
			"productId": "33333333-3333-3333-3333-333333333333", "size": "M", "color": "Black",
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed product id fails validation", func(t *testing.T) {
		src, sessions := testFixtures()
		r := newTestRouter(t, sessions, src)

		w := doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"productId": "nope"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateQuantityEndpoint(t *testing.T) {
	src, sessions := testFixtures()
	r := newTestRouter(t, sessions, src)
	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"productId": tee.ID, "size": "M", "color": "Black"})

	t.Run("sets quantity", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPatch, "/cart/items/"+tee.ID, gin.H{"quantity": 4})

		require.Equal(t, http.StatusOK, w.Code)
		var res cartEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, 4, res.Data.Count)
	})

	t.Run("zero quantity removes the line", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPatch, "/cart/items/"+tee.ID, gin.H{"quantity": 0})

		require.Equal(t, http.StatusOK, w.Code)
		var res cartEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Empty(t, res.Data.Items)
	})

	t.Run("missing quantity field is rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPatch, "/cart/items/"+tee.ID, gin.H{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRemoveAndClearEndpoints(t *testing.T) {
	src, sessions := testFixtures()
	r := newTestRouter(t, sessions, src)
	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"productId": tee.ID, "size": "M", "color": "Black"})
	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"productId": jacket.ID, "size": "M", "color": "Indigo"})

	w := doJSON(t, r, http.MethodDelete, "/cart/items/"+tee.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var res cartEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res.Data.Items, 1)

	w = doJSON(t, r, http.MethodDelete, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Empty(t, res.Data.Items)
}

func TestCartStatePersistsAcrossRequests(t *testing.T) {
	src, sessions := testFixtures()
	r := newTestRouter(t, sessions, src)

	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"productId": tee.ID, "size": "M", "color": "Black"})
	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"productId": tee.ID, "size": "M", "color": "Black"})

	w := doJSON(t, r, http.MethodGet, "/cart", nil)
	var res cartEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res.Data.Items, 1)
	assert.Equal(t, 2, res.Data.Count)
	assert.InDelta(t, 79.98, res.Data.Total, 0.0001)
}

func TestDismissNotificationEndpoint(t *testing.T) {
	src, sessions := testFixtures()
	r := newTestRouter(t, sessions, src)

	t.Run("explicit dismiss acknowledges", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/cart/notification/dismiss", gin.H{"reason": "timeout"})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"dismissed":true`)
	})

	t.Run("clickaway is reported ignored", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/cart/notification/dismiss", gin.H{"reason": "clickaway"})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"dismissed":false`)
	})
}

func TestWishlistEndpoints(t *testing.T) {
	src, sessions := testFixtures()
	r := newTestRouter(t, sessions, src)

	w := doJSON(t, r, http.MethodPost, "/wishlist/items/"+tee.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "added to wishlist")

	w = doJSON(t, r, http.MethodPost, "/wishlist/items/"+tee.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "removed from wishlist")

	doJSON(t, r, http.MethodPost, "/wishlist/items/"+jacket.ID, nil)
	w = doJSON(t, r, http.MethodDelete, "/wishlist/items/"+jacket.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/wishlist", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var res struct {
		Data struct {
			Items []WishlistEntry `json:"items"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Empty(t, res.Data.Items)
}
