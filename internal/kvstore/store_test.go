package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	t.Run("missing key loads false", func(t *testing.T) {
		_, ok := s.Load(ctx, "cart")
		assert.False(t, ok)
	})

	t.Run("save then load round-trips", func(t *testing.T) {
		s.Save(ctx, "cart", []byte(`[{"quantity":1}]`))

		got, ok := s.Load(ctx, "cart")
		assert.True(t, ok)
		assert.Equal(t, []byte(`[{"quantity":1}]`), got)
	})

	t.Run("save overwrites in full", func(t *testing.T) {
		s.Save(ctx, "cart", []byte(`[]`))

		got, _ := s.Load(ctx, "cart")
		assert.Equal(t, []byte(`[]`), got)
	})

	t.Run("loaded value is a copy", func(t *testing.T) {
		s.Save(ctx, "wishlist", []byte("abc"))

		got, _ := s.Load(ctx, "wishlist")
		got[0] = 'x'

		again, _ := s.Load(ctx, "wishlist")
		assert.Equal(t, []byte("abc"), again)
	})
}

func TestMemoryFactory_IsolatesSessions(t *testing.T) {
	ctx := context.Background()
	f := NewMemoryFactory()

	f.ForSession("a").Save(ctx, "cart", []byte("for-a"))

	_, ok := f.ForSession("b").Load(ctx, "cart")
	assert.False(t, ok)

	got, ok := f.ForSession("a").Load(ctx, "cart")
	assert.True(t, ok)
	assert.Equal(t, []byte("for-a"), got)
}

func TestMemoryFactory_ReturnsSameStorePerSession(t *testing.T) {
	ctx := context.Background()
	f := NewMemoryFactory()

	f.ForSession("a").Save(ctx, "cart", []byte("v1"))

	got, ok := f.ForSession("a").Load(ctx, "cart")
	assert.True(t, ok)
	assert.Equal(t, []byte("v1"), got)
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	s := NewFile(t.TempDir() + "/sessions")

	t.Run("missing key loads false", func(t *testing.T) {
		_, ok := s.Load(ctx, "cart")
		assert.False(t, ok)
	})

	t.Run("save creates the directory and round-trips", func(t *testing.T) {
		s.Save(ctx, "cart", []byte(`[{"quantity":2}]`))

		got, ok := s.Load(ctx, "cart")
		assert.True(t, ok)
		assert.Equal(t, []byte(`[{"quantity":2}]`), got)
	})

	t.Run("keys do not collide", func(t *testing.T) {
		s.Save(ctx, "wishlist", []byte(`[]`))

		got, _ := s.Load(ctx, "cart")
		assert.Equal(t, []byte(`[{"quantity":2}]`), got)
	})
}
