// Package kvstore is the persistence adapter behind the storefront session
// state. Values are opaque JSON blobs keyed by name; a missing or unreadable
// key is indistinguishable from an empty one, and writes that fail are
// dropped on the floor. Cart and wishlist data is not business-critical, so
// the worst case for any backend failure is a session that starts empty.
package kvstore

import "context"

// Store is a synchronous blob store. Load reports false for keys that are
// absent or unreadable; it never returns an error. Save fully overwrites the
// prior value and silently no-ops when the backend is unavailable.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, bool)
	Save(ctx context.Context, key string, value []byte)
}

// Factory hands out a Store scoped to one storefront session. Keys inside a
// session store ("cart", "wishlist") never collide across sessions.
type Factory interface {
	ForSession(sessionID string) Store
}
