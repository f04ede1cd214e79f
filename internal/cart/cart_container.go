// Package cart implements the storefront's cart/wishlist state container:
// two ordered collections plus a transient notification slot, persisted to a
// key-value store on every mutation.
package cart

import (
	"context"
	"encoding/json"

	"github.com/thekidkid/clothing-brand/internal/catalog"
	"github.com/thekidkid/clothing-brand/internal/kvstore"
	"github.com/thekidkid/clothing-brand/internal/notify"
)

const (
	cartKey     = "cart"
	wishlistKey = "wishlist"
)

// Container owns the cart and wishlist collections for one storefront
// session. It is constructed explicitly and passed to whatever consumes it;
// there is no ambient singleton. Construction hydrates from the store,
// treating absent or malformed state as empty. Every mutation re-serializes
// the affected collection in full before returning.
//
// Container is not safe for concurrent use; each session's mutations are
// serialized by the caller.
type Container struct {
	store    kvstore.Store
	notifier *notify.Emitter

	cartItems     []LineItem
	wishlistItems []WishlistEntry
}

func NewContainer(ctx context.Context, store kvstore.Store) *Container {
	c := &Container{
		store:    store,
		notifier: notify.NewEmitter(),
	}

	if raw, ok := store.Load(ctx, cartKey); ok {
		if items, ok := decodeLineItems(raw); ok {
			c.cartItems = items
		}
	}
	if raw, ok := store.Load(ctx, wishlistKey); ok {
		if entries, ok := decodeWishlistEntries(raw); ok {
			c.wishlistItems = entries
		}
	}

	return c
}

// AddToCart appends product with quantity 1, or bumps the quantity when the
// product is already present. Size and color are recorded as chosen; the
// container does not validate them (see catalog.CanAddToCart).
func (c *Container) AddToCart(ctx context.Context, product catalog.Product, size, color string) Event {
	for i := range c.cartItems {
		if c.cartItems[i].Product.ID == product.ID {
			c.cartItems[i].Quantity++
			c.persistCart(ctx)
			return c.emit(Event{Kind: EventQuantityIncreased, ProductName: product.Name})
		}
	}

	c.cartItems = append(c.cartItems, LineItem{
		Product:  product,
		Quantity: 1,
		Size:     size,
		Color:    color,
	})
	c.persistCart(ctx)
	return c.emit(Event{Kind: EventItemAdded, ProductName: product.Name})
}

// RemoveFromCart drops the line item for productID. Removing an absent
// product is a silent no-op.
func (c *Container) RemoveFromCart(ctx context.Context, productID string) Event {
	for i := range c.cartItems {
		if c.cartItems[i].Product.ID == productID {
			name := c.cartItems[i].Product.Name
			c.cartItems = append(c.cartItems[:i], c.cartItems[i+1:]...)
			c.persistCart(ctx)
			return c.emit(Event{Kind: EventItemRemoved, ProductName: name})
		}
	}
	return Event{}
}

// UpdateQuantity sets the line item's quantity. Anything below 1 falls
// through to removal; updating an absent product is a silent no-op.
func (c *Container) UpdateQuantity(ctx context.Context, productID string, quantity int) Event {
	if quantity < 1 {
		return c.RemoveFromCart(ctx, productID)
	}

	for i := range c.cartItems {
		if c.cartItems[i].Product.ID == productID {
			c.cartItems[i].Quantity = quantity
			c.persistCart(ctx)
			return c.emit(Event{Kind: EventQuantityChanged, ProductName: c.cartItems[i].Product.Name})
		}
	}
	return Event{}
}

// ToggleWishlist flips the product's wishlist membership: present entries are
// removed, absent ones added.
func (c *Container) ToggleWishlist(ctx context.Context, product catalog.Product) Event {
	for i := range c.wishlistItems {
		if c.wishlistItems[i].Product.ID == product.ID {
			c.wishlistItems = append(c.wishlistItems[:i], c.wishlistItems[i+1:]...)
			c.persistWishlist(ctx)
			return c.emit(Event{Kind: EventWishlistRemoved, ProductName: product.Name})
		}
	}

	c.wishlistItems = append(c.wishlistItems, WishlistEntry{Product: product})
	c.persistWishlist(ctx)
	return c.emit(Event{Kind: EventWishlistAdded, ProductName: product.Name})
}

// RemoveFromWishlist drops the entry for productID; absent entries are a
// silent no-op.
func (c *Container) RemoveFromWishlist(ctx context.Context, productID string) Event {
	for i := range c.wishlistItems {
		if c.wishlistItems[i].Product.ID == productID {
			name := c.wishlistItems[i].Product.Name
			c.wishlistItems = append(c.wishlistItems[:i], c.wishlistItems[i+1:]...)
			c.persistWishlist(ctx)
			return c.emit(Event{Kind: EventWishlistRemoved, ProductName: name})
		}
	}
	return Event{}
}

// ClearCart empties the cart unconditionally.
func (c *Container) ClearCart(ctx context.Context) Event {
	c.cartItems = nil
	c.persistCart(ctx)
	return c.emit(Event{Kind: EventCartCleared})
}

func (c *Container) CartItems() []LineItem {
	items := make([]LineItem, len(c.cartItems))
	copy(items, c.cartItems)
	return items
}

func (c *Container) WishlistItems() []WishlistEntry {
	entries := make([]WishlistEntry, len(c.wishlistItems))
	copy(entries, c.wishlistItems)
	return entries
}

// CartTotal sums price * quantity across all line items. Two-decimal
// rounding is a display concern, not applied here.
func (c *Container) CartTotal() float64 {
	var total float64
	for _, it := range c.cartItems {
		total += it.Product.Price * float64(it.Quantity)
	}
	return total
}

// CartItemsCount sums quantities, not distinct line items. Drives the cart
// badge.
func (c *Container) CartItemsCount() int {
	var count int
	for _, it := range c.cartItems {
		count += it.Quantity
	}
	return count
}

// Notification returns the live notification for this session, closed when
// past its auto-dismiss deadline.
func (c *Container) Notification() notify.Notification {
	return c.notifier.Current()
}

func (c *Container) DismissNotification(reason string) {
	c.notifier.Dismiss(reason)
}

func (c *Container) emit(ev Event) Event {
	if msg, severity, ok := NotificationFor(ev); ok {
		c.notifier.Notify(msg, severity)
	}
	return ev
}

func (c *Container) persistCart(ctx context.Context) {
	c.persist(ctx, cartKey, c.cartItems)
}

func (c *Container) persistWishlist(ctx context.Context) {
	c.persist(ctx, wishlistKey, c.wishlistItems)
}

func (c *Container) persist(ctx context.Context, key string, collection any) {
	raw, err := json.Marshal(collection)
	if err != nil {
		return
	}
	c.store.Save(ctx, key, raw)
}

func decodeJSON[T any](raw []byte) ([]T, bool) {
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	return out, true
}
