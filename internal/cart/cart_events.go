package cart

import (
	"fmt"

	"github.com/thekidkid/clothing-brand/internal/notify"
)

type EventKind string

const (
	// EventNone means the mutation was a no-op (absent target, silent by
	// design).
	EventNone              EventKind = ""
	EventItemAdded         EventKind = "ITEM_ADDED"
	EventQuantityIncreased EventKind = "QUANTITY_INCREASED"
	EventQuantityChanged   EventKind = "QUANTITY_CHANGED"
	EventItemRemoved       EventKind = "ITEM_REMOVED"
	EventWishlistAdded     EventKind = "WISHLIST_ADDED"
	EventWishlistRemoved   EventKind = "WISHLIST_REMOVED"
	EventCartCleared       EventKind = "CART_CLEARED"
)

// Event describes what a mutation did. Mutations return events; turning an
// event into user-facing text is a separate step (NotificationFor), so both
// sides test independently.
type Event struct {
	Kind        EventKind
	ProductName string
}

// NotificationFor maps a mutation event to its notification message and
// severity. ok is false for events that do not surface to the user.
func NotificationFor(ev Event) (message string, severity notify.Severity, ok bool) {
	switch ev.Kind {
	case EventItemAdded:
		return fmt.Sprintf("%s added to cart", ev.ProductName), notify.SeveritySuccess, true
	case EventQuantityIncreased:
		return fmt.Sprintf("Increased %s quantity in cart", ev.ProductName), notify.SeveritySuccess, true
	case EventItemRemoved:
		return fmt.Sprintf("%s removed from cart", ev.ProductName), notify.SeverityInfo, true
	case EventWishlistAdded:
		return fmt.Sprintf("%s added to wishlist", ev.ProductName), notify.SeveritySuccess, true
	case EventWishlistRemoved:
		return fmt.Sprintf("%s removed from wishlist", ev.ProductName), notify.SeverityInfo, true
	case EventCartCleared:
		return "Cart cleared", notify.SeverityInfo, true
	}
	return "", "", false
}
