// Package notify holds the storefront's single transient notification slot:
// the snackbar-style message shown after a cart or wishlist mutation.
package notify

import (
	"sync"
	"time"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
)

// AutoDismissAfter is how long a notification stays open before the display
// surface drops it on its own.
const AutoDismissAfter = 2 * time.Second

// DismissReasonClickaway marks a dismiss caused by ambient interaction (a
// click somewhere else on the page). Those are ignored so an accidental
// outside click does not suppress a just-issued message.
const DismissReasonClickaway = "clickaway"

type Notification struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
	Open     bool     `json:"open"`
}

// Emitter owns the live notification. There is no queue: issuing a new
// notification while one is open replaces it immediately.
type Emitter struct {
	mu        sync.Mutex
	current   Notification
	expiresAt time.Time
	now       func() time.Time
}

func NewEmitter() *Emitter {
	return &Emitter{now: time.Now}
}

func (e *Emitter) Notify(message string, severity Severity) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.current = Notification{
		Message:  message,
		Severity: severity,
		Open:     true,
	}
	e.expiresAt = e.now().Add(AutoDismissAfter)
}

func (e *Emitter) Dismiss(reason string) {
	if reason == DismissReasonClickaway {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.current.Open = false
}

// Current returns the live notification. A notification past its auto-dismiss
// deadline is reported closed.
func (e *Emitter) Current() Notification {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := e.current
	if n.Open && e.now().After(e.expiresAt) {
		n.Open = false
	}
	return n
}
