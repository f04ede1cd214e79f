package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEmitter_NotifyOpensNotification(t *testing.T) {
	e := NewEmitter()

	e.Notify("Bear Logo T-Shirt added to cart", SeveritySuccess)

	got := e.Current()
	assert.True(t, got.Open)
	assert.Equal(t, "Bear Logo T-Shirt added to cart", got.Message)
	assert.Equal(t, SeveritySuccess, got.Severity)
}

func TestEmitter_NewNotificationReplacesOpenOne(t *testing.T) {
	e := NewEmitter()

	e.Notify("first", SeveritySuccess)
	e.Notify("second", SeverityInfo)

	got := e.Current()
	assert.True(t, got.Open)
	assert.Equal(t, "second", got.Message)
	assert.Equal(t, SeverityInfo, got.Severity)
}

func TestEmitter_Dismiss(t *testing.T) {
	t.Run("explicit dismiss closes", func(t *testing.T) {
		e := NewEmitter()
		e.Notify("msg", SeveritySuccess)

		e.Dismiss("timeout")

		assert.False(t, e.Current().Open)
	})

	t.Run("clickaway is ignored", func(t *testing.T) {
		e := NewEmitter()
		e.Notify("msg", SeveritySuccess)

		e.Dismiss(DismissReasonClickaway)

		assert.True(t, e.Current().Open)
	})

	t.Run("dismiss with no open notification is a no-op", func(t *testing.T) {
		e := NewEmitter()
		e.Dismiss("timeout")

		assert.False(t, e.Current().Open)
	})
}

func TestEmitter_AutoDismissDeadline(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	e := NewEmitter()
	e.now = func() time.Time { return now }

	e.Notify("msg", SeveritySuccess)

	t.Run("open just before the deadline", func(t *testing.T) {
		now = now.Add(AutoDismissAfter)
		assert.True(t, e.Current().Open)
	})

	t.Run("closed past the deadline", func(t *testing.T) {
		now = now.Add(time.Millisecond)
		assert.False(t, e.Current().Open)
	})

	t.Run("a fresh notification resets the deadline", func(t *testing.T) {
		e.Notify("again", SeverityInfo)
		assert.True(t, e.Current().Open)
	})
}
