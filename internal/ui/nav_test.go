package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMobileNav(sched *manualScheduler) *Nav {
	return NewNav(sched, NavOptions{Width: 375, CloseDelay: DefaultNavCloseDelay})
}

func TestNavStartsClosedOnMobile(t *testing.T) {
	n := newMobileNav(&manualScheduler{})

	assert.False(t, n.Desktop())
	assert.False(t, n.IsOpen())
	assert.False(t, n.MenuVisible())
}

func TestNavToggleTwiceRestoresState(t *testing.T) {
	sched := &manualScheduler{}
	n := newMobileNav(sched)

	n.Toggle()
	require.True(t, n.IsOpen())
	assert.True(t, n.MenuVisible())

	n.Toggle()
	assert.False(t, n.IsOpen())
	assert.True(t, n.MenuVisible(), "menu hides after the close animation")

	sched.Advance(DefaultNavCloseDelay)
	assert.False(t, n.MenuVisible())
}

func TestNavReopenCancelsPendingHide(t *testing.T) {
	sched := &manualScheduler{}
	n := newMobileNav(sched)

	n.Toggle()
	n.Toggle()
	require.Equal(t, 1, sched.Pending())

	n.Toggle()
	assert.Zero(t, sched.Pending())

	sched.Advance(DefaultNavCloseDelay * 2)
	assert.True(t, n.IsOpen())
	assert.True(t, n.MenuVisible())
}

func TestNavDismiss(t *testing.T) {
	sched := &manualScheduler{}
	n := newMobileNav(sched)

	assert.False(t, n.Dismiss(), "nothing to dismiss while closed")

	n.Toggle()
	assert.True(t, n.Dismiss())
	assert.False(t, n.IsOpen())
}

func TestNavCrossingBreakpointWhileOpenForcesClosed(t *testing.T) {
	sched := &manualScheduler{}
	n := newMobileNav(sched)
	n.Toggle()

	require.True(t, n.Resize(1280))
	assert.True(t, n.Desktop())
	assert.False(t, n.IsOpen())
	assert.True(t, n.MenuVisible(), "menu is inline on desktop")

	n.Toggle()
	assert.False(t, n.IsOpen(), "toggle ignored on desktop")

	require.True(t, n.Resize(800))
	assert.False(t, n.IsOpen())
	assert.False(t, n.MenuVisible(), "entering mobile hides at once")
	assert.Zero(t, sched.Pending())
}

func TestNavResizeWithinSameSide(t *testing.T) {
	n := newMobileNav(&manualScheduler{})
	n.Toggle()

	assert.False(t, n.Resize(400))
	assert.True(t, n.IsOpen())
	assert.Equal(t, 400, n.Width())
}

func TestNavImmediateCloseCancelsDelayedClose(t *testing.T) {
	sched := &manualScheduler{}
	n := newMobileNav(sched)
	n.Toggle()
	n.Close(false)

	n.Close(true)
	assert.False(t, n.MenuVisible())
	assert.Zero(t, sched.Pending())
}

func TestNavScroll(t *testing.T) {
	n := newMobileNav(&manualScheduler{})

	assert.False(t, n.Scroll(40))
	assert.False(t, n.Scrolled())
	assert.True(t, n.Scroll(41))
	assert.True(t, n.Scrolled())
	assert.True(t, n.Scroll(0))
	assert.False(t, n.Scrolled())
}
