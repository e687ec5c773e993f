package ui

import "time"

const (
	// DefaultBreakpoint is the viewport width, in pixels, from which the menu is inline.
	DefaultBreakpoint = 1024
	// DefaultNavCloseDelay matches the menu slide-out animation.
	DefaultNavCloseDelay = 260 * time.Millisecond
	// DefaultScrollThreshold is the scroll offset past which the header is condensed.
	DefaultScrollThreshold = 40
)

// NavOptions configures a Nav.
type NavOptions struct {
	Breakpoint      int
	CloseDelay      time.Duration
	ScrollThreshold int
	// Width is the initial viewport width. Zero means unknown and is treated as mobile.
	Width int
}

// Nav is the responsive menu. Below the breakpoint it is a Closed/Open
// machine; at or above it the menu is inline and every event is ignored.
type Nav struct {
	sched Scheduler
	opts  NavOptions

	width    int
	open     bool
	hidden   bool
	scrolled bool
	hide     Timer
	epoch    uint64
}

// NewNav builds a Nav synchronised to opts.Width.
func NewNav(sched Scheduler, opts NavOptions) *Nav {
	if opts.Breakpoint <= 0 {
		opts.Breakpoint = DefaultBreakpoint
	}
	if opts.ScrollThreshold <= 0 {
		opts.ScrollThreshold = DefaultScrollThreshold
	}
	n := &Nav{sched: sched, opts: opts, width: opts.Width, hidden: true}
	n.sync()
	return n
}

// Desktop reports whether the viewport is at or above the breakpoint.
func (n *Nav) Desktop() bool { return n.width >= n.opts.Breakpoint }

// IsOpen reports whether the mobile menu is open.
func (n *Nav) IsOpen() bool { return n.open && !n.hidden }

// MenuVisible reports whether the menu container is displayed.
func (n *Nav) MenuVisible() bool { return n.Desktop() || !n.hidden }

// Scrolled reports whether the page is scrolled past the threshold.
func (n *Nav) Scrolled() bool { return n.scrolled }

// Width returns the last known viewport width.
func (n *Nav) Width() int { return n.width }

// Toggle opens a closed menu and closes an open one.
func (n *Nav) Toggle() {
	if n.Desktop() {
		return
	}
	if n.IsOpen() {
		n.Close(false)
		return
	}
	n.openMenu()
}

// Dismiss closes the menu on backdrop, outside click, Escape or link activation.
// It reports whether anything changed.
func (n *Nav) Dismiss() bool {
	if n.Desktop() || !n.IsOpen() {
		return false
	}
	n.Close(false)
	return true
}

// Close clears the open flag and hides the container after the close delay,
// or at once when immediate.
func (n *Nav) Close(immediate bool) {
	n.open = false
	stopTimer(&n.hide)
	n.epoch++
	if immediate {
		n.hidden = true
		return
	}
	epoch := n.epoch
	n.hide = n.sched.AfterFunc(n.opts.CloseDelay, func() {
		if n.epoch != epoch {
			return
		}
		n.hide = nil
		n.hidden = true
	})
}

// Resize records a new viewport width. Crossing the breakpoint re-syncs the menu.
// It reports whether the breakpoint was crossed.
func (n *Nav) Resize(width int) bool {
	wasDesktop := n.Desktop()
	n.width = width
	if wasDesktop == n.Desktop() {
		return false
	}
	n.sync()
	return true
}

// Scroll records the vertical scroll offset.
func (n *Nav) Scroll(y int) bool {
	was := n.scrolled
	n.scrolled = y > n.opts.ScrollThreshold
	return was != n.scrolled
}

func (n *Nav) openMenu() {
	stopTimer(&n.hide)
	n.epoch++
	n.hidden = false
	n.open = true
}

func (n *Nav) sync() {
	if n.Desktop() {
		stopTimer(&n.hide)
		n.epoch++
		n.open = false
		n.hidden = false
		return
	}
	n.Close(true)
}
