package ui

import "time"

const (
	// DefaultNotificationTTL is how long a notification stays on screen.
	DefaultNotificationTTL = 5 * time.Second
	// DefaultNotificationExit is the slide-out time before removal.
	DefaultNotificationExit = 300 * time.Millisecond
)

// NotificationKind selects the notification style.
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyInfo    NotificationKind = "info"
	NotifyWarning NotificationKind = "warning"
	NotifyError   NotificationKind = "error"
)

// Notification is a transient message. Key and Args are resolved by the
// message printer at render time.
type Notification struct {
	ID    uint64
	Kind  NotificationKind
	Key   string
	Args  []any
	Shown bool
}

// Notifier keeps the notifications currently on screen.
type Notifier struct {
	sched  Scheduler
	ttl    time.Duration
	exit   time.Duration
	nextID uint64
	items  []Notification
}

// NewNotifier returns an empty Notifier.
func NewNotifier(sched Scheduler, ttl, exit time.Duration) *Notifier {
	return &Notifier{sched: sched, ttl: ttl, exit: exit}
}

// Push shows a notification and schedules its dismissal.
func (n *Notifier) Push(kind NotificationKind, key string, args ...any) Notification {
	n.nextID++
	item := Notification{ID: n.nextID, Kind: kind, Key: key, Args: args, Shown: true}
	n.items = append(n.items, item)

	id := item.ID
	n.sched.AfterFunc(n.ttl, func() {
		n.set(id, false)
		n.sched.AfterFunc(n.exit, func() { n.remove(id) })
	})
	return item
}

// Items returns a copy of the notifications still in the document.
func (n *Notifier) Items() []Notification {
	out := make([]Notification, len(n.items))
	copy(out, n.items)
	return out
}

func (n *Notifier) set(id uint64, shown bool) {
	for i := range n.items {
		if n.items[i].ID == id {
			n.items[i].Shown = shown
			return
		}
	}
}

func (n *Notifier) remove(id uint64) {
	for i := range n.items {
		if n.items[i].ID == id {
			n.items = append(n.items[:i], n.items[i+1:]...)
			return
		}
	}
}
