// Package session maps visitors to their page controllers.
package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tperticaro.dev/internal/ui"
)

const (
	// DefaultCookieName is the cookie carrying the session id.
	DefaultCookieName = "portfolio_session"
	// DefaultTTL is how long an idle session is kept.
	DefaultTTL = 30 * time.Minute
)

// Factory builds the page for a new session.
type Factory func() *ui.Page

type entry struct {
	page     *ui.Page
	lastSeen time.Time
}

// Options configures a Store. Zero values take the package defaults.
type Options struct {
	CookieName string
	TTL        time.Duration
	// SweepInterval defaults to a quarter of the TTL.
	SweepInterval time.Duration
	Logger        *zap.Logger
	// Now replaces the clock in tests.
	Now func() time.Time
}

// Store keeps one page per visitor in memory and drops idle ones.
type Store struct {
	factory Factory
	cookie  string
	ttl     time.Duration
	log     *zap.Logger
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*entry

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewStore creates a store and starts its sweep goroutine. Call Close to
// stop it.
func NewStore(factory Factory, opts Options) *Store {
	if opts.CookieName == "" {
		opts.CookieName = DefaultCookieName
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.SweepInterval <= 0 {
		opts.SweepInterval = opts.TTL / 4
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &Store{
		factory:  factory,
		cookie:   opts.CookieName,
		ttl:      opts.TTL,
		log:      opts.Logger,
		now:      opts.Now,
		sessions: make(map[string]*entry),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go s.sweepLoop(opts.SweepInterval)
	return s
}

// Page returns the visitor's page, creating a session and setting its
// cookie when the request has none or an expired one.
func (s *Store) Page(w http.ResponseWriter, r *http.Request) *ui.Page {
	if c, err := r.Cookie(s.cookie); err == nil {
		if page, ok := s.Get(c.Value); ok {
			return page
		}
	}
	id, page := s.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return page
}

// Lookup returns the page of an existing session without creating one.
func (s *Store) Lookup(r *http.Request) (*ui.Page, bool) {
	c, err := r.Cookie(s.cookie)
	if err != nil {
		return nil, false
	}
	return s.Get(c.Value)
}

// Get returns the page for id and refreshes its idle timer.
func (s *Store) Get(id string) (*ui.Page, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = s.now()
	return e.page, true
}

// Create starts a new session.
func (s *Store) Create() (string, *ui.Page) {
	id := uuid.NewString()
	page := s.factory()

	s.mu.Lock()
	s.sessions[id] = &entry{page: page, lastSeen: s.now()}
	n := len(s.sessions)
	s.mu.Unlock()

	s.log.Debug("session created", zap.String("session", id), zap.Int("sessions", n))
	return id, page
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than the TTL and returns how many
// were removed.
func (s *Store) Sweep() int {
	cutoff := s.now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, e := range s.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *Store) sweepLoop(interval time.Duration) {
	defer close(s.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.log.Debug("idle sessions dropped", zap.Int("count", n))
			}
		}
	}
}

// Close stops the sweep goroutine and waits for it to exit.
func (s *Store) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
	<-s.done
}
