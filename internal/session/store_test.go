package session

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"tperticaro.dev/internal/ui"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestStore(t *testing.T, clock *fakeClock) *Store {
	t.Helper()
	s := NewStore(func() *ui.Page { return ui.NewPage(ui.Options{}) }, Options{
		TTL:           time.Minute,
		SweepInterval: time.Hour,
		Now:           clock.Now,
	})
	t.Cleanup(s.Close)
	return s
}

func TestPageSetsCookieAndReusesSession(t *testing.T) {
	defer goleak.VerifyNone(t)
	s := newTestStore(t, &fakeClock{now: time.Unix(0, 0)})

	rec := httptest.NewRecorder()
	first := s.Page(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, DefaultCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	second := s.Page(rec, req)

	assert.Same(t, first, second)
	assert.Empty(t, rec.Result().Cookies())
	assert.Equal(t, 1, s.Len())
	s.Close()
}

func TestUnknownCookieStartsNewSession(t *testing.T) {
	s := newTestStore(t, &fakeClock{now: time.Unix(0, 0)})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: "gone"})
	rec := httptest.NewRecorder()
	s.Page(rec, req)

	require.Len(t, rec.Result().Cookies(), 1)
	assert.NotEqual(t, "gone", rec.Result().Cookies()[0].Value)

	_, ok := s.Lookup(req)
	assert.False(t, ok)
}

func TestSweepDropsIdleSessions(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	s := newTestStore(t, clock)

	idle, _ := s.Create()
	clock.Advance(45 * time.Second)
	active, _ := s.Create()
	clock.Advance(30 * time.Second)

	assert.Equal(t, 1, s.Sweep())
	_, ok := s.Get(idle)
	assert.False(t, ok)
	_, ok = s.Get(active)
	assert.True(t, ok)
}

func TestGetRefreshesIdleTimer(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	s := newTestStore(t, clock)

	id, _ := s.Create()
	clock.Advance(50 * time.Second)
	_, ok := s.Get(id)
	require.True(t, ok)
	clock.Advance(50 * time.Second)

	assert.Zero(t, s.Sweep())
	assert.Equal(t, 1, s.Len())
}

func TestCloseIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)
	s := NewStore(func() *ui.Page { return ui.NewPage(ui.Options{}) }, Options{})
	s.Close()
	s.Close()
}
