package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tperticaro.dev/internal/catalog"
	"tperticaro.dev/internal/config"
	"tperticaro.dev/internal/services"
	"tperticaro.dev/internal/session"
)

// visitor replays requests against the router with one session cookie.
type visitor struct {
	t       *testing.T
	handler http.Handler
	cookies []*http.Cookie
}

func (v *visitor) do(method, target string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	v.t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	for _, c := range v.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	v.handler.ServeHTTP(rec, req)
	if cookies := rec.Result().Cookies(); len(cookies) > 0 {
		v.cookies = cookies
	}
	return rec
}

func (v *visitor) post(target string, form url.Values) *httptest.ResponseRecorder {
	v.t.Helper()
	if form == nil {
		form = url.Values{}
	}
	return v.do(http.MethodPost, target, form, true)
}

type setup struct {
	withCatalog bool
	withContact bool
}

func newVisitor(t *testing.T, s setup) *visitor {
	t.Helper()
	cfg := config.Default()
	cfg.Server.StaticDir = t.TempDir()
	cfg.Particles.Count = 5
	cfg.Particles.Seed = 7

	log := zap.NewNop()
	var projects *services.ProjectService
	if s.withCatalog {
		list, err := catalog.Default()
		require.NoError(t, err)
		projects = services.NewProjectService(list)
	}
	var contact *services.ContactService
	if s.withContact {
		contact = services.NewContactService(cfg.Contact.Recipient, cfg.Contact.Subject)
	}

	store := session.NewStore(PageFactory(cfg, projects, contact, log), session.Options{
		TTL:           time.Hour,
		SweepInterval: time.Hour,
	})
	t.Cleanup(store.Close)

	return &visitor{t: t, handler: SetupRoutes(Deps{
		Config:   cfg,
		Logger:   log,
		Projects: projects,
		Contact:  contact,
		Sessions: store,
	})}
}

func full(t *testing.T) *visitor {
	return newVisitor(t, setup{withCatalog: true, withContact: true})
}

func TestIndexRendersPageAndStartsSession(t *testing.T) {
	v := full(t)

	rec := v.do(http.MethodGet, "/", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))

	body := rec.Body.String()
	assert.Contains(t, body, `<html lang="es">`)
	assert.Contains(t, body, "Docker en AWS")
	assert.Contains(t, body, `hx-post="/ui/cards/1/3"`)
	assert.Equal(t, 5, strings.Count(body, `class="particle"`))
	require.NotEmpty(t, v.cookies)
	assert.Equal(t, session.DefaultCookieName, v.cookies[0].Name)
}

func TestIndexLanguageQuerySetsCookie(t *testing.T) {
	v := full(t)

	rec := v.do(http.MethodGet, "/?lang=en", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<html lang="en">`)

	var names []string
	for _, c := range rec.Result().Cookies() {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "portfolio_lang")
}

func TestProjectAPI(t *testing.T) {
	v := full(t)

	rec := v.do(http.MethodGet, "/api/health", nil, false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	var projects []struct {
		ID   int      `json:"id"`
		Tags []string `json:"tags"`
	}
	rec = v.do(http.MethodGet, "/api/projects", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projects))
	assert.Len(t, projects, 4)

	rec = v.do(http.MethodGet, "/api/projects?tag=Avanzado", nil, false)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projects))
	require.Len(t, projects, 2)
	assert.Equal(t, 2, projects[0].ID)
	assert.Equal(t, 3, projects[1].ID)

	rec = v.do(http.MethodGet, "/api/projects?tag=Nada", nil, false)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = v.do(http.MethodGet, "/api/projects/3", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Docker en AWS"`)

	assert.Equal(t, http.StatusNotFound, v.do(http.MethodGet, "/api/projects/99", nil, false).Code)
	assert.Equal(t, http.StatusBadRequest, v.do(http.MethodGet, "/api/projects/abc", nil, false).Code)

	rec = v.do(http.MethodGet, "/api/tags", nil, false)
	assert.JSONEq(t, `["Básico","Avanzado","Profesional"]`, rec.Body.String())
}

func TestFilterThenOpenAndCloseModal(t *testing.T) {
	v := full(t)
	v.do(http.MethodGet, "/", nil, false)

	rec := v.post("/ui/filter", url.Values{"filter": {"Avanzado"}})
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `id="projectFilters" hx-swap-oob="true"`)
	assert.Contains(t, body, `id="projectsGrid" hx-swap-oob="true"`)
	assert.Contains(t, body, `hx-post="/ui/cards/2/1"`)
	assert.NotContains(t, body, "Kubernetes en AWS")

	// A card from the first render no longer opens anything.
	assert.Equal(t, http.StatusNoContent, v.post("/ui/cards/1/0", nil).Code)

	rec = v.post("/ui/cards/2/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-phase="open"`)
	assert.Contains(t, rec.Body.String(), "Docker en AWS")
	assert.Contains(t, rec.Body.String(), `data-scroll-locked="true"`)

	rec = v.post("/ui/keys", url.Values{"key": {"Escape"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-phase="closing"`)
	assert.Contains(t, rec.Body.String(), `hx-trigger="load delay:150ms"`)

	// Closing twice changes nothing.
	assert.Equal(t, http.StatusNoContent, v.post("/ui/modal/close", url.Values{"reason": {"button"}}).Code)

	assert.Equal(t, http.StatusNoContent, v.post("/ui/keys", url.Values{"key": {"Enter"}}).Code)
}

func TestModalRegionRefetch(t *testing.T) {
	v := full(t)
	v.do(http.MethodGet, "/", nil, false)

	rec := v.do(http.MethodGet, "/ui/modal", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-phase="closed"`)
	assert.Contains(t, rec.Body.String(), `data-scroll-locked="false"`)
}

func TestNavActions(t *testing.T) {
	v := full(t)
	v.do(http.MethodGet, "/", nil, false)

	rec := v.post("/ui/nav", url.Values{"action": {"toggle"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-open="true"`)

	rec = v.post("/ui/nav", url.Values{"action": {"link"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-open="false"`)
	assert.Contains(t, rec.Body.String(), `hx-trigger="load delay:260ms"`)

	assert.Equal(t, http.StatusNoContent, v.post("/ui/nav", url.Values{"action": {"outside"}}).Code)
	assert.Equal(t, http.StatusBadRequest, v.post("/ui/nav", url.Values{"action": {"dance"}}).Code)

	// Crossing to desktop shows the menu inline; toggling is then ignored.
	rec = v.post("/ui/viewport", url.Values{"width": {"1280"}, "scroll": {"120.5"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "scrolled")
	assert.Equal(t, http.StatusNoContent, v.post("/ui/nav", url.Values{"action": {"toggle"}}).Code)

	assert.Equal(t, http.StatusBadRequest, v.post("/ui/viewport", url.Values{"width": {"wide"}}).Code)
}

func TestRevealOnce(t *testing.T) {
	v := full(t)
	v.do(http.MethodGet, "/", nil, false)

	assert.Equal(t, http.StatusNoContent, v.post("/ui/reveal/skills", url.Values{"ratio": {"0.05"}}).Code)
	assert.Equal(t, http.StatusOK, v.post("/ui/reveal/skills", url.Values{"ratio": {"0.1"}}).Code)
	assert.Equal(t, http.StatusNoContent, v.post("/ui/reveal/skills", url.Values{"ratio": {"1"}}).Code)
	assert.Equal(t, http.StatusNoContent, v.post("/ui/reveal/footer", url.Values{"ratio": {"1"}}).Code)
	assert.Equal(t, http.StatusBadRequest, v.post("/ui/reveal/skills", nil).Code)

	rec := v.do(http.MethodGet, "/", nil, false)
	assert.Contains(t, rec.Body.String(), `id="skills" class="scroll-animate animate-in"`)
}

func TestTechnologyNotification(t *testing.T) {
	v := full(t)
	v.do(http.MethodGet, "/", nil, false)

	rec := v.post("/ui/tech/Amazon%20S3", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tecnología: Amazon S3")

	rec = v.do(http.MethodGet, "/ui/notifications", nil, true)
	assert.Contains(t, rec.Body.String(), "Tecnología: Amazon S3")
	assert.Contains(t, rec.Body.String(), "every 1s")
}

func TestContactHTMX(t *testing.T) {
	v := full(t)
	v.do(http.MethodGet, "/", nil, false)

	form := url.Values{"name": {"Ana"}, "email": {"a@x.com"}, "message": {"Hola"}}
	rec := v.do(http.MethodPost, "/contact", form, true)
	require.Equal(t, http.StatusOK, rec.Code)

	redirect := rec.Header().Get("HX-Redirect")
	assert.True(t, strings.HasPrefix(redirect, "mailto:tperticaro@gmail.com?subject=Contacto%20desde%20el%20portfolio&body="), redirect)
	assert.Contains(t, redirect, "Nombre%3A%20Ana")
	assert.Contains(t, rec.Header().Get("HX-Trigger"), "contact-reset")

	rec = v.do(http.MethodGet, "/ui/notifications", nil, true)
	assert.Contains(t, rec.Body.String(), "notification-success")
}

func TestContactWithoutHTMXRedirects(t *testing.T) {
	v := full(t)

	rec := v.do(http.MethodPost, "/contact", url.Values{"name": {"Ana"}}, false)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Location"), "mailto:"))
}

func TestMissingFeaturesDegrade(t *testing.T) {
	v := newVisitor(t, setup{})

	rec := v.do(http.MethodGet, "/", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "project-card")
	assert.NotContains(t, rec.Body.String(), `id="contactForm"`)

	assert.Equal(t, http.StatusServiceUnavailable, v.do(http.MethodGet, "/api/projects", nil, false).Code)
	assert.Equal(t, http.StatusNoContent, v.post("/ui/filter", url.Values{"filter": {"Avanzado"}}).Code)
	assert.Equal(t, http.StatusServiceUnavailable, v.do(http.MethodPost, "/contact", url.Values{}, true).Code)

	// The rest of the page still works.
	assert.Equal(t, http.StatusOK, v.post("/ui/nav", url.Values{"action": {"toggle"}}).Code)
}
