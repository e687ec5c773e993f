package handlers

import (
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"tperticaro.dev/internal/config"
	"tperticaro.dev/internal/i18n"
	"tperticaro.dev/internal/middleware"
	"tperticaro.dev/internal/services"
	"tperticaro.dev/internal/session"
	"tperticaro.dev/internal/ui"
	"tperticaro.dev/internal/views"
)

const requestTimeout = 30 * time.Second

// Deps are the services the routes are built on. Projects and Contact may
// be nil; the features they back are then disabled.
type Deps struct {
	Config   *config.Config
	Logger   *zap.Logger
	Projects *services.ProjectService
	Contact  *services.ContactService
	Sessions *session.Store
}

// PageFactory builds the page controller of each new session.
func PageFactory(cfg *config.Config, projects *services.ProjectService, contact *services.ContactService, log *zap.Logger) session.Factory {
	return func() *ui.Page {
		var rng *rand.Rand
		if cfg.Particles.Seed != 0 {
			rng = services.NewRand(cfg.Particles.Seed)
		}
		return ui.NewPage(ui.Options{
			Catalog: projects,
			Contact: contact,
			Logger:  log,
			Nav: ui.NavOptions{
				Breakpoint:      cfg.Nav.Breakpoint,
				CloseDelay:      cfg.Nav.CloseDelay,
				ScrollThreshold: cfg.Nav.ScrollThreshold,
			},
			ModalCloseDelay:  cfg.Modal.CloseDelay,
			NotificationTTL:  cfg.Notifications.TTL,
			NotificationExit: cfg.Notifications.Exit,
			Particles:        cfg.Particles.Count,
			Rand:             rng,
		})
	}
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(d Deps) http.Handler {
	cfg := d.Config
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(middleware.SecurityHeaders)
	r.Use(chimw.Timeout(requestTimeout))

	defaultLang, ok := i18n.Parse(cfg.Lang.Default)
	if !ok {
		defaultLang = i18n.Default()
	}
	b := base{log: log, lang: defaultLang}

	// Initialize handlers
	projectHandler := NewProjectHandler(b, d.Projects)
	uiHandler := NewUIHandler(b, d.Sessions, views.Options{
		ModalCloseDelay: cfg.Modal.CloseDelay,
		NavCloseDelay:   cfg.Nav.CloseDelay,
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		corsOpts := cors.Options{
			AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}
		if cfg.Server.AllowAllOrigins {
			corsOpts.AllowedOrigins = []string{"*"}
		}
		r.Use(cors.Handler(corsOpts))

		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)
		r.Get("/tags", projectHandler.ListTags)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			b.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Interaction endpoints
	r.Route("/ui", func(r chi.Router) {
		r.Post("/filter", uiHandler.SelectFilter)
		r.Post("/cards/{gen}/{index}", uiHandler.ActivateCard)
		r.Get("/modal", uiHandler.ModalRegion)
		r.Post("/modal/close", uiHandler.CloseModal)
		r.Post("/keys", uiHandler.KeyPress)
		r.Get("/nav", uiHandler.NavRegion)
		r.Post("/nav", uiHandler.NavAction)
		r.Post("/viewport", uiHandler.Viewport)
		r.Post("/reveal/{id}", uiHandler.Reveal)
		r.Post("/tech/{name}", uiHandler.Technology)
		r.Get("/notifications", uiHandler.NotificationsRegion)
	})
	r.Post("/contact", uiHandler.Contact)

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.Server.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	r.Get("/", uiHandler.Index)

	return r
}

// base carries what every handler needs to answer a request.
type base struct {
	log  *zap.Logger
	lang language.Tag
}

// printer returns the message printer for the request's language.
func (b base) printer(r *http.Request) (*message.Printer, language.Tag, bool) {
	tag, explicit := i18n.ResolveTag(r, b.lang)
	return i18n.Printer(tag), tag, explicit
}

// respondJSON writes a JSON response
func (b base) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		b.log.Error("encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func (b base) respondError(w http.ResponseWriter, status int, msg string) {
	b.respondJSON(w, status, map[string]string{"error": msg})
}

// respondHTML renders components one after another.
func (b base) respondHTML(w http.ResponseWriter, r *http.Request, status int, components ...templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	for _, c := range components {
		if err := c.Render(r.Context(), w); err != nil {
			b.log.Error("rendering HTML", zap.String("path", r.URL.Path), zap.Error(err))
			return
		}
	}
}

// isHTMX reports whether the request was issued by htmx.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
