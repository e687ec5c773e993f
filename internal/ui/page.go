// Package ui holds the interactive state of one visitor's page and the
// transitions driven by their events.
//
// A Page owns every piece of runtime-varying state (current filter, rendered
// cards, modal, navigation, scroll reveal, notifications). Events are applied
// one at a time with Dispatch; the returned Effects name the regions the
// transport has to re-render.
package ui

import (
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	"tperticaro.dev/internal/models"
	"tperticaro.dev/internal/services"
)

// Notification message keys.
const (
	MsgContactSent = "notification.contact_sent"
	MsgTechnology  = "notification.technology"
)

// DefaultRevealIDs are the page sections animated on first view.
var DefaultRevealIDs = []string{"about", "skills", "projects", "contact"}

// Options configures a Page. Zero durations take the package defaults.
type Options struct {
	// Catalog backs the project grid, filters and modal. Nil disables them.
	Catalog *services.ProjectService
	// Contact backs the contact form. Nil disables it.
	Contact   *services.ContactService
	Scheduler Scheduler
	Logger    *zap.Logger

	Nav              NavOptions
	ModalCloseDelay  time.Duration
	NotificationTTL  time.Duration
	NotificationExit time.Duration

	Particles int
	Rand      *rand.Rand
	RevealIDs []string
}

// NavView is the navigation part of a View.
type NavView struct {
	Desktop     bool
	Open        bool
	MenuVisible bool
	Scrolled    bool
}

// View is a consistent snapshot of a Page for rendering.
type View struct {
	GridEnabled    bool
	ContactEnabled bool

	Generation   uint64
	Projects     []*models.Project
	Filters      []string
	ActiveFilter string

	ModalPhase   ModalPhase
	ModalProject *models.Project
	ScrollLocked bool

	Technologies []string

	Nav           NavView
	Notifications []Notification
	Revealed      map[string]bool
	Particles     []models.Particle
}

// Page is the controller for one visitor's document.
type Page struct {
	mu sync.Mutex

	log     *zap.Logger
	catalog *services.ProjectService
	contact *services.ContactService

	filters   *FilterBar
	techs     []string
	grid      Grid
	modal     *Modal
	nav       *Nav
	reveal    *Reveal
	notifier  *Notifier
	particles []models.Particle
}

// NewPage initialises every feature independently. A missing catalog is
// logged and disables only the grid.
func NewPage(opts Options) *Page {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Scheduler == nil {
		opts.Scheduler = RealScheduler{}
	}
	if opts.ModalCloseDelay <= 0 {
		opts.ModalCloseDelay = DefaultModalCloseDelay
	}
	if opts.Nav.CloseDelay <= 0 {
		opts.Nav.CloseDelay = DefaultNavCloseDelay
	}
	if opts.NotificationTTL <= 0 {
		opts.NotificationTTL = DefaultNotificationTTL
	}
	if opts.NotificationExit <= 0 {
		opts.NotificationExit = DefaultNotificationExit
	}
	if opts.Rand == nil {
		opts.Rand = services.NewRand(0)
	}
	if opts.RevealIDs == nil {
		opts.RevealIDs = DefaultRevealIDs
	}

	p := &Page{
		log:     opts.Logger,
		catalog: opts.Catalog,
		contact: opts.Contact,
	}
	sched := lockedScheduler{inner: opts.Scheduler, mu: &p.mu}

	p.modal = NewModal(sched, opts.ModalCloseDelay)
	p.nav = NewNav(sched, opts.Nav)
	p.reveal = NewReveal(opts.RevealIDs...)
	p.notifier = NewNotifier(sched, opts.NotificationTTL, opts.NotificationExit)
	p.particles = services.SpawnParticles(opts.Rand, opts.Particles)

	if p.catalog == nil {
		p.log.Error("project catalog unavailable, grid disabled")
		p.filters = NewFilterBar(nil)
	} else {
		p.filters = NewFilterBar(p.catalog.Tags())
		p.techs = p.catalog.Technologies()
		p.grid.Render(p.catalog.Filter(models.FilterAll))
	}
	if p.contact == nil {
		p.log.Warn("contact service unavailable, contact form disabled")
	}
	return p
}

// Dispatch applies ev and reports what changed.
func (p *Page) Dispatch(ev Event) Effects {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch ev := ev.(type) {
	case FilterSelected:
		if p.catalog == nil {
			return Effects{}
		}
		p.filters.Select(ev.Value)
		p.grid.Render(p.catalog.Filter(ev.Value))
		p.log.Debug("filter selected", zap.String("filter", ev.Value), zap.Int("cards", len(p.grid.Cards())))
		return Effects{Grid: true, Filters: true}

	case CardActivated:
		project, ok := p.grid.Card(ev.Generation, ev.Index)
		if !ok {
			p.log.Debug("stale card ignored", zap.Uint64("generation", ev.Generation), zap.Int("index", ev.Index))
			return Effects{}
		}
		p.modal.Open(project)
		return Effects{Modal: true}

	case ModalBackdropClicked, ModalCloseClicked:
		return Effects{Modal: p.modal.Close()}

	case KeyPressed:
		if ev.Key != "Escape" {
			return Effects{}
		}
		var fx Effects
		if p.modal.Visible() {
			fx.Modal = p.modal.Close()
		}
		fx.Nav = p.nav.Dismiss()
		return fx

	case NavToggleClicked:
		if p.nav.Desktop() {
			return Effects{}
		}
		p.nav.Toggle()
		return Effects{Nav: true}

	case NavBackdropClicked, NavLinkClicked, OutsideClicked:
		return Effects{Nav: p.nav.Dismiss()}

	case ViewportResized:
		return Effects{Nav: p.nav.Resize(ev.Width)}

	case Scrolled:
		return Effects{Nav: p.nav.Scroll(ev.Y)}

	case ElementIntersected:
		if p.reveal.Intersect(ev.ID, ev.Ratio) {
			return Effects{Revealed: ev.ID}
		}
		return Effects{}

	case TechnologyClicked:
		p.notifier.Push(NotifyInfo, MsgTechnology, ev.Name)
		return Effects{Notifications: true}

	case ContactSubmitted:
		if p.contact == nil {
			return Effects{}
		}
		uri := p.contact.Mailto(ev.Form)
		p.notifier.Push(NotifySuccess, MsgContactSent)
		return Effects{NavigateTo: uri, ResetForm: true, Notifications: true}
	}
	return Effects{}
}

// View returns a snapshot of the page.
func (p *Page) View() View {
	p.mu.Lock()
	defer p.mu.Unlock()

	return View{
		GridEnabled:    p.catalog != nil,
		ContactEnabled: p.contact != nil,
		Generation:     p.grid.Generation(),
		Projects:       p.grid.Cards(),
		Filters:        p.filters.Values(),
		ActiveFilter:   p.filters.Active(),
		ModalPhase:     p.modal.Phase(),
		ModalProject:   p.modal.Project(),
		ScrollLocked:   p.modal.ScrollLocked(),
		Technologies:   p.techs,
		Nav: NavView{
			Desktop:     p.nav.Desktop(),
			Open:        p.nav.IsOpen(),
			MenuVisible: p.nav.MenuVisible(),
			Scrolled:    p.nav.Scrolled(),
		},
		Notifications: p.notifier.Items(),
		Revealed:      p.reveal.RevealedSet(),
		Particles:     p.particles,
	}
}
