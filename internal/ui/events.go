package ui

import "tperticaro.dev/internal/services"

// Event is a user interaction delivered to a Page.
type Event interface {
	isEvent()
}

// FilterSelected is a click on a filter button.
type FilterSelected struct{ Value string }

// CardActivated is a click or Enter key on a project card.
type CardActivated struct {
	Generation uint64
	Index      int
}

// ModalBackdropClicked is a click on the modal overlay outside its content.
type ModalBackdropClicked struct{}

// ModalCloseClicked is a click on the modal close control.
type ModalCloseClicked struct{}

// KeyPressed is a document-level key press.
type KeyPressed struct{ Key string }

// NavToggleClicked is a click on the menu button.
type NavToggleClicked struct{}

// NavBackdropClicked is a click on the menu backdrop.
type NavBackdropClicked struct{}

// NavLinkClicked is a click on a link inside the menu.
type NavLinkClicked struct{}

// OutsideClicked is a click anywhere outside the navigation.
type OutsideClicked struct{}

// ViewportResized reports a new viewport width.
type ViewportResized struct{ Width int }

// Scrolled reports the vertical scroll offset.
type Scrolled struct{ Y int }

// ElementIntersected reports an intersection observer entry.
type ElementIntersected struct {
	ID    string
	Ratio float64
}

// TechnologyClicked is a click on a tech stack item.
type TechnologyClicked struct{ Name string }

// ContactSubmitted is a contact form submission.
type ContactSubmitted struct{ Form services.ContactForm }

func (FilterSelected) isEvent()       {}
func (CardActivated) isEvent()        {}
func (ModalBackdropClicked) isEvent() {}
func (ModalCloseClicked) isEvent()    {}
func (KeyPressed) isEvent()           {}
func (NavToggleClicked) isEvent()     {}
func (NavBackdropClicked) isEvent()   {}
func (NavLinkClicked) isEvent()       {}
func (OutsideClicked) isEvent()       {}
func (ViewportResized) isEvent()      {}
func (Scrolled) isEvent()             {}
func (ElementIntersected) isEvent()   {}
func (TechnologyClicked) isEvent()    {}
func (ContactSubmitted) isEvent()     {}

// Effects lists what an event changed, so the transport re-renders only
// those regions.
type Effects struct {
	Grid          bool
	Filters       bool
	Modal         bool
	Nav           bool
	Notifications bool
	// Revealed is the element newly revealed by this event, if any.
	Revealed string
	// NavigateTo is a URI the browser should be sent to.
	NavigateTo string
	ResetForm  bool
}

// Changed reports whether any region needs re-rendering.
func (e Effects) Changed() bool {
	return e.Grid || e.Filters || e.Modal || e.Nav || e.Notifications ||
		e.Revealed != "" || e.NavigateTo != "" || e.ResetForm
}

// Merge combines the effects of two events applied in sequence.
func (e Effects) Merge(o Effects) Effects {
	e.Grid = e.Grid || o.Grid
	e.Filters = e.Filters || o.Filters
	e.Modal = e.Modal || o.Modal
	e.Nav = e.Nav || o.Nav
	e.Notifications = e.Notifications || o.Notifications
	e.ResetForm = e.ResetForm || o.ResetForm
	if o.Revealed != "" {
		e.Revealed = o.Revealed
	}
	if o.NavigateTo != "" {
		e.NavigateTo = o.NavigateTo
	}
	return e
}
