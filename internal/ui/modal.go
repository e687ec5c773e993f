package ui

import (
	"time"

	"tperticaro.dev/internal/models"
)

// DefaultModalCloseDelay lets the exit animation finish before the modal is hidden.
const DefaultModalCloseDelay = 150 * time.Millisecond

// ModalPhase is the lifecycle position of the detail modal.
type ModalPhase int

const (
	ModalClosed ModalPhase = iota
	ModalOpen
	// ModalClosing means the open flag is cleared but the container is still shown.
	ModalClosing
)

func (p ModalPhase) String() string {
	switch p {
	case ModalOpen:
		return "open"
	case ModalClosing:
		return "closing"
	default:
		return "closed"
	}
}

// Modal shows the detail of at most one project.
type Modal struct {
	sched   Scheduler
	delay   time.Duration
	phase   ModalPhase
	project *models.Project
	hide    Timer
	// epoch invalidates hide callbacks that already fired but had not yet run.
	epoch uint64
}

// NewModal returns a closed modal.
func NewModal(sched Scheduler, closeDelay time.Duration) *Modal {
	return &Modal{sched: sched, delay: closeDelay}
}

// Open displays p, replacing whatever was shown.
func (m *Modal) Open(p *models.Project) {
	stopTimer(&m.hide)
	m.epoch++
	m.project = p
	m.phase = ModalOpen
}

// Close starts the two-phase close. It reports false when the modal was not open.
func (m *Modal) Close() bool {
	if m.phase != ModalOpen {
		return false
	}
	m.phase = ModalClosing
	stopTimer(&m.hide)
	m.epoch++
	epoch := m.epoch
	m.hide = m.sched.AfterFunc(m.delay, func() {
		if m.epoch != epoch {
			return
		}
		m.hide = nil
		m.phase = ModalClosed
		m.project = nil
	})
	return true
}

// Phase returns the current phase.
func (m *Modal) Phase() ModalPhase { return m.phase }

// Visible reports whether the container is displayed.
func (m *Modal) Visible() bool { return m.phase != ModalClosed }

// ScrollLocked reports whether background scrolling is disabled.
func (m *Modal) ScrollLocked() bool { return m.phase != ModalClosed }

// Project returns the project on display, or nil.
func (m *Modal) Project() *models.Project { return m.project }
