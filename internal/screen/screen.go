package screen

import (
	"errors"
	"fmt"

	"github.com/atomicstack/time-travel/internal/logging/events"
	"github.com/atomicstack/time-travel/internal/panel"
)

// ErrMissingContainer is returned by New when the screen's container element
// does not exist in the document.
var ErrMissingContainer = errors.New("screen container not found")

// Hooks receives lifecycle callbacks. Implementations may call
// Navigator.Display from either hook.
type Hooks interface {
	OnShow(payload any)
	OnHide()
}

// HookFuncs adapts plain functions to Hooks. Nil fields are skipped.
type HookFuncs struct {
	Show func(payload any)
	Hide func()
}

func (h HookFuncs) OnShow(payload any) {
	if h.Show != nil {
		h.Show(payload)
	}
}

func (h HookFuncs) OnHide() {
	if h.Hide != nil {
		h.Hide()
	}
}

// Screen is a navigable panel bound to one container element.
type Screen struct {
	id        string
	container *panel.Element
	hooks     Hooks
	payload   any
	visible   bool
	notify    func(*Screen)
}

// New binds a screen to the container with the same id in doc. The screen
// starts hidden. hooks may be nil.
func New(id string, doc *panel.Document, hooks Hooks) (*Screen, error) {
	container, ok := doc.ByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingContainer, id)
	}
	container.Hidden = true
	return &Screen{id: id, container: container, hooks: hooks}, nil
}

func (s *Screen) ID() string { return s.id }

func (s *Screen) Container() *panel.Element { return s.container }

func (s *Screen) Visible() bool { return s.visible }

// Payload returns the data the screen was shown with. It is nil while the
// screen is hidden.
func (s *Screen) Payload() any { return s.payload }

// Query resolves a descendant of the screen's container.
func (s *Screen) Query(selector string) *panel.Element {
	return s.container.Query(selector)
}

// QueryAll resolves every matching descendant of the screen's container.
func (s *Screen) QueryAll(selector string) []*panel.Element {
	return s.container.QueryAll(selector)
}

// Refresh re-runs OnHide then OnShow with the current payload, leaving
// visibility and history untouched. It does nothing for a hidden screen and
// reports whether the hooks ran.
func (s *Screen) Refresh() bool {
	if !s.visible {
		return false
	}
	events.Screen.Refresh(s.id)
	if s.hooks != nil {
		s.hooks.OnHide()
		s.hooks.OnShow(s.payload)
	}
	return true
}

func (s *Screen) show(payload any) {
	s.setVisible(true)
	s.payload = payload
	events.Screen.Show(s.id)
	if s.hooks != nil {
		s.hooks.OnShow(payload)
	}
}

// hide runs OnHide before dropping the payload so the hook still sees it.
func (s *Screen) hide() {
	s.setVisible(false)
	events.Screen.Hide(s.id)
	if s.hooks != nil {
		s.hooks.OnHide()
	}
	// OnHide may have navigated straight back here.
	if !s.visible {
		s.payload = nil
	}
}

func (s *Screen) setVisible(visible bool) {
	s.visible = visible
	s.container.Hidden = !visible
	if s.notify != nil {
		s.notify(s)
	}
}
