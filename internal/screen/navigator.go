package screen

import (
	"github.com/atomicstack/time-travel/internal/logging/events"
)

// NavMode controls whether a Display call writes a history entry.
type NavMode int

const (
	// NavPush appends a history entry. It is the zero value.
	NavPush NavMode = iota
	// NavReplace overwrites the current history entry.
	NavReplace
	// NavNone leaves history alone; used when replaying a restored entry.
	NavNone
)

func (m NavMode) String() string {
	switch m {
	case NavPush:
		return "push"
	case NavReplace:
		return "replace"
	case NavNone:
		return "none"
	default:
		return "unknown"
	}
}

// Record is what the history host stores for each navigation.
type Record struct {
	ID      string
	Payload any
}

// History is the host's session-history stack.
type History interface {
	Push(Record)
	Replace(Record)
}

// Navigator is the single entry point for changing the active screen.
type Navigator struct {
	registry *Registry
	history  History
}

// NewNavigator wires a registry to a history host. history may be nil, in
// which case every mode behaves like NavNone.
func NewNavigator(registry *Registry, history History) *Navigator {
	return &Navigator{registry: registry, history: history}
}

func (n *Navigator) Registry() *Registry { return n.registry }

// Current returns the active screen.
func (n *Navigator) Current() *Screen { return n.registry.current }

// Display activates screen id with payload. An unknown id returns ErrNotFound
// before anything is touched.
//
// The current screen is always hidden first, even when it is the target, so
// displaying the active screen reloads it. Hooks may call Display again; the
// nested call finishes before this one resumes and the most recent transition
// wins.
func (n *Navigator) Display(id string, payload any, mode NavMode) error {
	target, err := n.registry.Lookup(id)
	if err != nil {
		events.Screen.NotFound(id)
		return err
	}
	events.Screen.Display(id, mode.String())
	rec := Record{ID: id, Payload: payload}
	if n.history != nil {
		switch mode {
		case NavPush:
			n.history.Push(rec)
		case NavReplace:
			n.history.Replace(rec)
		}
	}
	// Detach before hiding: a hide hook that navigates must not hide the
	// same screen twice, and whatever it activated is hidden in turn.
	for prev := n.registry.current; prev != nil; prev = n.registry.current {
		n.registry.current = nil
		prev.hide()
	}
	// current is set before OnShow so a nested Display hides the target.
	n.registry.current = target
	target.show(payload)
	return nil
}

// MustDisplay is Display for statically known ids; it panics on error.
func (n *Navigator) MustDisplay(id string, payload any, mode NavMode) {
	if err := n.Display(id, payload, mode); err != nil {
		panic(err)
	}
}

// Restore replays a history entry delivered by back/forward navigation. A nil
// record comes from an entry this navigator never wrote and is ignored.
func (n *Navigator) Restore(rec *Record) error {
	if rec == nil {
		events.History.RestoreEmpty()
		return nil
	}
	events.History.Restore(rec.ID)
	return n.Display(rec.ID, rec.Payload, NavNone)
}
