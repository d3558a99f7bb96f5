package screen

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a screen id has not been registered.
var ErrNotFound = errors.New("screen not registered")

// Registry maps screen ids to screens and tracks the active one.
type Registry struct {
	screens  map[string]*Screen
	current  *Screen
	watchers []func(*Screen)
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{screens: make(map[string]*Screen)}
}

// Register stores s under its id. A screen already registered with the same
// id is replaced.
func (r *Registry) Register(s *Screen) {
	if s == nil {
		return
	}
	s.notify = r.broadcast
	r.screens[s.id] = s
}

// Lookup returns the screen registered under id.
func (r *Registry) Lookup(id string) (*Screen, error) {
	s, ok := r.screens[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return s, nil
}

// Current returns the active screen, or nil before the first display.
func (r *Registry) Current() *Screen {
	return r.current
}

// Len reports the number of registered screens.
func (r *Registry) Len() int {
	return len(r.screens)
}

// Watch subscribes fn to visibility changes of every registered screen.
func (r *Registry) Watch(fn func(*Screen)) {
	if fn != nil {
		r.watchers = append(r.watchers, fn)
	}
}

func (r *Registry) broadcast(s *Screen) {
	for _, fn := range r.watchers {
		fn(s)
	}
}
