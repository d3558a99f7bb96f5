package screens

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/time-travel/internal/commute"
	"github.com/atomicstack/time-travel/internal/panel"
	"github.com/atomicstack/time-travel/internal/schedule"
	"github.com/atomicstack/time-travel/internal/screen"
	"github.com/atomicstack/time-travel/internal/store"
)

// Prompter asks the user for a single line of text. submit runs only for a
// non-empty answer; cancelling never calls it.
type Prompter interface {
	Prompt(title string, submit func(value string) error)
}

// Config wires the application screens to their collaborators.
type Config struct {
	Context   context.Context
	Document  *panel.Document
	Navigator *screen.Navigator
	Data      *commute.Data
	Store     store.Store
	Prompter  Prompter
	Scheduler *schedule.Scheduler
	// Back steps session history backwards. The UI delivers the restored
	// entry asynchronously; tests may restore synchronously.
	Back func()
	Now  func() time.Time
	// TimerLimit cancels a running timer once exceeded.
	TimerLimit time.Duration
	// Tick is the timer display refresh interval.
	Tick time.Duration
}

const (
	defaultTimerLimit = 4 * time.Hour
	defaultTick       = time.Second
)

var errMissingDependency = errors.New("screens: missing dependency")

// App owns the four application screens and the data they edit.
type App struct {
	ctx        context.Context
	doc        *panel.Document
	nav        *screen.Navigator
	data       *commute.Data
	store      store.Store
	prompter   Prompter
	scheduler  *schedule.Scheduler
	back       func()
	now        func() time.Time
	timerLimit time.Duration
	tick       time.Duration

	commutes *commutesScreen
	routes   *routesScreen
	route    *routeScreen
	timer    *timerScreen
}

// Install creates the screens, binds them to their containers and registers
// them with the navigator's registry.
func Install(cfg Config) (*App, error) {
	if cfg.Document == nil || cfg.Navigator == nil || cfg.Data == nil {
		return nil, fmt.Errorf("%w: document, navigator and data are required", errMissingDependency)
	}
	a := &App{
		ctx:        cfg.Context,
		doc:        cfg.Document,
		nav:        cfg.Navigator,
		data:       cfg.Data,
		store:      cfg.Store,
		prompter:   cfg.Prompter,
		scheduler:  cfg.Scheduler,
		back:       cfg.Back,
		now:        cfg.Now,
		timerLimit: cfg.TimerLimit,
		tick:       cfg.Tick,
	}
	if a.ctx == nil {
		a.ctx = context.Background()
	}
	if a.now == nil {
		a.now = time.Now
	}
	if a.scheduler == nil {
		a.scheduler = schedule.New(a.now)
	}
	if a.back == nil {
		a.back = func() {}
	}
	if a.timerLimit <= 0 {
		a.timerLimit = defaultTimerLimit
	}
	if a.tick <= 0 {
		a.tick = defaultTick
	}

	a.commutes = &commutesScreen{app: a}
	a.routes = &routesScreen{app: a}
	a.route = &routeScreen{app: a}
	a.timer = &timerScreen{app: a}
	bindings := []struct {
		id    string
		hooks interface {
			screen.Hooks
			bind(*screen.Screen)
		}
	}{
		{CommutesID, a.commutes},
		{RoutesID, a.routes},
		{RouteID, a.route},
		{TimerID, a.timer},
	}
	reg := a.nav.Registry()
	for _, b := range bindings {
		s, err := screen.New(b.id, a.doc, b.hooks)
		if err != nil {
			return nil, err
		}
		b.hooks.bind(s)
		reg.Register(s)
	}
	return a, nil
}

// Start displays the commute list.
func (a *App) Start() error {
	return a.nav.Display(CommutesID, nil, screen.NavPush)
}

// Data returns the tree the screens edit.
func (a *App) Data() *commute.Data { return a.data }

// Scheduler returns the scheduler the timer screen registers with.
func (a *App) Scheduler() *schedule.Scheduler { return a.scheduler }

// Save persists the data tree. Without a store it does nothing.
func (a *App) Save() error {
	if a.store == nil {
		return nil
	}
	return a.store.Save(a.ctx, a.data)
}

func (a *App) prompt(title string, submit func(string) error) error {
	if a.prompter == nil {
		return fmt.Errorf("%w: prompter", errMissingDependency)
	}
	a.prompter.Prompt(title, func(value string) error {
		value = strings.TrimSpace(value)
		if value == "" {
			return nil
		}
		return submit(value)
	})
	return nil
}

// fillRows replaces list's children with rows and toggles the empty notice.
// routeFor resolves a route screen payload. Screens push the route id so
// history entries stay valid across data changes; a *commute.Route is taken
// as is.
func (a *App) routeFor(payload any) *commute.Route {
	switch p := payload.(type) {
	case string:
		if _, r, ok := a.data.FindRoute(p); ok {
			return r
		}
	case *commute.Route:
		return p
	}
	return nil
}

func fillRows(s *screen.Screen, list *panel.Element, rows []*panel.Element) {
	list.Clear()
	list.Append(rows...)
	if empty := s.Query(".empty"); empty != nil {
		empty.Hidden = len(rows) > 0
	}
}
