package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/time-travel/internal/history"
	"github.com/atomicstack/time-travel/internal/logging/events"
	"github.com/atomicstack/time-travel/internal/schedule"
	"github.com/atomicstack/time-travel/internal/screen"
	"github.com/atomicstack/time-travel/internal/theme"
	"github.com/atomicstack/time-travel/internal/ui/command"
	uistate "github.com/atomicstack/time-travel/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

type Mode int

const (
	ModeScreen Mode = iota
	ModePrompt
)

const defaultTick = time.Second

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	// Tick is the interval at which the scheduler is driven.
	Tick time.Duration
}

// Model implements the Bubble Tea model that renders the active screen.
type Model struct {
	nav       *screen.Navigator
	session   *history.Session
	scheduler *schedule.Scheduler
	bus       *command.Bus

	levels   map[string]*level
	screenID string
	mode     Mode
	form     *nameForm

	errMsg            string
	infoMsg           string
	infoExpire        time.Time
	width             int
	height            int
	fixedWidth        bool
	fixedHeight       bool
	showFooter        bool
	verbose           bool
	tick              time.Duration
	tickFn            func(time.Duration) tea.Cmd
	staticCursor      bool
	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
	pending  []tea.Cmd
	err      error
}

// NewModel wires the UI to the navigator, its session history and the
// scheduler that periodic screen work registers with.
func NewModel(nav *screen.Navigator, session *history.Session, scheduler *schedule.Scheduler, opts Options) *Model {
	if scheduler == nil {
		scheduler = schedule.New(nil)
	}
	m := &Model{
		nav:        nav,
		session:    session,
		scheduler:  scheduler,
		bus:        command.New(),
		levels:     make(map[string]*level),
		mode:       ModeScreen,
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
		tick:       opts.Tick,
		tickFn:     tickCmd,
	}
	if m.tick <= 0 {
		m.tick = defaultTick
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	nav.Registry().Watch(func(s *screen.Screen) {
		events.UI.Visibility(s.ID(), s.Visible())
	})
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.tickFn(m.tick)}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	m.currentLevel()
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handled, cmd := m.handleActiveForm(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// Err returns the error that ended the program, if any.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) handleActiveForm(msg tea.Msg) (bool, tea.Cmd) {
	switch m.mode {
	case ModePrompt:
		return m.handleNameForm(msg)
	default:
		return false, nil
	}
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(restoreMsg{}):        m.handleRestoreMsg,
		reflect.TypeOf(TickMsg{}):           m.handleTickMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// queue defers cmd to the end of the current Update. Screen callbacks use it
// to hand work back to the event loop.
func (m *Model) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.pending = append(m.pending, cmd)
	}
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	cmds = append(cmds, m.pending...)
	m.pending = nil
	m.currentLevel()
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
