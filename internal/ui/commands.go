package ui

import (
	"errors"
	"time"

	"github.com/atomicstack/time-travel/internal/logging"
	"github.com/atomicstack/time-travel/internal/logging/events"
	"github.com/atomicstack/time-travel/internal/screen"
	tea "github.com/charmbracelet/bubbletea"
)

// restoreMsg carries a history entry reached by back/forward navigation. It
// is delivered after the key press that caused it has been fully handled.
// index is the session position the entry was read from; a restore whose
// position the session has since left is stale and dropped.
type restoreMsg struct {
	record *screen.Record
	index  int
}

// TickMsg drives the scheduler.
type TickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func restoreCmd(rec *screen.Record, index int) tea.Cmd {
	return func() tea.Msg {
		return restoreMsg{record: rec, index: index}
	}
}

// Back steps session history backwards. Stepping onto the entry that predates
// the application, or past the oldest entry, quits.
func (m *Model) Back() {
	rec, ok := m.session.Back()
	if !ok {
		m.queue(tea.Quit)
		return
	}
	m.queue(restoreCmd(rec, m.session.Index()))
}

// Forward steps session history forwards when possible.
func (m *Model) Forward() {
	if rec, ok := m.session.Forward(); ok {
		m.queue(restoreCmd(rec, m.session.Index()))
	}
}

func (m *Model) handleRestoreMsg(msg tea.Msg) tea.Cmd {
	restore, ok := msg.(restoreMsg)
	if !ok {
		return nil
	}
	// Commands run concurrently, so restores from quick back/forward presses
	// can arrive out of order. Only the entry the session is on counts.
	if restore.index != m.session.Index() || restore.record != m.session.Current() {
		events.History.RestoreStale(restore.index, m.session.Index())
		return nil
	}
	if err := m.nav.Restore(restore.record); err != nil {
		return m.fail(err)
	}
	// Only the first entry has no record, so this is a step back off the
	// first screen.
	if restore.record == nil {
		return tea.Quit
	}
	m.errMsg = ""
	m.forceClearInfo()
	return nil
}

func (m *Model) handleTickMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(TickMsg)
	if !ok {
		return nil
	}
	if err := m.scheduler.Run(time.Time(tick)); err != nil {
		if cmd := m.handleActionErr(err); cmd != nil {
			return cmd
		}
	}
	return m.tickFn(m.tick)
}

// handleActionErr reports an action failure. Wiring defects end the program;
// anything else is shown on the status line.
func (m *Model) handleActionErr(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	if errors.Is(err, screen.ErrNotFound) || errors.Is(err, screen.ErrMissingContainer) {
		return m.fail(err)
	}
	logging.Error(err)
	events.Action.Error(err)
	m.errMsg = err.Error()
	m.forceClearInfo()
	return nil
}

func (m *Model) fail(err error) tea.Cmd {
	logging.Error(err)
	m.err = err
	return tea.Quit
}
