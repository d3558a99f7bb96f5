package ui

import (
	"fmt"
	"strconv"

	"github.com/atomicstack/time-travel/internal/logging/events"
	"github.com/atomicstack/time-travel/internal/panel"
	"github.com/atomicstack/time-travel/internal/screen"
	"github.com/atomicstack/time-travel/internal/ui/command"
	uistate "github.com/atomicstack/time-travel/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// currentLevel returns the list state of the active screen, rebuilt from the
// screen's selectable elements. Switching screens clears the filter.
func (m *Model) currentLevel() *level {
	cur := m.nav.Current()
	if cur == nil {
		return nil
	}
	id := cur.ID()
	items := selectableItems(cur)
	l, ok := m.levels[id]
	if !ok {
		l = uistate.NewLevel(id, screenTitle(cur), items)
		m.levels[id] = l
	} else {
		l.Title = screenTitle(cur)
		l.UpdateItems(items)
	}
	if m.screenID != id {
		if l.Filter != "" {
			l.SetFilter("", 0)
		}
		m.screenID = id
	}
	return l
}

func selectableItems(s *screen.Screen) []uistate.Item {
	items := []uistate.Item{}
	s.Container().Walk(func(el *panel.Element) bool {
		if el.Hidden {
			return false
		}
		if el.Selectable() {
			items = append(items, uistate.Item{ID: itemID(el, len(items)), Label: el.Label(), Element: el})
		}
		return true
	})
	return items
}

func itemID(el *panel.Element, idx int) string {
	if el.ID != "" {
		return el.ID
	}
	if id, ok := el.Attr("data-id"); ok && id != "" {
		return id
	}
	if len(el.Classes) > 0 {
		return el.Classes[0]
	}
	return strconv.Itoa(idx)
}

func screenTitle(s *screen.Screen) string {
	if title := s.Query("h1"); title != nil {
		return title.Text
	}
	return s.ID()
}

func (m *Model) handleEscapeKey() tea.Cmd {
	m.errMsg = ""
	m.forceClearInfo()
	m.Back()
	return nil
}

func (m *Model) handleEnterKey() tea.Cmd {
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	item, ok := current.Current()
	if !ok {
		return nil
	}
	events.UI.Activate(current.ID, item.ID, item.Label, current.Filter)
	beforeCursor := current.FilterCursorPos()
	current.SetFilter("", 0)
	m.noteFilterCursorChange(current, beforeCursor)
	return m.activate(current.ID, item.ID, item.Label, item.Element)
}

// handleShortcut activates the button bound to key on the active screen.
func (m *Model) handleShortcut(key string) (bool, tea.Cmd) {
	cur := m.nav.Current()
	if cur == nil {
		return false, nil
	}
	for _, el := range cur.QueryAll("[" + panel.KeyAttr + "]") {
		if bound, _ := el.Attr(panel.KeyAttr); bound != key || !el.Selectable() {
			continue
		}
		events.UI.Activate(cur.ID(), itemID(el, -1), el.Label(), "")
		return true, m.activate(cur.ID(), itemID(el, -1), el.Label(), el)
	}
	return false, nil
}

func (m *Model) activate(screenID, id, label string, el *panel.Element) tea.Cmd {
	m.errMsg = ""
	m.forceClearInfo()
	err := m.bus.Run(command.Request{ScreenID: screenID, ID: id, Label: label, Handler: el.Action})
	if err != nil {
		return m.handleActionErr(err)
	}
	events.Action.Success(label)
	if m.verbose {
		m.setInfo(fmt.Sprintf("%s: done", label))
	}
	return nil
}

func (m *Model) moveCursorUp() {
	if current := m.currentLevel(); current != nil {
		if n := len(current.Items); n > 0 {
			if current.Cursor > 0 {
				current.Cursor--
			} else {
				current.Cursor = n - 1
			}
			events.UI.Cursor(current.ID, current.Cursor)
			m.syncViewport(current)
		}
	}
}

func (m *Model) moveCursorDown() {
	if current := m.currentLevel(); current != nil {
		if n := len(current.Items); n > 0 {
			if current.Cursor < n-1 {
				current.Cursor++
			} else {
				current.Cursor = 0
			}
			events.UI.Cursor(current.ID, current.Cursor)
			m.syncViewport(current)
		}
	}
}

func (m *Model) moveCursorPageUp() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorPageUp(m.maxVisibleItems()); moved {
			events.UI.Cursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorPageDown() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorPageDown(m.maxVisibleItems()); moved {
			events.UI.Cursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorHome() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorHome(); moved {
			events.UI.Cursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorEnd() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorEnd(); moved {
			events.UI.Cursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.mode != ModeScreen {
		return nil
	}
	key := keyMsg.String()
	switch key {
	case "ctrl+c":
		return tea.Quit
	case "esc", "alt+left":
		return m.handleEscapeKey()
	case "alt+right":
		m.Forward()
		return nil
	}
	if handled, cmd := m.handleShortcut(key); handled {
		return cmd
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch key {
	case "enter":
		return m.handleEnterKey()
	case "up":
		m.moveCursorUp()
	case "down":
		m.moveCursorDown()
	case "pgup":
		m.moveCursorPageUp()
	case "pgdown":
		m.moveCursorPageDown()
	case "home":
		m.moveCursorHome()
	case "end":
		m.moveCursorEnd()
	}
	return nil
}
