package ui

import (
	"unicode"

	"github.com/atomicstack/time-travel/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(l *level, before int) {
	if l == nil {
		return
	}
	if before != l.FilterCursorPos() {
		m.filterCursorDirty = true
	}
}

// filterMoves maps cursor keys to filter cursor movements. They never change
// the filter text.
var filterMoves = map[string]func(*level) bool{
	"ctrl+a": (*level).MoveFilterCursorStart,
	"ctrl+e": (*level).MoveFilterCursorEnd,
	"alt+b":  (*level).MoveFilterCursorWordBackward,
	"alt+f":  (*level).MoveFilterCursorWordForward,
	"left":   (*level).MoveFilterCursorRuneBackward,
	"right":  (*level).MoveFilterCursorRuneForward,
}

// handleTextInput applies filter editing keys to the active screen's list.
// It reports false for keys it leaves to navigation.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	current := m.currentLevel()
	if current == nil {
		return false
	}
	key := msg.String()
	if move, ok := filterMoves[key]; ok {
		before := current.FilterCursorPos()
		if !move(current) {
			return false
		}
		m.noteFilterCursorChange(current, before)
		events.Filter.Cursor(current.ID, current.FilterCursor)
		return true
	}
	switch key {
	case "ctrl+u":
		if current.Filter == "" {
			return false
		}
		return m.editFilter(current, func(l *level) bool {
			l.SetFilter("", 0)
			return true
		}, events.Filter.Cleared)
	case "ctrl+w":
		return m.editFilter(current, (*level).DeleteFilterWordBackward, func(id string) {
			events.Filter.WordBackspace(id, current.Filter)
		})
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.removeFilterRune()
	case tea.KeySpace:
		return m.appendToFilter(" ")
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			// spaces arrive as KeySpace
			if unicode.IsControl(r) || unicode.IsSpace(r) {
				return false
			}
		}
		return m.appendToFilter(string(msg.Runes))
	}
	return false
}

// editFilter runs a text edit on l and, when it changed something, clears the
// status line, traces the edit and keeps the cursor row in view.
func (m *Model) editFilter(l *level, edit func(*level) bool, trace func(screenID string)) bool {
	before := l.FilterCursorPos()
	if !edit(l) {
		return false
	}
	m.noteFilterCursorChange(l, before)
	m.forceClearInfo()
	m.errMsg = ""
	trace(l.ID)
	m.syncViewport(l)
	return true
}

func (m *Model) appendToFilter(text string) bool {
	current := m.currentLevel()
	if current == nil || text == "" {
		return false
	}
	return m.editFilter(current, func(l *level) bool {
		return l.InsertFilterText(text)
	}, func(id string) {
		events.Filter.Append(id, current.Filter)
	})
}

func (m *Model) removeFilterRune() bool {
	current := m.currentLevel()
	if current == nil {
		return false
	}
	return m.editFilter(current, (*level).DeleteFilterRuneBackward, func(id string) {
		events.Filter.Backspace(id, current.Filter)
	})
}

// filterPrompt renders the filter line with the caret over the rune at the
// filter cursor. An empty filter shows a placeholder under the caret.
func (m *Model) filterPrompt() (string, *lipgloss.Style) {
	current := m.currentLevel()
	if current == nil {
		return ">", styles.Filter
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}

	textStyle := styles.Filter
	runes := []rune(current.Filter)
	pos := current.FilterCursorPos()
	if len(runes) == 0 {
		textStyle = styles.FilterPlaceholder
		runes = []rune("(type to filter)")
		pos = 0
	}
	if textStyle != nil {
		m.filterCursor.TextStyle = textStyle.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}

	caret, after := " ", ""
	if pos < len(runes) {
		caret, after = string(runes[pos]), string(runes[pos+1:])
	}
	return prompt + styledText(textStyle, string(runes[:pos])) + m.renderFilterCursor(caret) + styledText(textStyle, after), nil
}

func styledText(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.filterCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}
