package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHandleTextInputAppendsRunes(t *testing.T) {
	f := newUIFixture(t, nil, nil, Options{})
	m := f.h.Model()
	handled := m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")})
	if !handled {
		t.Fatalf("expected key press to be handled")
	}
	current := m.currentLevel()
	if current.Filter != "abc" {
		t.Fatalf("expected filter 'abc', got %q", current.Filter)
	}
	if pos := current.FilterCursorPos(); pos != 3 {
		t.Fatalf("expected cursor at end, got %d", pos)
	}
}

func TestHandleTextInputCursorMovement(t *testing.T) {
	f := newUIFixture(t, nil, nil, Options{})
	m := f.h.Model()
	current := m.currentLevel()
	current.SetFilter("abc", 3)

	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyLeft}) {
		t.Fatalf("expected left arrow to be handled")
	}
	if pos := current.FilterCursorPos(); pos != 2 {
		t.Fatalf("expected cursor at 2 after left, got %d", pos)
	}

	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyRight}) {
		t.Fatalf("expected right arrow to be handled")
	}
	if pos := current.FilterCursorPos(); pos != 3 {
		t.Fatalf("expected cursor back at 3, got %d", pos)
	}
}

func TestCtrlUClearsFilter(t *testing.T) {
	f := newUIFixture(t, nil, nil, Options{})
	f.typeText("gy")
	f.h.Send(tea.KeyMsg{Type: tea.KeyCtrlU})
	if got := f.h.Model().currentLevel().Filter; got != "" {
		t.Fatalf("expected filter cleared, got %q", got)
	}
	if view := f.h.View(); !strings.Contains(view, "work") {
		t.Fatalf("expected full list after clearing:\n%s", view)
	}
}

func TestBackspaceRemovesRune(t *testing.T) {
	f := newUIFixture(t, nil, nil, Options{})
	f.typeText("wox")
	f.h.Send(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := f.h.Model().currentLevel().Filter; got != "wo" {
		t.Fatalf("expected filter 'wo', got %q", got)
	}
}

func TestFilterPromptPlaceholder(t *testing.T) {
	f := newUIFixture(t, nil, nil, Options{})
	prompt, _ := f.h.Model().filterPrompt()
	if !strings.Contains(prompt, "type to filter") {
		t.Fatalf("expected placeholder in prompt, got %q", prompt)
	}
}
