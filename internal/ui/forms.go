package ui

import (
	"strings"

	"github.com/atomicstack/time-travel/internal/logging/events"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// nameForm is the single-line prompt used to name commutes and routes.
type nameForm struct {
	input  textinput.Model
	title  string
	help   string
	submit func(string) error
}

func newNameForm(title string, submit func(string) error, static bool) *nameForm {
	ti := textinput.New()
	ti.Placeholder = strings.ToLower(title)
	ti.CharLimit = 128
	if static {
		ti.Cursor.SetMode(cursor.CursorStatic)
	}
	return &nameForm{
		input:  ti,
		title:  title,
		help:   "Press Enter to save. Esc to cancel.",
		submit: submit,
	}
}

func (f *nameForm) Title() string     { return f.title }
func (f *nameForm) Help() string      { return f.help }
func (f *nameForm) Value() string     { return strings.TrimSpace(f.input.Value()) }
func (f *nameForm) InputView() string { return f.input.View() }

// Update returns the input's command plus whether the form was submitted or
// cancelled. An empty value cancels.
func (f *nameForm) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		switch m.String() {
		case "ctrl+u":
			if f.input.Value() != "" {
				f.input.SetValue("")
				f.input.CursorStart()
			}
			return nil, false, false
		}
		switch m.Type {
		case tea.KeyEsc:
			events.Prompt.Cancel(f.title, events.PromptReasonEscape)
			return nil, false, true
		case tea.KeyEnter:
			value := f.Value()
			if value == "" {
				events.Prompt.Cancel(f.title, events.PromptReasonEmpty)
				return nil, false, true
			}
			events.Prompt.Submit(f.title, value)
			return nil, true, false
		}
	}
	updated, cmd := f.input.Update(msg)
	f.input = updated
	return cmd, false, false
}

// handleNameForm routes key presses and input-internal messages to the open
// form. Ticks, restores and resizes keep flowing to their handlers.
func (m *Model) handleNameForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.form == nil {
		m.mode = ModeScreen
		return false, nil
	}
	if _, isKey := msg.(tea.KeyMsg); !isKey && m.handlerFor(msg) != nil {
		return false, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return true, tea.Quit
	}
	cmd, done, cancel := m.form.Update(msg)
	if cancel {
		m.closeForm()
		return true, cmd
	}
	if done {
		form := m.form
		m.closeForm()
		if err := form.submit(form.Value()); err != nil {
			return true, m.handleActionErr(err)
		}
		events.Action.Success(form.Title())
		return true, cmd
	}
	return true, cmd
}

func (m *Model) closeForm() {
	m.form = nil
	m.mode = ModeScreen
}

func (m *Model) viewForm() string {
	lines := []string{}
	if header := m.header(); header != "" {
		lines = append(lines, styles.Header.Render(header))
	}
	lines = append(lines, styles.PromptTitle.Render(m.form.Title()), "", m.form.InputView())
	if m.errMsg != "" {
		lines = append(lines, "", styles.Error.Render(m.errMsg))
	}
	lines = append(lines, "", styles.PromptHelp.Render(m.form.Help()))
	return strings.Join(lines, "\n")
}
