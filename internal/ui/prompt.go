package ui

import "github.com/atomicstack/time-travel/internal/logging/events"

// Prompt opens the name form over the active screen. submit runs on the UI
// goroutine once the user confirms a non-empty value; escape or an empty
// value closes the form without calling it. A prompt opened while another is
// showing replaces it.
func (m *Model) Prompt(title string, submit func(string) error) {
	if submit == nil {
		return
	}
	if m.form != nil {
		events.Prompt.Cancel(m.form.Title(), events.PromptReasonEscape)
	}
	events.Prompt.Open(title)
	m.form = newNameForm(title, submit, m.staticCursor)
	m.mode = ModePrompt
	m.queue(m.form.input.Focus())
	m.errMsg = ""
	m.forceClearInfo()
}
