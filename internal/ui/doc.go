// Package ui contains the Bubble Tea program that renders the active screen.
// Model focuses on message orchestration while helpers own navigation, input,
// rendering and the name prompt.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - While a name prompt is open, key presses go to the prompt. Everything
//     else is routed through a typed handler registry so each tea.Msg is
//     handled by a focused function.
//   - Enter and shortcut keys activate elements of the current screen through
//     the command bus. Actions run on the UI goroutine and may display other
//     screens, open prompts or schedule timer work.
//   - Back and forward navigation step the session history and deliver the
//     reached entry as a restoreMsg, so the restore happens after the key
//     press that caused it has been handled. Each restoreMsg names the
//     session position it was read from and is dropped once the session has
//     moved elsewhere, so only the entry the session is on gets shown.
//     Reaching the first entry, which has no record, quits.
//   - TickMsg drives the scheduler. Periodic screen work such as the running
//     timer registers there instead of starting goroutines.
//
// State ownership:
//   - Screens and their panel documents belong to the screen registry. The
//     model never edits them; it renders the visible elements and asks the
//     navigator to show others.
//   - Per-screen list state (cursor, filter, viewport) lives in
//     internal/ui/state.Level and is rebuilt from the screen's selectable
//     elements after every update.
package ui
