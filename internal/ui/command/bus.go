package command

import "github.com/atomicstack/time-travel/internal/logging/events"

// Request encapsulates an element activation.
type Request struct {
	ScreenID string
	ID       string
	Label    string
	Handler  func() error
}

// Bus runs element actions. Actions change screens and data, so they run on
// the caller's goroutine inside Update rather than as tea.Cmds.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Run invokes the request handler while emitting trace logs.
func (b *Bus) Run(req Request) error {
	events.Command.Queue(req.ID, req.Label)
	if req.Handler == nil {
		events.Command.Skip(req.ID, req.Label)
		return nil
	}
	err := req.Handler()
	events.Command.Result(req.ID, req.Label, err)
	return err
}
