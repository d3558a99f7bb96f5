package events

import "github.com/atomicstack/time-travel/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (UITracer) Activate(screenID, elementID, label, filter string) {
	logging.Trace("ui.activate", map[string]interface{}{
		"screen":  screenID,
		"element": elementID,
		"label":   label,
		"filter":  filter,
	})
}

func (UITracer) Cursor(screenID string, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"screen": screenID, "cursor": cursor})
}

func (UITracer) Visibility(screenID string, visible bool) {
	logging.Trace("ui.visibility", map[string]interface{}{"screen": screenID, "visible": visible})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (FilterTracer) Cleared(screenID string) {
	logging.Trace("filter.clear", map[string]interface{}{"screen": screenID})
}

func (FilterTracer) WordBackspace(screenID, filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"screen": screenID, "filter": filter})
}

func (FilterTracer) Cursor(screenID string, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"screen": screenID, "cursor": pos})
}

func (FilterTracer) Append(screenID, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"screen": screenID, "filter": filter})
}

func (FilterTracer) Backspace(screenID, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"screen": screenID, "filter": filter})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label string, err error) {
	payload := map[string]interface{}{"id": id, "label": label}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.result", payload)
}
