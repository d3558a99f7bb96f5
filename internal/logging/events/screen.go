package events

import "github.com/atomicstack/time-travel/internal/logging"

type ScreenTracer struct{}

var Screen = ScreenTracer{}

func (ScreenTracer) Show(id string) {
	logging.Trace("screen.show", map[string]interface{}{"id": id})
}

func (ScreenTracer) Hide(id string) {
	logging.Trace("screen.hide", map[string]interface{}{"id": id})
}

func (ScreenTracer) Refresh(id string) {
	logging.Trace("screen.refresh", map[string]interface{}{"id": id})
}

func (ScreenTracer) Display(id, mode string) {
	logging.Trace("screen.display", map[string]interface{}{"id": id, "mode": mode})
}

func (ScreenTracer) NotFound(id string) {
	logging.Trace("screen.not-found", map[string]interface{}{"id": id})
}
