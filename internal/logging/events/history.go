package events

import "github.com/atomicstack/time-travel/internal/logging"

type HistoryTracer struct{}

var History = HistoryTracer{}

func (HistoryTracer) Push(id string, index, length int) {
	logging.Trace("history.push", map[string]interface{}{"id": id, "index": index, "length": length})
}

func (HistoryTracer) Replace(id string, index int) {
	logging.Trace("history.replace", map[string]interface{}{"id": id, "index": index})
}

func (HistoryTracer) Back(index int) {
	logging.Trace("history.back", map[string]interface{}{"index": index})
}

func (HistoryTracer) Forward(index int) {
	logging.Trace("history.forward", map[string]interface{}{"index": index})
}

func (HistoryTracer) Restore(id string) {
	logging.Trace("history.restore", map[string]interface{}{"id": id})
}

func (HistoryTracer) RestoreEmpty() {
	logging.Trace("history.restore.empty", nil)
}

func (HistoryTracer) RestoreStale(index, current int) {
	logging.Trace("history.restore.stale", map[string]interface{}{"index": index, "current": current})
}
