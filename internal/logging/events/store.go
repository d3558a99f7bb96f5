package events

import "github.com/atomicstack/time-travel/internal/logging"

type StoreTracer struct{}

var Store = StoreTracer{}

func (StoreTracer) Load(key string, commutes int) {
	logging.Trace("store.load", map[string]interface{}{"key": key, "commutes": commutes})
}

func (StoreTracer) Save(key string, bytes int) {
	logging.Trace("store.save", map[string]interface{}{"key": key, "bytes": bytes})
}

func (StoreTracer) Corrupt(key string, err error) {
	payload := map[string]interface{}{"key": key}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("store.corrupt", payload)
}
