package events

import "github.com/atomicstack/time-travel/internal/logging"

type PromptTracer struct{}

type promptReason string

const (
	PromptReasonEscape promptReason = "escape"
	PromptReasonEmpty  promptReason = "empty"
)

var Prompt = PromptTracer{}

func (PromptTracer) Open(title string) {
	logging.Trace("prompt.open", map[string]interface{}{"title": title})
}

func (PromptTracer) Submit(title, value string) {
	logging.Trace("prompt.submit", map[string]interface{}{"title": title, "value": value})
}

func (PromptTracer) Cancel(title string, reason promptReason) {
	logging.Trace("prompt.cancel", map[string]interface{}{"title": title, "reason": string(reason)})
}
