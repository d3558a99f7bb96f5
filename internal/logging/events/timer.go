package events

import (
	"time"

	"github.com/atomicstack/time-travel/internal/logging"
)

type TimerTracer struct{}

type timerReason string

const (
	TimerReasonUser  timerReason = "user"
	TimerReasonLimit timerReason = "limit"
)

var Timer = TimerTracer{}

func (TimerTracer) Start(route string) {
	logging.Trace("timer.start", map[string]interface{}{"route": route})
}

func (TimerTracer) Stop(route string, elapsed time.Duration) {
	logging.Trace("timer.stop", map[string]interface{}{"route": route, "elapsedMs": elapsed.Milliseconds()})
}

func (TimerTracer) Cancel(route string, reason timerReason) {
	logging.Trace("timer.cancel", map[string]interface{}{"route": route, "reason": string(reason)})
}
