package history

import (
	"github.com/atomicstack/time-travel/internal/logging/events"
	"github.com/atomicstack/time-travel/internal/screen"
)

// Session is an in-process session-history stack with browser semantics:
// pushing drops any forward entries, replacing rewrites the current entry and
// back/forward move the cursor and hand back the stored record.
//
// A new session holds one entry with no record, standing in for history the
// application did not write.
type Session struct {
	entries []*screen.Record
	index   int
}

// NewSession returns a session positioned on its initial empty entry.
func NewSession() *Session {
	return &Session{entries: []*screen.Record{nil}}
}

// Push appends rec after the current entry.
func (s *Session) Push(rec screen.Record) {
	s.entries = append(s.entries[:s.index+1], &rec)
	s.index = len(s.entries) - 1
	events.History.Push(rec.ID, s.index, len(s.entries))
}

// Replace overwrites the current entry with rec.
func (s *Session) Replace(rec screen.Record) {
	s.entries[s.index] = &rec
	events.History.Replace(rec.ID, s.index)
}

// Back moves to the previous entry and returns its record, which is nil for
// entries the application did not write. ok is false at the oldest entry.
func (s *Session) Back() (rec *screen.Record, ok bool) {
	if s.index == 0 {
		return nil, false
	}
	s.index--
	events.History.Back(s.index)
	return s.entries[s.index], true
}

// Forward moves to the next entry, if any.
func (s *Session) Forward() (rec *screen.Record, ok bool) {
	if s.index >= len(s.entries)-1 {
		return nil, false
	}
	s.index++
	events.History.Forward(s.index)
	return s.entries[s.index], true
}

// Current returns the record of the current entry.
func (s *Session) Current() *screen.Record {
	return s.entries[s.index]
}

// CanForward reports whether Forward would move.
func (s *Session) CanForward() bool { return s.index < len(s.entries)-1 }

func (s *Session) Len() int { return len(s.entries) }

func (s *Session) Index() int { return s.index }
