package schedule

import (
	"errors"
	"sort"
	"time"
)

// Scheduler runs periodic callbacks on the caller's goroutine. The owner
// drives it by calling Run from its event loop; nothing fires between Run
// calls, so callbacks never race the code that installed them.
type Scheduler struct {
	now    func() time.Time
	jobs   map[int]*job
	nextID int
}

type job struct {
	interval time.Duration
	next     time.Time
	fn       func(time.Time) error
}

// New returns a scheduler reading the time from now (time.Now when nil).
func New(now func() time.Time) *Scheduler {
	if now == nil {
		now = time.Now
	}
	return &Scheduler{now: now, jobs: make(map[int]*job)}
}

// Every registers fn to fire once per interval, first after one interval has
// elapsed. The returned cancel func is idempotent.
func (s *Scheduler) Every(interval time.Duration, fn func(time.Time) error) (cancel func()) {
	if interval <= 0 || fn == nil {
		return func() {}
	}
	s.nextID++
	id := s.nextID
	s.jobs[id] = &job{interval: interval, next: s.now().Add(interval), fn: fn}
	return func() { delete(s.jobs, id) }
}

// Run fires every job due at now. Missed periods are not replayed: a job
// fires at most once per Run and is rescheduled one interval after now. Jobs
// cancelled by an earlier callback in the same Run are skipped. Callback
// errors are joined.
func (s *Scheduler) Run(now time.Time) error {
	ids := make([]int, 0, len(s.jobs))
	for id := range s.jobs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	var errs []error
	for _, id := range ids {
		j, ok := s.jobs[id]
		if !ok || now.Before(j.next) {
			continue
		}
		j.next = now.Add(j.interval)
		if err := j.fn(now); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Len reports the number of registered jobs.
func (s *Scheduler) Len() int {
	return len(s.jobs)
}
