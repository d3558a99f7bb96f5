package screens

import (
	"time"

	"github.com/atomicstack/time-travel/internal/commute"
	"github.com/atomicstack/time-travel/internal/logging/events"
	"github.com/atomicstack/time-travel/internal/panel"
	"github.com/atomicstack/time-travel/internal/screen"
)

// timerScreen times one trip on the route it was shown with. The periodic
// display update lives only between OnShow and OnHide.
type timerScreen struct {
	app     *App
	screen  *screen.Screen
	title   *panel.Element
	elapsed *panel.Element

	route  *commute.Route
	start  time.Time
	cancel func()
}

func (s *timerScreen) bind(sc *screen.Screen) {
	s.screen = sc
	s.title = sc.Query(".title")
	s.elapsed = sc.Query("#elapsed")
	sc.Query(".timer-stop").Action = s.stop
	sc.Query(".timer-cancel").Action = s.abort
}

func (s *timerScreen) OnShow(payload any) {
	r := s.app.routeFor(payload)
	if r == nil {
		return
	}
	s.route = r
	s.start = s.app.now()
	s.title.SetText(r.Name)
	s.elapsed.SetText(commute.FormatTime(0))
	events.Timer.Start(r.Name)
	s.cancel = s.app.scheduler.Every(s.app.tick, s.update)
}

func (s *timerScreen) OnHide() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.route = nil
	s.elapsed.SetText("")
	s.title.SetText("")
}

func (s *timerScreen) update(now time.Time) error {
	if s.route == nil {
		return nil
	}
	elapsed := now.Sub(s.start)
	s.elapsed.SetText(commute.FormatDuration(elapsed))
	if elapsed > s.app.timerLimit {
		events.Timer.Cancel(s.route.Name, events.TimerReasonLimit)
		s.leave()
	}
	return nil
}

// stop records the trip and returns to the route detail, which reloads with
// the new median.
func (s *timerScreen) stop() error {
	r := s.route
	if r == nil {
		return nil
	}
	end := s.app.now()
	sample := r.AddSample(s.start, end)
	events.Timer.Stop(r.Name, time.Duration(sample.Time)*time.Millisecond)
	s.leave()
	return s.app.Save()
}

func (s *timerScreen) abort() error {
	if s.route != nil {
		events.Timer.Cancel(s.route.Name, events.TimerReasonUser)
	}
	s.leave()
	return nil
}

// leave stops updates before handing control back; the restored screen may
// arrive after this call returns.
func (s *timerScreen) leave() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.route = nil
	s.app.back()
}
