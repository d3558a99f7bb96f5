package screens

import (
	"github.com/atomicstack/time-travel/internal/commute"
	"github.com/atomicstack/time-travel/internal/panel"
	"github.com/atomicstack/time-travel/internal/screen"
	"github.com/dustin/go-humanize"
)

type routeScreen struct {
	app    *App
	screen *screen.Screen
	list   *panel.Element
	title  *panel.Element
	median *panel.Element
	delete *panel.Element
}

func (s *routeScreen) bind(sc *screen.Screen) {
	s.screen = sc
	s.list = sc.Query("#samples")
	s.title = sc.Query(".title")
	s.median = sc.Query(".median")
	s.delete = sc.Query(".sample-delete")
	s.delete.Action = s.deleteLast
	sc.Query(".timer-start").Action = s.startTimer
}

func (s *routeScreen) OnShow(payload any) {
	r := s.app.routeFor(payload)
	if r == nil {
		fillRows(s.screen, s.list, nil)
		s.delete.Hidden = true
		return
	}
	s.title.SetText(r.Name)
	s.median.SetText("Median " + commute.FormatTime(r.MedianTime))
	now := s.app.now()
	rows := make([]*panel.Element, 0, len(r.Samples))
	for i := len(r.Samples) - 1; i >= 0; i-- {
		sample := r.Samples[i]
		row, err := s.app.doc.Fill(templateSample, map[string]any{
			"time": commute.FormatTime(sample.Time),
			"date": humanize.RelTime(sample.StartDate, now, "ago", "from now"),
		})
		if err != nil {
			panic(err)
		}
		rows = append(rows, row)
	}
	fillRows(s.screen, s.list, rows)
	s.delete.Hidden = len(r.Samples) == 0
}

func (s *routeScreen) OnHide() {
	s.list.Clear()
	s.title.SetText("")
	s.median.SetText("")
}

func (s *routeScreen) route() *commute.Route {
	return s.app.routeFor(s.screen.Payload())
}

func (s *routeScreen) startTimer() error {
	r := s.route()
	if r == nil {
		return nil
	}
	return s.app.nav.Display(TimerID, r.ID, screen.NavPush)
}

func (s *routeScreen) deleteLast() error {
	r := s.route()
	if r == nil || !r.RemoveLastSample() {
		return nil
	}
	err := s.app.Save()
	s.screen.Refresh()
	return err
}
