package screens

import (
	"github.com/atomicstack/time-travel/internal/commute"
	"github.com/atomicstack/time-travel/internal/panel"
	"github.com/atomicstack/time-travel/internal/screen"
)

// routesScreen lists the routes of the commute it was shown with, fastest
// first.
type routesScreen struct {
	app    *App
	screen *screen.Screen
	list   *panel.Element
	title  *panel.Element
}

func (s *routesScreen) bind(sc *screen.Screen) {
	s.screen = sc
	s.list = sc.Query("#routes")
	s.title = sc.Query(".title")
	sc.Query(".route-add").Action = s.add
}

func (s *routesScreen) OnShow(payload any) {
	c, ok := payload.(*commute.Commute)
	if !ok || c == nil {
		fillRows(s.screen, s.list, nil)
		return
	}
	s.title.SetText(c.Name)
	c.SortRoutes()
	rows := make([]*panel.Element, 0, len(c.Routes))
	for _, r := range c.Routes {
		row, err := s.app.doc.Fill(templateRoute, map[string]any{
			"name": r.Name,
			"time": commute.FormatTime(r.MedianTime),
		})
		if err != nil {
			panic(err)
		}
		row.SetAttr("data-id", r.ID)
		row.Action = s.open(r)
		rows = append(rows, row)
	}
	fillRows(s.screen, s.list, rows)
}

func (s *routesScreen) OnHide() {
	s.list.Clear()
	s.title.SetText("")
}

func (s *routesScreen) open(r *commute.Route) func() error {
	return func() error {
		return s.app.nav.Display(RouteID, r.ID, screen.NavPush)
	}
}

func (s *routesScreen) add() error {
	c, ok := s.screen.Payload().(*commute.Commute)
	if !ok || c == nil {
		return nil
	}
	return s.app.prompt("Route name", func(name string) error {
		c.AddRoute(name)
		err := s.app.Save()
		s.screen.Refresh()
		return err
	})
}
