package screens

import (
	"github.com/atomicstack/time-travel/internal/commute"
	"github.com/atomicstack/time-travel/internal/panel"
	"github.com/atomicstack/time-travel/internal/screen"
)

type commutesScreen struct {
	app    *App
	screen *screen.Screen
	list   *panel.Element
}

func (s *commutesScreen) bind(sc *screen.Screen) {
	s.screen = sc
	s.list = sc.Query("#commutes")
	sc.Query(".commute-add").Action = s.add
}

func (s *commutesScreen) OnShow(any) {
	a := s.app
	a.data.SortCommutes()
	rows := make([]*panel.Element, 0, len(a.data.Commutes))
	for _, c := range a.data.Commutes {
		row, err := a.doc.Fill(templateCommute, map[string]any{"name": c.Name})
		if err != nil {
			panic(err)
		}
		row.SetAttr("data-id", c.ID)
		row.Action = s.open(c)
		rows = append(rows, row)
	}
	fillRows(s.screen, s.list, rows)
}

func (s *commutesScreen) OnHide() {
	s.list.Clear()
}

func (s *commutesScreen) open(c *commute.Commute) func() error {
	return func() error {
		return s.app.nav.Display(RoutesID, c, screen.NavPush)
	}
}

func (s *commutesScreen) add() error {
	return s.app.prompt("Commute name", func(name string) error {
		s.app.data.AddCommute(name)
		err := s.app.Save()
		s.screen.Refresh()
		return err
	})
}
