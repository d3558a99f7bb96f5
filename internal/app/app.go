package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/time-travel/internal/history"
	"github.com/atomicstack/time-travel/internal/schedule"
	"github.com/atomicstack/time-travel/internal/screen"
	"github.com/atomicstack/time-travel/internal/screens"
	"github.com/atomicstack/time-travel/internal/store"
	"github.com/atomicstack/time-travel/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	// DBPath is the SQLite database file. Empty keeps data in memory.
	DBPath     string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	TimerLimit time.Duration
	Tick       time.Duration
}

// Instance is a fully wired application ready to hand to Bubble Tea.
type Instance struct {
	Model   *ui.Model
	Screens *screens.App
	Session *history.Session
}

// New loads the commute tree from st and installs the screens, showing the
// commute list.
func New(ctx context.Context, cfg Config, st store.Store) (*Instance, error) {
	data, err := st.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load data: %w", err)
	}
	session := history.NewSession()
	nav := screen.NewNavigator(screen.NewRegistry(), session)
	sched := schedule.New(nil)
	model := ui.NewModel(nav, session, sched, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		Tick:       cfg.Tick,
	})
	application, err := screens.Install(screens.Config{
		Context:    ctx,
		Document:   screens.NewDocument(),
		Navigator:  nav,
		Data:       data,
		Store:      st,
		Prompter:   model,
		Scheduler:  sched,
		Back:       model.Back,
		TimerLimit: cfg.TimerLimit,
		Tick:       cfg.Tick,
	})
	if err != nil {
		return nil, fmt.Errorf("install screens: %w", err)
	}
	if err := application.Start(); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	return &Instance{Model: model, Screens: application, Session: session}, nil
}

// OpenStore opens the SQLite database at path, or an in-memory store when
// path is empty.
func OpenStore(path string) (store.Store, error) {
	if path == "" {
		return store.NewMemory(), nil
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	return st, nil
}

// Run bootstraps and executes the Bubble Tea program. The data tree is saved
// once more on exit.
func Run(cfg Config) (err error) {
	ctx := context.Background()
	st, err := OpenStore(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		err = errors.Join(err, st.Close())
	}()
	inst, err := New(ctx, cfg, st)
	if err != nil {
		return err
	}
	program := tea.NewProgram(inst.Model, tea.WithAltScreen())
	_, runErr := program.Run()
	if errors.Is(runErr, tea.ErrProgramKilled) {
		runErr = nil
	}
	if runErr == nil {
		runErr = inst.Model.Err()
	}
	if saveErr := inst.Screens.Save(); saveErr != nil {
		return errors.Join(runErr, fmt.Errorf("save data: %w", saveErr))
	}
	return runErr
}
