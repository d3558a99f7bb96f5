package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/atomicstack/time-travel/internal/commute"
	"github.com/atomicstack/time-travel/internal/logging"
)

func seed() *commute.Data {
	d := commute.Empty()
	c := d.AddCommute("work")
	r := c.AddRoute("bus")
	start := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	r.AddSample(start, start.Add(25*time.Minute))
	return d
}

func TestSQLiteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "time-travel.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()

	empty, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if len(empty.Commutes) != 0 || empty.Version != commute.Version {
		t.Fatalf("expected empty tree, got %+v", empty)
	}

	want := seed()
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("second save: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Commutes) != 1 || got.Commutes[0].Name != "work" {
		t.Fatalf("unexpected commutes %+v", got.Commutes)
	}
	r := got.Commutes[0].Routes[0]
	if r.ID != want.Commutes[0].Routes[0].ID {
		t.Fatalf("expected route id preserved")
	}
	if r.MedianTime != (25 * time.Minute).Milliseconds() || len(r.Samples) != 1 {
		t.Fatalf("unexpected route %+v", r)
	}
}

func TestSQLiteCorruptValueYieldsEmptyTree(t *testing.T) {
	logging.Configure(filepath.Join(t.TempDir(), "log.txt"))
	defer logging.Configure("")

	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()
	if _, err := s.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)`, DataKey, "{not json"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("expected corrupt data to be tolerated, got %v", err)
	}
	if got == nil || len(got.Commutes) != 0 {
		t.Fatalf("expected empty tree, got %+v", got)
	}
}

func TestMemoryStoreIsolatesCallers(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	d := seed()
	if err := m.Save(ctx, d); err != nil {
		t.Fatalf("save: %v", err)
	}
	d.Commutes[0].Name = "changed"
	got, _ := m.Load(ctx)
	if got.Commutes[0].Name != "work" {
		t.Fatalf("expected stored copy to be independent, got %q", got.Commutes[0].Name)
	}

	logging.Configure(filepath.Join(t.TempDir(), "log.txt"))
	defer logging.Configure("")
	m.SetRaw("[]")
	got, err := m.Load(ctx)
	if err != nil || len(got.Commutes) != 0 {
		t.Fatalf("expected empty tree for malformed value, got %+v, %v", got, err)
	}
}
