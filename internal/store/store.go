package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/atomicstack/time-travel/internal/commute"
	"github.com/atomicstack/time-travel/internal/logging"
	"github.com/atomicstack/time-travel/internal/logging/events"
	_ "modernc.org/sqlite"
)

// DataKey names the row holding the serialised data tree.
const DataKey = "time-travel-data"

// Store persists the whole data tree as one value.
type Store interface {
	Load(ctx context.Context) (*commute.Data, error)
	Save(ctx context.Context, data *commute.Data) error
	Close() error
}

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// SQLite keeps the data tree in a single-row key/value table.
type SQLite struct {
	db *sql.DB
}

// Open creates or opens the database at path. ":memory:" is accepted.
func Open(path string) (*SQLite, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// a second connection to ":memory:" would see an empty database
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Load returns the stored tree. A missing row yields an empty tree; a
// malformed value is logged and also yields an empty tree.
func (s *SQLite) Load(ctx context.Context) (*commute.Data, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, DataKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		events.Store.Load(DataKey, 0)
		return commute.Empty(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", DataKey, err)
	}
	return decode(raw), nil
}

// Save replaces the stored tree.
func (s *SQLite) Save(ctx context.Context, data *commute.Data) error {
	raw, err := encode(data)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		DataKey, raw)
	if err != nil {
		return fmt.Errorf("save %s: %w", DataKey, err)
	}
	events.Store.Save(DataKey, len(raw))
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

// Memory is an in-process store used by tests and when no database path is
// configured. Values round-trip through JSON so callers never share state
// with the store.
type Memory struct {
	mu  sync.Mutex
	raw string
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(context.Context) (*commute.Data, error) {
	m.mu.Lock()
	raw := m.raw
	m.mu.Unlock()
	if raw == "" {
		events.Store.Load(DataKey, 0)
		return commute.Empty(), nil
	}
	return decode(raw), nil
}

func (m *Memory) Save(_ context.Context, data *commute.Data) error {
	raw, err := encode(data)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.raw = raw
	m.mu.Unlock()
	events.Store.Save(DataKey, len(raw))
	return nil
}

// SetRaw replaces the stored value verbatim.
func (m *Memory) SetRaw(raw string) {
	m.mu.Lock()
	m.raw = raw
	m.mu.Unlock()
}

func (m *Memory) Close() error { return nil }

func encode(data *commute.Data) (string, error) {
	if data == nil {
		data = commute.Empty()
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", DataKey, err)
	}
	return string(b), nil
}

func decode(raw string) *commute.Data {
	var data commute.Data
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		logging.Error(fmt.Errorf("decode %s: %w", DataKey, err))
		events.Store.Corrupt(DataKey, err)
		return commute.Empty()
	}
	out := commute.Normalize(&data)
	events.Store.Load(DataKey, len(out.Commutes))
	return out
}
