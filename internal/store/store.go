// Package store persists the user profile in a small SQLite-backed
// key/value table. Values are JSON blobs keyed by string; the profile
// lives under a single well-known key. A missing or unparseable value
// reads back as absent, never as an error the caller must handle
// differently.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	gojson "github.com/goccy/go-json"
	_ "modernc.org/sqlite"

	"github.com/vanderheijden86/edugram/pkg/debug"
	"github.com/vanderheijden86/edugram/pkg/model"
)

// ProfileKey is the key the signed-in profile is stored under.
const ProfileKey = "edugram-user"

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
`

// Store is a SQLite-backed key/value store. Safe for use from a single
// goroutine; the app only touches it from the event loop and startup.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the store at the given path. Parent
// directories are created as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Put writes a raw JSON value under key, replacing any existing value.
func (s *Store) Put(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(value), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

// Get reads the raw value under key. The second return is false when
// the key is absent.
func (s *Store) Get(key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	return []byte(value), true, nil
}

// Delete removes the value under key. Deleting an absent key is a
// no-op.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// SaveProfile persists the profile as JSON under ProfileKey.
func (s *Store) SaveProfile(p model.Profile) error {
	data, err := gojson.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	return s.Put(ProfileKey, data)
}

// LoadProfile reads the persisted profile. It returns ok=false when no
// profile is stored or the stored value fails to decode; a corrupt
// record is treated as a signed-out state, not an error.
func (s *Store) LoadProfile() (model.Profile, bool, error) {
	data, found, err := s.Get(ProfileKey)
	if err != nil {
		return model.Profile{}, false, err
	}
	if !found {
		return model.Profile{}, false, nil
	}

	var p model.Profile
	if err := gojson.Unmarshal(data, &p); err != nil {
		debug.Log("store: discarding unparseable profile record: %v", err)
		return model.Profile{}, false, nil
	}
	if p.ID == "" || p.Name == "" {
		debug.Log("store: discarding profile record missing id or name")
		return model.Profile{}, false, nil
	}
	return p, true, nil
}

// ClearProfile removes the persisted profile (sign out).
func (s *Store) ClearProfile() error {
	return s.Delete(ProfileKey)
}
