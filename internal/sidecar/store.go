package sidecar

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

const (
	keyMetadata  = "metadata"
	keyFavorites = "favorites"
)

// Store persists the sidecar as serialized records in a small SQLite
// key-value table: one row for the metadata structure, one for favorites.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

// Open opens or creates the sidecar database at the given path.
func Open(path string, log zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating sidecar directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening sidecar database: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating sidecar database: %w", err)
	}

	return &Store{db: db, log: log}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := db.Exec(schema)
	return err
}

// Load reads the metadata record. Missing or malformed data resets to an
// empty state and logs; corruption of the sidecar must never take the
// organizer down.
func (s *Store) Load() State {
	state := NewState()

	raw, ok := s.get(keyMetadata)
	if !ok {
		return state
	}
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		s.log.Warn().Err(err).Msg("sidecar metadata is malformed, starting empty")
		return NewState()
	}
	if state.Folders == nil {
		state.Folders = make(map[string]Folder)
	}
	if state.Presets == nil {
		state.Presets = make(map[string]PresetMeta)
	}
	return state
}

// Save writes the full metadata structure back, overwriting prior content.
func (s *Store) Save(state State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding sidecar metadata: %w", err)
	}
	return s.put(keyMetadata, string(data))
}

// LoadFavorites reads the favorites record in stored (insertion) order.
// Malformed data resets to empty, same contract as Load.
func (s *Store) LoadFavorites() []string {
	raw, ok := s.get(keyFavorites)
	if !ok {
		return nil
	}
	var favorites []string
	if err := json.Unmarshal([]byte(raw), &favorites); err != nil {
		s.log.Warn().Err(err).Msg("favorites record is malformed, starting empty")
		return nil
	}
	return favorites
}

// SaveFavorites writes the full favorites set back.
func (s *Store) SaveFavorites(favorites []string) error {
	if favorites == nil {
		favorites = []string{}
	}
	data, err := json.Marshal(favorites)
	if err != nil {
		return fmt.Errorf("encoding favorites: %w", err)
	}
	return s.put(keyFavorites, string(data))
}

func (s *Store) get(key string) (string, bool) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("reading sidecar record failed, treating as empty")
		return "", false
	}
	return value, true
}

func (s *Store) put(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("writing sidecar record %q: %w", key, err)
	}
	return nil
}
