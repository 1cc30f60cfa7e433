package library

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/peralt/cerealstyle-mcp/internal/style"
)

// Store is the saved-skeleton library. It lives outside the transformation
// core: the core stays stateless, the library just lets a host park a
// finished skeleton under a name and pull it back in a later session.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// SavedSkeleton is one library row.
type SavedSkeleton struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Category  style.Category       `json:"category"`
	Skeleton  style.PromptSkeleton `json:"skeleton"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, err
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		return nil, err
	}

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS skeletons (
		id TEXT PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		category TEXT NOT NULL,
		payload TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_skeletons_category ON skeletons(category);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save upserts a skeleton under a name. The id is stable across updates.
func (s *Store) Save(name string, skeleton style.PromptSkeleton) (SavedSkeleton, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" {
		return SavedSkeleton{}, fmt.Errorf("skeleton name cannot be empty")
	}

	payload, err := json.Marshal(skeleton)
	if err != nil {
		return SavedSkeleton{}, fmt.Errorf("marshal skeleton: %w", err)
	}

	var id string
	err = s.db.QueryRow("SELECT id FROM skeletons WHERE name = ?", name).Scan(&id)
	switch err {
	case nil:
		_, err = s.db.Exec(
			"UPDATE skeletons SET category = ?, payload = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
			string(skeleton.Category), string(payload), id)
	case sql.ErrNoRows:
		id = uuid.NewString()
		_, err = s.db.Exec(
			"INSERT INTO skeletons (id, name, category, payload) VALUES (?, ?, ?, ?)",
			id, name, string(skeleton.Category), string(payload))
	}
	if err != nil {
		return SavedSkeleton{}, fmt.Errorf("save skeleton %q: %w", name, err)
	}

	return s.getLocked(name)
}

func (s *Store) Get(name string) (SavedSkeleton, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getLocked(name)
}

func (s *Store) getLocked(name string) (SavedSkeleton, error) {
	row := s.db.QueryRow(
		"SELECT id, name, category, payload, created_at, updated_at FROM skeletons WHERE name = ?", name)

	var saved SavedSkeleton
	var category, payload string
	if err := row.Scan(&saved.ID, &saved.Name, &category, &payload, &saved.CreatedAt, &saved.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return SavedSkeleton{}, fmt.Errorf("skeleton not found: %s", name)
		}
		return SavedSkeleton{}, err
	}

	saved.Category = style.Category(category)
	if err := json.Unmarshal([]byte(payload), &saved.Skeleton); err != nil {
		return SavedSkeleton{}, fmt.Errorf("decode skeleton %q: %w", name, err)
	}
	return saved, nil
}

// List returns saved skeletons ordered by name. A non-empty pattern filters
// names with doublestar glob matching, e.g. "mascot-*".
func (s *Store) List(pattern string) ([]SavedSkeleton, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		"SELECT id, name, category, payload, created_at, updated_at FROM skeletons ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SavedSkeleton
	for rows.Next() {
		var saved SavedSkeleton
		var category, payload string
		if err := rows.Scan(&saved.ID, &saved.Name, &category, &payload, &saved.CreatedAt, &saved.UpdatedAt); err != nil {
			return nil, err
		}
		if pattern != "" {
			ok, err := doublestar.Match(pattern, saved.Name)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
			}
			if !ok {
				continue
			}
		}
		saved.Category = style.Category(category)
		if err := json.Unmarshal([]byte(payload), &saved.Skeleton); err != nil {
			return nil, fmt.Errorf("decode skeleton %q: %w", saved.Name, err)
		}
		out = append(out, saved)
	}
	return out, rows.Err()
}

func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.Exec("DELETE FROM skeletons WHERE name = ?", name)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("skeleton not found: %s", name)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
