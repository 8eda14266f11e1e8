// Package storage provides SQLite-based persistence for finished sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the session journal.
type Store struct {
	db *sql.DB
}

// SessionRecord is one finished run of a scene.
type SessionRecord struct {
	ID        int64
	SceneID   string
	FPS       int
	Ticks     int
	Keys      int
	Frames    int
	Duration  time.Duration
	EndReason string // "quit", "stream-closed", "render-error", "cancelled"
	CreatedAt time.Time
}

// SceneSummary aggregates the journal for one scene.
type SceneSummary struct {
	SceneID  string
	Sessions int
	Frames   int
	Longest  time.Duration
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scene_id TEXT NOT NULL,
			fps INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			key_count INTEGER NOT NULL DEFAULT 0,
			frames INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_scene_id ON sessions(scene_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(rec SessionRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions (scene_id, fps, ticks, key_count, frames, duration_ms, end_reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.SceneID, rec.FPS, rec.Ticks, rec.Keys, rec.Frames,
		rec.Duration.Milliseconds(), rec.EndReason,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions returns the latest sessions, newest first.
// An empty sceneID matches every scene.
func (s *Store) RecentSessions(sceneID string, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, scene_id, fps, ticks, key_count, frames, duration_ms, end_reason, created_at
		 FROM sessions
		 WHERE ? = '' OR scene_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		sceneID, sceneID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var r SessionRecord
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.SceneID, &r.FPS, &r.Ticks, &r.Keys, &r.Frames,
			&durationMS, &r.EndReason, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// SessionByID retrieves one session. Returns nil if it does not exist.
func (s *Store) SessionByID(id int64) (*SessionRecord, error) {
	var r SessionRecord
	var durationMS int64
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, scene_id, fps, ticks, key_count, frames, duration_ms, end_reason, created_at
		 FROM sessions
		 WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.SceneID, &r.FPS, &r.Ticks, &r.Keys, &r.Frames,
		&durationMS, &r.EndReason, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}

	r.Duration = time.Duration(durationMS) * time.Millisecond
	r.CreatedAt = parseTime(createdAt)
	return &r, nil
}

// Summaries aggregates sessions per scene, ordered by scene ID.
func (s *Store) Summaries() ([]SceneSummary, error) {
	rows, err := s.db.Query(
		`SELECT scene_id, COUNT(*), COALESCE(SUM(frames), 0), COALESCE(MAX(duration_ms), 0)
		 FROM sessions
		 GROUP BY scene_id
		 ORDER BY scene_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query summaries: %w", err)
	}
	defer rows.Close()

	var out []SceneSummary
	for rows.Next() {
		var sum SceneSummary
		var longestMS int64
		if err := rows.Scan(&sum.SceneID, &sum.Sessions, &sum.Frames, &longestMS); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sum.Longest = time.Duration(longestMS) * time.Millisecond
		out = append(out, sum)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}

// ClearSessions deletes all sessions for the given scene.
func (s *Store) ClearSessions(sceneID string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE scene_id = ?", sceneID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// parseTime handles DATETIME values returned either as time.Time or string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
