package scores

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists scores to a local SQLite database, one row per
// finished game. Load reads the all-time maximum.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and if needed creates) the database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open score database: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS high_scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		score INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create high_scores table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Load returns the best recorded score, zero for a fresh database.
func (s *SQLiteStore) Load() (int, error) {
	var best int
	err := s.db.QueryRow(`SELECT COALESCE(MAX(score), 0) FROM high_scores`).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("failed to load high score: %w", err)
	}
	return best, nil
}

// Save records one finished game's score.
func (s *SQLiteStore) Save(score int) error {
	if _, err := s.db.Exec(`INSERT INTO high_scores (score) VALUES (?)`, score); err != nil {
		return fmt.Errorf("failed to save score: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
