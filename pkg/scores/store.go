// Package scores abstracts high-score persistence. The default store
// keeps the score in memory only, so it resets each run; the SQLite
// store is opt-in for players who want the number to survive.
package scores

// Store loads and saves the high score.
type Store interface {
	Load() (int, error)
	Save(score int) error
	Close() error
}

// MemoryStore holds the high score for the lifetime of the process.
type MemoryStore struct {
	best int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the best score seen this run.
func (m *MemoryStore) Load() (int, error) {
	return m.best, nil
}

// Save keeps score if it beats the current best.
func (m *MemoryStore) Save(score int) error {
	if score > m.best {
		m.best = score
	}
	return nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}
