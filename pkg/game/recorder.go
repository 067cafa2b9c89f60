package game

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Snapshot is a per-tick serializable view of the game, written by the
// recorder and replayed by cmd/replay.
type Snapshot struct {
	Body      []Point `json:"body"`
	Direction string  `json:"direction"`
	Food      Food    `json:"food"`
	Score     int     `json:"score"`
	HighScore int     `json:"highScore"`
	Level     string  `json:"level"`
	Paused    bool    `json:"paused"`
	GameOver  bool    `json:"gameOver"`
}

// StepRecord is one line of a session record file.
type StepRecord struct {
	Step  int64    `json:"step"`
	State Snapshot `json:"state"`
}

// TakeSnapshot copies the current state into a Snapshot.
func (g *Game) TakeSnapshot() Snapshot {
	body := make([]Point, len(g.Snake.Body()))
	copy(body, g.Snake.Body())
	return Snapshot{
		Body:      body,
		Direction: g.Snake.Direction().String(),
		Food:      *g.Food,
		Score:     g.Score,
		HighScore: g.HighScore,
		Level:     g.LevelLabel(),
		Paused:    g.State() == StatePaused,
		GameOver:  g.State() == StateGameOver,
	}
}

// Recorder handles asynchronous logging of game steps to a JSONL file.
// Records are queued on a buffered channel and written by a background
// goroutine so the tick loop never blocks on disk.
type Recorder struct {
	file    *os.File
	writer  *bufio.Writer
	records chan StepRecord
	wg      sync.WaitGroup
	mu      sync.Mutex
	closed  bool
}

// NewRecorder creates a recorder writing to dir.
// Filename format: game_{sessionID}_{timestamp}.jsonl
func NewRecorder(dir, sessionID string) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create records dir: %w", err)
	}

	filename := fmt.Sprintf("game_%s_%d.jsonl", sessionID, time.Now().Unix())
	f, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return nil, fmt.Errorf("failed to create record file: %w", err)
	}

	r := &Recorder{
		file:    f,
		writer:  bufio.NewWriter(f),
		records: make(chan StepRecord, 1000),
	}

	r.wg.Add(1)
	go r.writeLoop()

	return r, nil
}

// Path returns the record file path.
func (r *Recorder) Path() string {
	return r.file.Name()
}

// Record queues one step. Non-blocking: when the channel is full the
// frame is dropped rather than stalling the game loop.
func (r *Recorder) Record(rec StepRecord) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()

	select {
	case r.records <- rec:
	default:
	}
}

// Close flushes the buffer and closes the file. Safe to call twice.
func (r *Recorder) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.mu.Unlock()

	close(r.records)
	r.wg.Wait()
	r.file.Close()
}

func (r *Recorder) writeLoop() {
	defer r.wg.Done()

	encoder := json.NewEncoder(r.writer)
	for rec := range r.records {
		if err := encoder.Encode(rec); err != nil {
			fmt.Fprintf(os.Stderr, "error recording frame: %v\n", err)
		}
	}
	r.writer.Flush()
}
