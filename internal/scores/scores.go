// Package scores keeps the leaderboard of completed journeys.
// Fewer turns rank higher; ties go to whoever finished first.
package scores

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// Entry is one completed journey.
type Entry struct {
	Name       string    `json:"name"`
	Turns      int       `json:"turns"`
	Seconds    int       `json:"seconds"` // Wall time from the first roll screen to the last tile
	FinishedAt time.Time `json:"finished_at"`
}

// Table is the leaderboard. It is safe for concurrent use.
type Table struct {
	mu      sync.RWMutex
	Entries []Entry `json:"entries"`
}

// New creates an empty Table.
func New() *Table {
	return &Table{Entries: make([]Entry, 0)}
}

// Add inserts an entry in rank order.
func (t *Table) Add(e Entry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Entries = append(t.Entries, e)
	sort.SliceStable(t.Entries, func(i, j int) bool {
		a, b := t.Entries[i], t.Entries[j]
		if a.Turns != b.Turns {
			return a.Turns < b.Turns
		}
		return a.FinishedAt.Before(b.FinishedAt)
	})
}

// Top returns up to n of the best entries. n <= 0 returns all of them.
func (t *Table) Top(n int) []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if n <= 0 || n > len(t.Entries) {
		n = len(t.Entries)
	}
	out := make([]Entry, n)
	copy(out, t.Entries[:n])
	return out
}

// Len returns the number of entries.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.Entries)
}

// Save writes the table to a file, creating its directory if needed.
func (t *Table) Save(path string) error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize scores: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create scores directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write scores file: %w", err)
	}

	return nil
}

// Load reads a table from a file. A missing file yields an empty table.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(), nil
		}
		return nil, fmt.Errorf("failed to read scores file: %w", err)
	}

	t := New()
	if err := json.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to parse scores: %w", err)
	}

	return t, nil
}
