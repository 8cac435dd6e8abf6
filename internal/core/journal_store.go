package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"patterns/internal/journal"
	"patterns/internal/log"
)

// JournalStore abstracts transcript persistence for testability.
type JournalStore interface {
	Load() ([]journal.Entry, error)
	Save([]journal.Entry) error
	RemoveScenario([]journal.Entry, journal.Scenario) []journal.Entry
}

// FileJournalStore implements JournalStore using a JSON file.
type FileJournalStore struct {
	File string
}

func NewFileJournalStore(file string) *FileJournalStore {
	return &FileJournalStore{File: file}
}

// Load returns the saved entries. A missing or empty file yields no entries.
func (fs *FileJournalStore) Load() ([]journal.Entry, error) {
	var entries []journal.Entry
	f, err := os.Open(fs.File)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open journal %s: %w", fs.File, err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&entries); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode journal %s: %w", fs.File, err)
	}
	return entries, nil
}

func (fs *FileJournalStore) Save(entries []journal.Entry) error {
	f, err := os.Create(fs.File)
	if err != nil {
		return fmt.Errorf("create journal %s: %w", fs.File, err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode journal %s: %w", fs.File, err)
	}
	log.Info(log.CatJournal, "saved", "file", fs.File, "entries", len(entries))
	return nil
}

func (fs *FileJournalStore) RemoveScenario(entries []journal.Entry, s journal.Scenario) []journal.Entry {
	return removeScenario(entries, s)
}

// InMemoryJournalStore implements JournalStore for testing (no disk I/O).
type InMemoryJournalStore struct {
	mu      sync.Mutex
	entries []journal.Entry
}

func NewInMemoryJournalStore() *InMemoryJournalStore {
	return &InMemoryJournalStore{}
}

func (ms *InMemoryJournalStore) Load() ([]journal.Entry, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	// Return a copy to avoid mutation
	cpy := make([]journal.Entry, len(ms.entries))
	copy(cpy, ms.entries)
	return cpy, nil
}

func (ms *InMemoryJournalStore) Save(entries []journal.Entry) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	cpy := make([]journal.Entry, len(entries))
	copy(cpy, entries)
	ms.entries = cpy
	return nil
}

func (ms *InMemoryJournalStore) RemoveScenario(entries []journal.Entry, s journal.Scenario) []journal.Entry {
	return removeScenario(entries, s)
}

func removeScenario(entries []journal.Entry, s journal.Scenario) []journal.Entry {
	var kept []journal.Entry
	for _, e := range entries {
		if e.Scenario != s {
			kept = append(kept, e)
		}
	}
	return kept
}

// MergeRun replaces the entries of every scenario that appears in run and
// keeps entries of scenarios the run did not touch.
func MergeRun(store JournalStore, run []journal.Entry) error {
	existing, err := store.Load()
	if err != nil {
		return err
	}
	touched := make(map[journal.Scenario]bool)
	for _, e := range run {
		touched[e.Scenario] = true
	}
	for _, s := range journal.Scenarios() {
		if touched[s] {
			existing = store.RemoveScenario(existing, s)
		}
	}
	return store.Save(append(existing, run...))
}
