package core

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"patterns/internal/journal"
)

func sampleEntries() []journal.Entry {
	now := time.Now().Truncate(time.Second).UTC()
	return []journal.Entry{
		{Scenario: journal.ScenarioObserver, Op: "notify", Detail: "Customer1: 20%", At: now},
		{Scenario: journal.ScenarioCommand, Op: "write", Detail: "Hola", At: now.Add(time.Second)},
		{Scenario: journal.ScenarioCommand, Op: "undo", Detail: "", At: now.Add(2 * time.Second)},
	}
}

func TestInMemoryJournalStore_Basic(t *testing.T) {
	store := NewInMemoryJournalStore()
	entries := sampleEntries()

	// Save and Load
	if err := store.Save(entries); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(entries, loaded) {
		t.Errorf("Loaded entries do not match saved entries.\nGot:  %+v\nWant: %+v", loaded, entries)
	}

	// Mutating the loaded copy must not leak into the store
	loaded[0].Detail = "mutated"
	again, _ := store.Load()
	if again[0].Detail != "Customer1: 20%" {
		t.Errorf("store was mutated through Load result: %+v", again[0])
	}

	remaining := store.RemoveScenario(entries, journal.ScenarioCommand)
	if len(remaining) != 1 || remaining[0].Scenario != journal.ScenarioObserver {
		t.Errorf("RemoveScenario did not remove the command entries: %+v", remaining)
	}
}

func TestFileJournalStore_Basic(t *testing.T) {
	tmpDir := t.TempDir()
	journalFile := filepath.Join(tmpDir, "journal.json")
	store := NewFileJournalStore(journalFile)
	entries := sampleEntries()

	// Loading before anything was saved yields nothing
	empty, err := store.Load()
	if err != nil {
		t.Fatalf("Load of missing file failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected no entries, got %+v", empty)
	}

	if err := store.Save(entries); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(entries, loaded) {
		t.Errorf("Loaded entries do not match saved entries.\nGot:  %+v\nWant: %+v", loaded, entries)
	}

	remaining := store.RemoveScenario(loaded, journal.ScenarioObserver)
	if err := store.Save(remaining); err != nil {
		t.Fatalf("Save after removal failed: %v", err)
	}
	loaded2, err := store.Load()
	if err != nil {
		t.Fatalf("Load after removal failed: %v", err)
	}
	if !reflect.DeepEqual(remaining, loaded2) {
		t.Errorf("Loaded entries after removal do not match.\nGot:  %+v\nWant: %+v", loaded2, remaining)
	}

	if _, err := os.Stat(journalFile); err != nil {
		t.Errorf("Expected journal file to exist, but got error: %v", err)
	}
}

func TestFileJournalStore_EmptyAndCorruptFiles(t *testing.T) {
	tmpDir := t.TempDir()

	emptyFile := filepath.Join(tmpDir, "empty.json")
	if err := os.WriteFile(emptyFile, nil, 0644); err != nil {
		t.Fatal(err)
	}
	entries, err := NewFileJournalStore(emptyFile).Load()
	if err != nil || len(entries) != 0 {
		t.Errorf("empty file: got %+v, %v", entries, err)
	}

	corrupt := filepath.Join(tmpDir, "corrupt.json")
	if err := os.WriteFile(corrupt, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileJournalStore(corrupt).Load(); err == nil {
		t.Error("expected decode error for corrupt journal")
	}

	if err := NewFileJournalStore(filepath.Join(tmpDir, "no", "such", "dir.json")).Save(sampleEntries()); err == nil {
		t.Error("expected error saving into a missing directory")
	}
}
