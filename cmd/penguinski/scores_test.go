package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/penguin-ski/internal/ski"
	"github.com/vovakirdan/penguin-ski/internal/storage"
)

func openScoresStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPrintRun(t *testing.T) {
	store := openScoresStore(t)

	runID, _, err := store.SaveRun(storage.RunResult{
		Level:    "hard",
		Score:    1234,
		Distance: 5678,
		Elapsed:  95 * time.Second,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	var out bytes.Buffer
	if err := printRun(&out, store, runID); err != nil {
		t.Fatalf("printRun() failed: %v", err)
	}
	for _, want := range []string{runID, "Hard", "1234", "5678", "1:35", "Best run"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}

	err = printRun(&out, store, uuid.NewString())
	if !errors.Is(err, errRunNotFound) {
		t.Errorf("unknown run: err = %v, expected errRunNotFound", err)
	}
}

func TestClearLevel(t *testing.T) {
	store := openScoresStore(t)

	for _, r := range []storage.RunResult{
		{Level: "easy", Score: 10, Distance: 100},
		{Level: "easy", Score: 20, Distance: 200},
		{Level: "medium", Score: 30, Distance: 300},
	} {
		if _, _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	var out bytes.Buffer
	if err := clearLevel(&out, store, ski.LevelEasy); err != nil {
		t.Fatalf("clearLevel() failed: %v", err)
	}
	if !strings.Contains(out.String(), "Cleared 2 runs") {
		t.Errorf("output = %q", out.String())
	}

	if runs, _ := store.TopRuns("easy", 10); len(runs) != 0 {
		t.Errorf("easy still has %d runs", len(runs))
	}
	if runs, _ := store.TopRuns("medium", 10); len(runs) != 1 {
		t.Errorf("medium has %d runs, expected 1 untouched", len(runs))
	}
}
