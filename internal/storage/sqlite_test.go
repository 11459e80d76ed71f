package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunEntry{
		{Score: 5, LivesLeft: 0, Won: false, DurationMS: 40000},
		{Score: 20, LivesLeft: 2, Won: true, DurationMS: 118000},
		{Score: 12, LivesLeft: 0, Won: false, DurationMS: 80000},
	}
	for _, e := range runs {
		if _, err := store.SaveRun(e); err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("got %d runs, expected 3", len(top))
	}
	if top[0].Score != 20 || !top[0].Won {
		t.Errorf("best run = %+v, expected the winning score 20", top[0])
	}
	if top[1].Score != 12 || top[2].Score != 5 {
		t.Errorf("runs not ordered by score: %d, %d", top[1].Score, top[2].Score)
	}
}

func TestTopRunsTieBreaksOnDuration(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(RunEntry{Score: 10, DurationMS: 90000}); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveRun(RunEntry{Score: 10, DurationMS: 60000}); err != nil {
		t.Fatal(err)
	}

	top, err := store.TopRuns(2)
	if err != nil {
		t.Fatalf("TopRuns failed: %v", err)
	}
	if top[0].DurationMS != 60000 {
		t.Errorf("faster run should rank first, got %d ms", top[0].DurationMS)
	}
}

func TestBestScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore failed: %v", err)
	}
	if best != 0 {
		t.Errorf("best score on empty store = %d, expected 0", best)
	}
}

func TestWinCount(t *testing.T) {
	store := openTestStore(t)

	entries := []RunEntry{{Score: 20, Won: true}, {Score: 3}, {Score: 20, Won: true}}
	for _, e := range entries {
		if _, err := store.SaveRun(e); err != nil {
			t.Fatal(err)
		}
	}

	wins, err := store.WinCount()
	if err != nil {
		t.Fatalf("WinCount failed: %v", err)
	}
	if wins != 2 {
		t.Errorf("win count = %d, expected 2", wins)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(RunEntry{Score: 1}); err != nil {
		t.Fatal(err)
	}
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns failed: %v", err)
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 0 {
		t.Errorf("store still has %d runs after clear", len(top))
	}
}
