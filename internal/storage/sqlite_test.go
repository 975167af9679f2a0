package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	hash := HashPattern(">>><<")

	saved, err := store.SaveRun(Run{
		PatternHash: hash,
		PatternLen:  5,
		Strategy:    "cycle",
		Pieces:      2022,
		Height:      3068,
		Simulated:   62,
		CycleStart:  17,
		CycleLength: 35,
		CycleGain:   53,
		Verified:    true,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if saved.ID == 0 {
		t.Error("SaveRun() should assign an ID")
	}
	if saved.RunID == "" {
		t.Error("SaveRun() should assign a RunID")
	}

	got, err := store.RunByID(saved.RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for saved run")
	}
	if got.Height != 3068 || got.Pieces != 2022 || got.Strategy != "cycle" {
		t.Errorf("RunByID() = %+v, fields do not match", got)
	}
	if got.CycleStart != 17 || got.CycleLength != 35 || got.CycleGain != 53 {
		t.Errorf("cycle fields = %d/%d/%d, expected 17/35/53", got.CycleStart, got.CycleLength, got.CycleGain)
	}
	if !got.Verified {
		t.Error("Verified flag was not stored")
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RunByID("no-such-run")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("RunByID() = %+v, expected nil", got)
	}
}

func TestStoreRunsForPattern(t *testing.T) {
	store := openTestStore(t)
	a := HashPattern("<<>>")
	b := HashPattern("><")

	for _, pieces := range []int64{10, 2022, 500} {
		if _, err := store.SaveRun(Run{PatternHash: a, PatternLen: 4, Strategy: "brute", Pieces: pieces, Height: pieces}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun(Run{PatternHash: b, PatternLen: 2, Strategy: "cycle", Pieces: 1, Height: 1}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.RunsForPattern(a, 10)
	if err != nil {
		t.Fatalf("RunsForPattern() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	// Should be sorted by pieces descending
	if runs[0].Pieces != 2022 || runs[1].Pieces != 500 || runs[2].Pieces != 10 {
		t.Errorf("Runs not in expected order: %v", runs)
	}

	limited, err := store.RunsForPattern(a, 2)
	if err != nil {
		t.Fatalf("RunsForPattern() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 runs with limit, got %d", len(limited))
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := int64(1); i <= 5; i++ {
		if _, err := store.SaveRun(Run{PatternHash: HashPattern("<"), PatternLen: 1, Strategy: "cycle", Pieces: i, Height: i}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	// Same timestamp resolution: newest insert first via id
	if runs[0].Pieces != 5 {
		t.Errorf("Expected newest run first, got pieces=%d", runs[0].Pieces)
	}
}

func TestStorePatternStats(t *testing.T) {
	store := openTestStore(t)
	hash := HashPattern(">>")

	stats, err := store.PatternStats(hash)
	if err != nil {
		t.Fatalf("PatternStats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.MaxHeight != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveRun(Run{PatternHash: hash, PatternLen: 2, Strategy: "cycle", Pieces: 2022, Height: 3000})
	store.SaveRun(Run{PatternHash: hash, PatternLen: 2, Strategy: "cycle", Pieces: 10, Height: 17})

	stats, err = store.PatternStats(hash)
	if err != nil {
		t.Fatalf("PatternStats() failed: %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("Runs = %d, expected 2", stats.Runs)
	}
	if stats.MaxPieces != 2022 || stats.MaxHeight != 3000 {
		t.Errorf("Max = %d/%d, expected 2022/3000", stats.MaxPieces, stats.MaxHeight)
	}
	if stats.LastRun.IsZero() {
		t.Error("LastRun should be set")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)
	keep := HashPattern("<")
	drop := HashPattern(">")

	store.SaveRun(Run{PatternHash: keep, PatternLen: 1, Strategy: "cycle", Pieces: 1, Height: 1})
	store.SaveRun(Run{PatternHash: drop, PatternLen: 1, Strategy: "cycle", Pieces: 1, Height: 1})

	if err := store.ClearRuns(drop); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if runs, _ := store.RunsForPattern(drop, 10); len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}
	if runs, _ := store.RunsForPattern(keep, 10); len(runs) != 1 {
		t.Errorf("Other pattern should keep its run, got %d", len(runs))
	}
}

func TestHashPattern(t *testing.T) {
	if HashPattern("<>") != HashPattern("<>") {
		t.Error("HashPattern should be stable")
	}
	if HashPattern("<>") == HashPattern("><") {
		t.Error("different patterns should hash differently")
	}
	if len(HashPattern("<")) != 16 {
		t.Errorf("HashPattern length = %d, expected 16", len(HashPattern("<")))
	}
}
