package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

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

func TestStoreOpenCreatesParentDirs(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	// Longer routes rank higher
	for _, moves := range []int{8, 3, 15} {
		if _, err := store.SaveResult("02-boulder", moves); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	// Different level
	if _, err := store.SaveResult("01-straightaway", 4); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	results, err := store.TopResults("02-boulder", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	// Should be sorted by moves descending
	if results[0].Moves != 15 || results[1].Moves != 8 || results[2].Moves != 3 {
		t.Errorf("Results not in expected order: %v", results)
	}

	other, err := store.TopResults("01-straightaway", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 result for the other level, got %d", len(other))
	}
}

func TestStoreTopResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveResult("test", (i+1)*10)
	}

	results, err := store.TopResults("test", 3)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 results with limit, got %d", len(results))
	}
	if results[0].Moves != 50 || results[1].Moves != 40 || results[2].Moves != 30 {
		t.Errorf("Results not in expected order: %v", results)
	}
}

func TestStoreBestMoves(t *testing.T) {
	store := openTestStore(t)

	// No results yet
	best, err := store.BestMoves("empty")
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for level with no results, got %d", best)
	}

	store.SaveResult("test", 7)
	store.SaveResult("test", 21)
	store.SaveResult("test", 12)

	best, err = store.BestMoves("test")
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if best != 21 {
		t.Errorf("Expected best of 21, got %d", best)
	}
}

func TestStoreAllResults(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveResult("test", i)
	}

	results, err := store.AllResults("test")
	if err != nil {
		t.Fatalf("AllResults() failed: %v", err)
	}

	if len(results) != 20 {
		t.Errorf("Expected 20 results, got %d", len(results))
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult("keep", 5)
	store.SaveResult("wipe", 5)
	store.SaveResult("wipe", 9)

	if err := store.ClearResults("wipe"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	wiped, _ := store.AllResults("wipe")
	if len(wiped) != 0 {
		t.Errorf("Expected 0 results after clear, got %d", len(wiped))
	}

	kept, _ := store.AllResults("keep")
	if len(kept) != 1 {
		t.Error("Clearing one level should not affect another")
	}
}

func TestStoreLevelStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult("test", 10)
	store.SaveResult("test", 20)

	stats, err := store.GetLevelStats("test")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}

	if stats.Solves != 2 {
		t.Errorf("Expected 2 solves, got %d", stats.Solves)
	}
	if stats.BestMoves != 20 {
		t.Errorf("Expected best of 20, got %d", stats.BestMoves)
	}
	if stats.AvgMoves != 15 {
		t.Errorf("Expected average of 15, got %f", stats.AvgMoves)
	}

	// Stats for an unplayed level are empty, not an error
	empty, err := store.GetLevelStats("unplayed")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if empty.Solves != 0 || empty.BestMoves != 0 {
		t.Errorf("Expected empty stats, got %+v", empty)
	}
}

func TestStoreAllLevelsStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult("a", 5)
	store.SaveResult("a", 9)
	store.SaveResult("b", 3)

	stats, err := store.GetAllLevelsStats()
	if err != nil {
		t.Fatalf("GetAllLevelsStats() failed: %v", err)
	}

	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 levels, got %d", len(stats))
	}
	if stats["a"].Solves != 2 || stats["a"].BestMoves != 9 {
		t.Errorf("Unexpected stats for a: %+v", stats["a"])
	}
	if stats["b"].Solves != 1 || stats["b"].BestMoves != 3 {
		t.Errorf("Unexpected stats for b: %+v", stats["b"])
	}
}
