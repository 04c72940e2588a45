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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveResult("4x4", 20, 45000); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if _, err := store.SaveResult("4x4", 14, 32000); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if _, err := store.SaveResult("4x4", 18, 60000); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	// Different grid
	if _, err := store.SaveResult("2x2", 2, 4000); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	results, err := store.TopResults("4x4", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	// Fastest first
	if results[0].DurationMs != 32000 {
		t.Errorf("Expected fastest result 32000ms, got %d", results[0].DurationMs)
	}
	if results[1].DurationMs != 45000 {
		t.Errorf("Expected second result 45000ms, got %d", results[1].DurationMs)
	}
	if results[2].DurationMs != 60000 {
		t.Errorf("Expected third result 60000ms, got %d", results[2].DurationMs)
	}

	small, err := store.TopResults("2x2", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(small) != 1 {
		t.Errorf("Expected 1 result for 2x2, got %d", len(small))
	}
}

func TestStoreTopResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveResult("4x4", 15+i, int64((i+1)*10000))
	}

	results, err := store.TopResults("4x4", 3)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 results with limit, got %d", len(results))
	}

	if results[0].DurationMs != 10000 || results[1].DurationMs != 20000 || results[2].DurationMs != 30000 {
		t.Errorf("Results not in expected order: %v", results)
	}
}

func TestStoreBestTimeAndMoves(t *testing.T) {
	store := openTestStore(t)

	// Empty grid
	best, err := store.BestTime("4x4")
	if err != nil {
		t.Fatalf("BestTime() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 best time for empty grid, got %d", best)
	}

	store.SaveResult("4x4", 20, 45000)
	store.SaveResult("4x4", 14, 32000)
	store.SaveResult("4x4", 25, 90000)

	best, err = store.BestTime("4x4")
	if err != nil {
		t.Fatalf("BestTime() failed: %v", err)
	}
	if best != 32000 {
		t.Errorf("Expected best time 32000, got %d", best)
	}

	moves, err := store.BestMoves("4x4")
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if moves != 14 {
		t.Errorf("Expected best moves 14, got %d", moves)
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult("4x4", 20, 45000)
	store.SaveResult("4x4", 15, 40000)
	store.SaveResult("6x6", 40, 120000)

	if err := store.ClearResults("4x4"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	cleared, _ := store.TopResults("4x4", 10)
	if len(cleared) != 0 {
		t.Errorf("Expected 0 results for 4x4 after clear, got %d", len(cleared))
	}

	kept, _ := store.TopResults("6x6", 10)
	if len(kept) != 1 {
		t.Error("6x6 results should not be affected by clearing 4x4")
	}
}

func TestStoreAllResults(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveResult("4x4", 15+i, int64((i+1)*1000))
	}

	results, err := store.AllResults("4x4")
	if err != nil {
		t.Fatalf("AllResults() failed: %v", err)
	}

	if len(results) != 20 {
		t.Errorf("Expected 20 results, got %d", len(results))
	}
}

func TestStoreGridStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult("4x4", 20, 40000)
	store.SaveResult("4x4", 14, 60000)

	stats, err := store.GetGridStats("4x4")
	if err != nil {
		t.Fatalf("GetGridStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.BestTimeMs != 40000 {
		t.Errorf("BestTimeMs = %d, expected 40000", stats.BestTimeMs)
	}
	if stats.BestMoves != 14 {
		t.Errorf("BestMoves = %d, expected 14", stats.BestMoves)
	}
	if stats.AvgTimeMs != 50000 {
		t.Errorf("AvgTimeMs = %f, expected 50000", stats.AvgTimeMs)
	}

	// Stats for a grid never played
	empty, err := store.GetGridStats("6x6")
	if err != nil {
		t.Fatalf("GetGridStats() on empty grid failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.BestTimeMs != 0 {
		t.Errorf("empty grid stats = %+v, expected zeros", empty)
	}
}

func TestStoreAllGridStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult("2x2", 2, 3000)
	store.SaveResult("4x4", 18, 50000)
	store.SaveResult("4x4", 16, 45000)

	stats, err := store.GetAllGridStats()
	if err != nil {
		t.Fatalf("GetAllGridStats() failed: %v", err)
	}

	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 grids, got %d", len(stats))
	}
	if stats["4x4"].GamesCount != 2 {
		t.Errorf("4x4 GamesCount = %d, expected 2", stats["4x4"].GamesCount)
	}
	if stats["2x2"].BestTimeMs != 3000 {
		t.Errorf("2x2 BestTimeMs = %d, expected 3000", stats["2x2"].BestTimeMs)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
