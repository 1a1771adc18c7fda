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

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	for i, algo := range []string{"BFS", "UCS", "A*"} {
		_, err := store.SaveRun(RunRecord{
			MapID:             "lvl02",
			Algorithm:         algo,
			Runs:              3,
			AvgTimeMS:         float64(10 - i),
			AvgMemoryBytes:    2048,
			SuccessRate:       1,
			AvgSolutionLength: 7,
			AvgStatesExplored: float64(40 - 10*i),
		})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	// Different map
	if _, err := store.SaveRun(RunRecord{MapID: "lvl01", Algorithm: "BFS", Runs: 1, SuccessRate: 1}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.RecentRuns("lvl02", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}

	// Newest first
	if runs[0].Algorithm != "A*" || runs[1].Algorithm != "UCS" {
		t.Errorf("Expected A*, UCS; got %s, %s", runs[0].Algorithm, runs[1].Algorithm)
	}
	if runs[0].AvgStatesExplored != 20 || runs[0].Runs != 3 || runs[0].AvgSolutionLength != 7 {
		t.Errorf("Fields not round-tripped: %+v", runs[0])
	}
	if runs[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}
}

func TestStoreBestRuns(t *testing.T) {
	store := openTestStore(t)

	records := []RunRecord{
		{MapID: "m", Algorithm: "DFS", AvgTimeMS: 1, SuccessRate: 0},
		{MapID: "m", Algorithm: "DFS", AvgTimeMS: 9, SuccessRate: 1},
		{MapID: "m", Algorithm: "BFS", AvgTimeMS: 5, SuccessRate: 1},
		{MapID: "m", Algorithm: "BFS", AvgTimeMS: 3, SuccessRate: 1},
		{MapID: "other", Algorithm: "BFS", AvgTimeMS: 0.1, SuccessRate: 1},
	}
	for _, r := range records {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	best, err := store.BestRuns("m")
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("Expected 2 algorithms, got %d", len(best))
	}
	if best[0].Algorithm != "BFS" || best[0].AvgTimeMS != 3 {
		t.Errorf("Expected fastest BFS row, got %+v", best[0])
	}
	// A failing run never beats a successful one.
	if best[1].Algorithm != "DFS" || best[1].AvgTimeMS != 9 {
		t.Errorf("Expected successful DFS row, got %+v", best[1])
	}
}

func TestStoreMapsAndClear(t *testing.T) {
	store := openTestStore(t)

	for _, id := range []string{"b", "a", "b"} {
		if _, err := store.SaveRun(RunRecord{MapID: id, Algorithm: "UCS"}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	maps, err := store.Maps()
	if err != nil {
		t.Fatalf("Maps() failed: %v", err)
	}
	if len(maps) != 2 || maps[0].MapID != "a" || maps[1].MapID != "b" || maps[1].Runs != 2 {
		t.Errorf("Unexpected summaries: %+v", maps)
	}

	if err := store.ClearRuns("b"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	runs, err := store.RecentRuns("b", 0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
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

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.rushhour/history.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".rushhour", "history.db")); err != nil {
		t.Errorf("Database not created under home: %v", err)
	}
}
