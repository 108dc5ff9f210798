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

func save(t *testing.T, store *Store, level string, score int) {
	t.Helper()
	if _, err := store.SaveScore(ScoreEntry{LevelID: level, Player: "tester", Score: score}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
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

	save(t, store, "standard", 100)
	save(t, store, "standard", 50)
	save(t, store, "standard", 200)
	save(t, store, "gaps", 500)

	scores, err := store.TopScores("standard", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}
	if scores[0].Player != "tester" || scores[0].LevelID != "standard" {
		t.Errorf("Entry fields not stored: %+v", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	gaps, err := store.TopScores("gaps", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(gaps) != 1 {
		t.Errorf("Expected 1 gaps score, got %d", len(gaps))
	}
}

func TestStoreClearedFlag(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore(ScoreEntry{LevelID: "gaps", Score: 70, Cleared: true}); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveScore(ScoreEntry{LevelID: "gaps", Score: 30}); err != nil {
		t.Fatal(err)
	}

	scores, err := store.TopScores("gaps", 10)
	if err != nil {
		t.Fatal(err)
	}
	if !scores[0].Cleared || scores[1].Cleared {
		t.Errorf("Cleared flags = %v, %v; expected true, false", scores[0].Cleared, scores[1].Cleared)
	}
}

func TestStoreRejectsMissingLevel(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(ScoreEntry{Score: 10}); err == nil {
		t.Error("SaveScore without a level should fail")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		save(t, store, "test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, err := store.TopScores("test", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 5 {
		t.Errorf("Default limit should cover 5 scores, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("standard")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for an unplayed level, got %d", high)
	}

	save(t, store, "standard", 100)
	save(t, store, "standard", 300)
	save(t, store, "standard", 200)

	high, err = store.HighScore("standard")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "standard", 100)
	save(t, store, "standard", 200)
	save(t, store, "gaps", 300)

	if err := store.ClearScores("standard"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	standard, _ := store.TopScores("standard", 10)
	if len(standard) != 0 {
		t.Errorf("Expected 0 standard scores after clear, got %d", len(standard))
	}

	gaps, _ := store.TopScores("gaps", 10)
	if len(gaps) != 1 {
		t.Errorf("Gaps scores should not be affected by clearing standard")
	}
}

func TestStoreLevelStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.LevelStats("standard")
	if err != nil {
		t.Fatalf("LevelStats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Unplayed level stats = %+v", empty)
	}

	save(t, store, "standard", 100)
	save(t, store, "standard", 300)
	if _, err := store.SaveScore(ScoreEntry{LevelID: "standard", Score: 200, Cleared: true}); err != nil {
		t.Fatal(err)
	}
	save(t, store, "gaps", 40)

	stats, err := store.LevelStats("standard")
	if err != nil {
		t.Fatalf("LevelStats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.Clears != 1 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("LevelStats() = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.AllLevelStats()
	if err != nil {
		t.Fatalf("AllLevelStats() failed: %v", err)
	}
	if len(all) != 2 || all["gaps"].Runs != 1 || all["standard"].HighScore != 300 {
		t.Errorf("AllLevelStats() = %v", all)
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
