package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/padtris/internal/core"
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

func mustSave(t *testing.T, s *Store, gameID string, score, lines int) {
	t.Helper()
	if _, err := s.SaveRound(core.Round{GameID: gameID, Score: score, Lines: lines}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

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

	mustSave(t, store, "tetris", 100, 3)
	mustSave(t, store, "tetris", 50, 2)
	mustSave(t, store, "tetris", 200, 4)
	mustSave(t, store, "tetris_fill", 500, 0)

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if scores[0].Lines != 4 {
		t.Errorf("Expected 4 lines on the best round, got %d", scores[0].Lines)
	}
	if scores[0].GameID != "tetris" {
		t.Errorf("GameID = %q, expected tetris", scores[0].GameID)
	}

	fill, err := store.TopScores("tetris_fill", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(fill) != 1 {
		t.Errorf("Expected 1 fill score, got %d", len(fill))
	}
}

func TestStoreSaveRejectsEmptyGameID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRound(core.Round{Score: 10}); err == nil {
		t.Error("expected an error for a round without a game id")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		mustSave(t, store, "tetris", (i+1)*100, i)
	}

	scores, err := store.TopScores("tetris", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Zero limit falls back to ten.
	scores, err = store.TopScores("tetris", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores with default limit, got %d", len(scores))
	}
}

func TestStoreTopScoresTieKeepsEarlier(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "tetris", 70, 1)
	mustSave(t, store, "tetris", 70, 2)

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].ID > scores[1].ID {
		t.Errorf("tied scores should list the earlier round first: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty mode, got %d", high)
	}

	mustSave(t, store, "tetris", 100, 1)
	mustSave(t, store, "tetris", 300, 1)
	mustSave(t, store, "tetris", 200, 1)

	high, err = store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "tetris", 100, 1)
	mustSave(t, store, "tetris", 200, 1)
	mustSave(t, store, "tetris_fill", 300, 0)

	if err := store.ClearScores("tetris"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	normal, _ := store.TopScores("tetris", 10)
	if len(normal) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(normal))
	}

	fill, _ := store.TopScores("tetris_fill", 10)
	if len(fill) != 1 {
		t.Error("Fill scores should not be affected by clearing normal mode")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("tetris")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Rounds != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("expected zero stats, got %+v", empty)
	}

	mustSave(t, store, "tetris", 10, 1)
	mustSave(t, store, "tetris", 30, 2)

	stats, err := store.Stats("tetris")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 2 {
		t.Errorf("Rounds = %d, expected 2", stats.Rounds)
	}
	if stats.HighScore != 30 {
		t.Errorf("HighScore = %d, expected 30", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, expected 20", stats.AvgScore)
	}
	if stats.TotalLines != 3 {
		t.Errorf("TotalLines = %d, expected 3", stats.TotalLines)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}
