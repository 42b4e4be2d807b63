package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
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

func TestStoreTopScores(t *testing.T) {
	store := openTemp(t)

	for _, s := range []struct {
		game   string
		preset string
		score  int
	}{
		{"breakout", "normal", 100},
		{"breakout", "hard", 50},
		{"breakout", "", 200},
		{"breakout", "easy", 200},
		{"camera-demo", "normal", 500},
	} {
		if _, err := store.SaveScore(s.game, s.preset, s.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("breakout", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	want := []struct {
		score  int
		preset string
	}{{200, "normal"}, {200, "easy"}, {100, "normal"}}
	for i, w := range want {
		if scores[i].Score != w.score || scores[i].Preset != w.preset {
			t.Errorf("scores[%d] = %d/%s, expected %d/%s", i, scores[i].Score, scores[i].Preset, w.score, w.preset)
		}
		if scores[i].GameID != "breakout" {
			t.Errorf("scores[%d].GameID = %q", i, scores[i].GameID)
		}
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTemp(t)

	high, err := store.HighScore("breakout")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	for _, s := range []int{100, 300, 200} {
		store.SaveScore("breakout", "normal", s)
	}
	high, err = store.HighScore("breakout")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTemp(t)

	store.SaveScore("breakout", "normal", 100)
	store.SaveScore("breakout", "normal", 200)
	store.SaveScore("camera-demo", "normal", 300)

	if err := store.ClearScores("breakout"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("breakout", 10); len(scores) != 0 {
		t.Errorf("Expected 0 breakout scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("camera-demo", 10); len(scores) != 1 {
		t.Error("camera-demo scores should not be affected by clearing breakout")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTemp(t)

	empty, err := store.Stats("breakout")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Rounds != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	for _, s := range []int{10, 20, 60} {
		store.SaveScore("breakout", "normal", s)
	}
	store.SaveScore("camera-demo", "normal", 5)

	st, err := store.Stats("breakout")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Rounds != 3 || st.HighScore != 60 || st.AvgScore != 30 {
		t.Errorf("stats = %+v, expected 3 rounds, high 60, avg 30", st)
	}
	if st.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 || all["camera-demo"].Rounds != 1 {
		t.Errorf("AllStats() = %v", all)
	}
}

func TestMigrateAddsPresetColumn(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "old.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	_, err = db.Exec(`CREATE TABLE scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	INSERT INTO scores (game_id, score) VALUES ('breakout', 70);`)
	db.Close()
	if err != nil {
		t.Fatal(err)
	}

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on an old database failed: %v", err)
	}
	defer store.Close()

	scores, err := store.TopScores("breakout", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Preset != "normal" || scores[0].Score != 70 {
		t.Errorf("migrated scores = %+v", scores)
	}
	if v, err := store.Version(); err != nil || v != len(migrations) {
		t.Errorf("Version() = %d, %v; expected %d", v, err, len(migrations))
	}
}

func TestReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveScore("breakout", "", 40); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	scores, err := store.TopScores("breakout", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Preset != DefaultPreset {
		t.Errorf("scores after reopen = %+v", scores)
	}
}
