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
	dbPath := filepath.Join(tmpDir, "nested", "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	in := Run{
		Source:     "sim",
		Preset:     "classic",
		Difficulty: "normal",
		Seed:       42,
		Frames:     3600,
		Score:      1300,
		Stage:      2,
		Cleared:    true,
		Landings:   13,
		Launches:   20,
		Segments:   31,
		MaxX:       88.5,
		Reason:     "fell",
	}
	id, err := store.SaveRun(in)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("SaveRun() id = %d", id)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}

	got := runs[0]
	in.ID = id
	in.CreatedAt = got.CreatedAt
	if got != in {
		t.Errorf("RecentRuns()[0] = %+v\nexpected %+v", got, in)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreRecentRunsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		if _, err := store.SaveRun(Run{Source: "sim", Preset: "classic", Seed: int64(i), Score: i * 100, Stage: 1, Reason: "frames"}); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Seed != 5 || runs[2].Seed != 3 {
		t.Errorf("Runs not newest-first: %v, %v", runs[0].Seed, runs[2].Seed)
	}
}

func TestStoreTopRuns(t *testing.T) {
	store := openTestStore(t)

	save := func(preset string, score int) {
		t.Helper()
		if _, err := store.SaveRun(Run{Source: "sim", Preset: preset, Score: score, Stage: 1, Reason: "fell"}); err != nil {
			t.Fatal(err)
		}
	}
	save("classic", 100)
	save("classic", 500)
	save("classic", 300)
	save("steep", 900)

	tests := []struct {
		name   string
		preset string
		want   []int
	}{
		{"single preset", "classic", []int{500, 300, 100}},
		{"other preset", "steep", []int{900}},
		{"all presets", "", []int{900, 500, 300, 100}},
		{"unknown preset", "zen", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			runs, err := store.TopRuns(tc.preset, 10)
			if err != nil {
				t.Fatalf("TopRuns() failed: %v", err)
			}
			if len(runs) != len(tc.want) {
				t.Fatalf("Expected %d runs, got %d", len(tc.want), len(runs))
			}
			for i, score := range tc.want {
				if runs[i].Score != score {
					t.Errorf("runs[%d].Score = %d, expected %d", i, runs[i].Score, score)
				}
			}
		})
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Run{
		{Source: "sim", Preset: "classic", Score: 100, Stage: 1, Reason: "fell"},
		{Source: "sim", Preset: "classic", Score: 1100, Stage: 2, Reason: "fell"},
		{Source: "play", Preset: "zen", Score: 400, Stage: 1, Reason: "quit"},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	classic, ok := stats["classic"]
	if !ok {
		t.Fatal("missing classic stats")
	}
	if classic.Runs != 2 || classic.BestScore != 1100 || classic.AvgScore != 600 || classic.AvgStage != 1.5 {
		t.Errorf("classic stats = %+v", *classic)
	}
	if stats["zen"] == nil || stats["zen"].Runs != 1 {
		t.Errorf("zen stats = %+v", stats["zen"])
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(Run{Source: "sim", Preset: "classic", Reason: "fell"}); err != nil {
		t.Fatal(err)
	}
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}
