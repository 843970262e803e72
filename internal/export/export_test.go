package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sadopc/visionboard/internal/board"
)

func sampleData() board.Snapshot {
	return board.Snapshot{
		Goals: []board.VisionGoal{
			{ID: 3, Title: "Run a marathon", Category: "fitness", Description: "42k", TargetDate: "2026-10-01", ImageURL: board.PlaceholderImage("fitness"), Date: "2026-01-15"},
		},
		Journal: []board.JournalEntry{
			{ID: 2, Title: "Day one", Mood: "great", Content: "Good start", Wins: "a\nb", WinsList: []string{"a", "b"}, Challenges: "sleep", Tomorrow: "rest", Date: "2026-01-15"},
		},
		Exercises: []board.Exercise{
			{ID: 1, Type: "running", Duration: "45 mins", Calories: "400", Date: "2026-01-14"},
		},
		Progress: []board.ProgressItem{
			{ID: 1, Goal: "Fitness Goals", Progress: 100, Status: board.StatusCompleted, LastUpdated: "2026-01-15"},
			{ID: 2, Goal: "Career Growth", Progress: 40, Status: board.StatusInProgress, LastUpdated: "2026-01-15"},
		},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return records
}

// ============================================================
// CSV
// ============================================================

func TestToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.csv")
	if err := ToCSV(sampleData(), path); err != nil {
		t.Fatalf("ToCSV: %v", err)
	}

	records := readCSV(t, path)
	// header + 1 goal + 1 journal + 1 exercise + 2 progress
	if len(records) != 6 {
		t.Fatalf("expected 6 rows, got %d", len(records))
	}

	expectedHeader := []string{"Kind", "ID", "Date", "Title", "Detail", "Notes", "Image", "Wins", "Challenges", "Tomorrow"}
	if len(records[0]) != len(expectedHeader) {
		t.Fatalf("header has %d columns, want %d", len(records[0]), len(expectedHeader))
	}
	for i, h := range expectedHeader {
		if records[0][i] != h {
			t.Fatalf("header[%d] = %q, want %q", i, records[0][i], h)
		}
	}

	goal := records[1]
	if goal[0] != "goal" || goal[1] != "3" || goal[3] != "Run a marathon" {
		t.Fatalf("unexpected goal row: %v", goal)
	}
	if goal[4] != "fitness by 2026-10-01" {
		t.Fatalf("goal detail = %q", goal[4])
	}

	if goal[6] != board.PlaceholderImage("fitness") {
		t.Fatalf("goal image = %q", goal[6])
	}

	journal := records[2]
	if journal[7] != "a\nb" || journal[8] != "sleep" || journal[9] != "rest" {
		t.Fatalf("unexpected journal row: %v", journal)
	}

	exercise := records[3]
	if exercise[3] != board.ExerciseLabel("running") {
		t.Fatalf("exercise title = %q", exercise[3])
	}
	if exercise[4] != "45 mins, 400 cal" {
		t.Fatalf("exercise detail = %q", exercise[4])
	}
	if len(exercise) != len(expectedHeader) || exercise[6] != "" {
		t.Fatalf("exercise row should pad unused columns: %v", exercise)
	}

	progress := records[5]
	if progress[4] != "40% in-progress" {
		t.Fatalf("progress detail = %q", progress[4])
	}
}

func TestToCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := ToCSV(board.Snapshot{}, path); err != nil {
		t.Fatal(err)
	}
	if records := readCSV(t, path); len(records) != 1 {
		t.Fatalf("expected 1 row (header only), got %d", len(records))
	}
}

func TestToCSVBadPath(t *testing.T) {
	if err := ToCSV(board.Snapshot{}, "/nonexistent/dir/file.csv"); err == nil {
		t.Fatal("expected error for bad path")
	}
}

func TestToCSVSpecialCharacters(t *testing.T) {
	snap := board.Snapshot{
		Exercises: []board.Exercise{
			{ID: 1, Type: "gym", Duration: "1h", Notes: "notes with \"quotes\", commas\nand lines"},
		},
	}
	path := filepath.Join(t.TempDir(), "special.csv")
	if err := ToCSV(snap, path); err != nil {
		t.Fatal(err)
	}

	records := readCSV(t, path)
	if records[1][5] != "notes with \"quotes\", commas\nand lines" {
		t.Fatalf("notes mangled: %q", records[1][5])
	}
}

// ============================================================
// JSON
// ============================================================

func TestToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.json")
	if err := ToJSON(sampleData(), path); err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var result jsonExport
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if result.Count != 5 {
		t.Fatalf("count = %d, want 5", result.Count)
	}
	if result.Stats.Completed != 1 || result.Stats.InProgress != 1 || result.Stats.Average != 70 {
		t.Fatalf("unexpected stats: %+v", result.Stats)
	}
	if len(result.Goals) != 1 || result.Goals[0].ImageURL != board.PlaceholderImage("fitness") {
		t.Fatalf("goals not exported: %+v", result.Goals)
	}
	if len(result.Journal) != 1 || len(result.Journal[0].WinsList) != 2 {
		t.Fatalf("journal not exported: %+v", result.Journal)
	}
	if _, err := time.Parse(time.RFC3339, result.ExportedAt); err != nil {
		t.Fatalf("exported_at is not valid RFC3339: %q", result.ExportedAt)
	}

	// Record kinds use the same keys as the storage slots.
	for _, key := range []string{board.SlotGoals, board.SlotJournal, board.SlotExercises, board.SlotProgress} {
		if !strings.Contains(string(data), `"`+key+`"`) {
			t.Fatalf("missing %q key in export", key)
		}
	}
}

func TestToJSONEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := ToJSON(board.Snapshot{}, path); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	var result jsonExport
	json.Unmarshal(data, &result)

	if result.Count != 0 {
		t.Fatalf("count = %d, want 0", result.Count)
	}
	if result.Stats.Average != 0 {
		t.Fatalf("average = %d, want 0", result.Stats.Average)
	}
}

func TestToJSONBadPath(t *testing.T) {
	if err := ToJSON(board.Snapshot{}, "/nonexistent/dir/file.json"); err == nil {
		t.Fatal("expected error for bad path")
	}
}

func TestToJSONPrettyPrinted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pretty.json")
	ToJSON(board.Snapshot{}, path)

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "\n  ") {
		t.Fatal("JSON should be indented")
	}
}
