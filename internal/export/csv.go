package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/sadopc/visionboard/internal/board"
)

// header lists the shared columns first. Image applies to goals and the last
// three columns to journal entries; other kinds leave them empty.
var header = []string{"Kind", "ID", "Date", "Title", "Detail", "Notes", "Image", "Wins", "Challenges", "Tomorrow"}

// ToCSV flattens every record kind into one table, one row per record.
func ToCSV(snap board.Snapshot, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(header); err != nil {
		return err
	}

	for _, row := range rows(snap) {
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func rows(snap board.Snapshot) [][]string {
	var out [][]string
	id := func(v int64) string { return strconv.FormatInt(v, 10) }
	row := func(cells ...string) []string {
		r := make([]string, len(header))
		copy(r, cells)
		return r
	}

	for _, g := range snap.Goals {
		detail := g.Category
		if g.TargetDate != "" {
			detail += " by " + g.TargetDate
		}
		out = append(out, row("goal", id(g.ID), g.Date, g.Title, detail, g.Description, g.ImageURL))
	}
	for _, e := range snap.Journal {
		out = append(out, row("journal", id(e.ID), e.Date, e.Title, e.Mood, e.Content, "", e.Wins, e.Challenges, e.Tomorrow))
	}
	for _, e := range snap.Exercises {
		detail := e.Duration
		if e.Calories != "" {
			detail += ", " + e.Calories + " cal"
		}
		out = append(out, row("exercise", id(e.ID), e.Date, board.ExerciseLabel(e.Type), detail, e.Notes))
	}
	for _, p := range snap.Progress {
		detail := fmt.Sprintf("%d%% %s", p.Progress, p.Status)
		out = append(out, row("progress", id(p.ID), p.LastUpdated, p.Goal, detail))
	}
	return out
}
