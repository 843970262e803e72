package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/visionboard/internal/board"
)

type jsonExport struct {
	ExportedAt string `json:"exported_at"`
	Count      int    `json:"count"`
	Stats      stats  `json:"stats"`
	board.Snapshot
}

type stats struct {
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
	Average    int `json:"average"`
}

func ToJSON(snap board.Snapshot, path string) error {
	st := board.ComputeStats(snap.Progress)
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(snap.Goals) + len(snap.Journal) + len(snap.Exercises) + len(snap.Progress),
		Stats:      stats{Completed: st.Completed, InProgress: st.InProgress, Average: st.Average},
		Snapshot:   snap,
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
