package main

import (
	"fmt"
	"time"

	"github.com/sadopc/visionboard/internal/board"
	"github.com/sadopc/visionboard/internal/export"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// --- export ---

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all records to a JSON or CSV file",
		Long: `Export all records to a JSON or CSV file.

Examples:
  visionboard export
  visionboard export --format csv --out board.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			out, _ := cmd.Flags().GetString("out")

			write := export.ToJSON
			switch format {
			case "json":
			case "csv":
				write = export.ToCSV
			default:
				return fmt.Errorf("unknown format %q: use json or csv", format)
			}
			if out == "" {
				out = fmt.Sprintf("visionboard-export-%s.%s", time.Now().Format(time.DateOnly), format)
			}

			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			if err := write(e.board.Snapshot(), out); err != nil {
				return err
			}
			e.log.Info("exported board", zap.String("path", out), zap.String("format", format))
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", out)
			return nil
		},
	}
	cmd.Flags().String("format", "json", "export format (json or csv)")
	cmd.Flags().String("out", "", "output file (default visionboard-export-DATE.FORMAT)")
	return cmd
}

// --- stats ---

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print record counts and the progress overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			w := cmd.OutOrStdout()
			snap := e.board.Snapshot()
			fmt.Fprintf(w, "Vision goals:     %d\n", len(snap.Goals))
			fmt.Fprintf(w, "Journal entries:  %d\n", len(snap.Journal))
			fmt.Fprintf(w, "Workouts:         %d\n", len(snap.Exercises))
			fmt.Fprintf(w, "Progress goals:   %d\n", len(snap.Progress))
			fmt.Fprintln(w)

			st := board.ComputeStats(snap.Progress)
			fmt.Fprintf(w, "Completed: %d  In progress: %d  Average: %d%%\n", st.Completed, st.InProgress, st.Average)
			for _, it := range snap.Progress {
				fmt.Fprintf(w, "  %s %-28s %3d%%  %s\n", it.Status.Icon(), it.Goal, it.Progress, it.LastUpdated)
			}

			slots, err := e.store.ListSlots()
			if err != nil {
				return err
			}
			if len(slots) > 0 {
				fmt.Fprintln(w)
				fmt.Fprintln(w, "Last saved:")
				for _, sl := range slots {
					fmt.Fprintf(w, "  %-16s %s\n", sl.Key, sl.UpdatedAt.Local().Format(time.DateTime))
				}
			}
			return nil
		},
	}
}

// --- reset ---

var resetKinds = map[string]string{
	"goals":     board.SlotGoals,
	"journal":   board.SlotJournal,
	"exercises": board.SlotExercises,
	"progress":  board.SlotProgress,
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset KIND...",
		Short: "Clear stored records so they start over from defaults",
		Long: `Clear stored records so they start over from defaults.

KIND is one of goals, journal, exercises, progress or all. A cleared
progress list comes back with the four starter goals.

Examples:
  visionboard reset journal
  visionboard reset all`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var keys []string
			for _, a := range args {
				if a == "all" {
					keys = []string{board.SlotGoals, board.SlotJournal, board.SlotExercises, board.SlotProgress}
					break
				}
				k, ok := resetKinds[a]
				if !ok {
					return fmt.Errorf("unknown kind %q: use goals, journal, exercises, progress or all", a)
				}
				keys = append(keys, k)
			}

			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			for _, k := range keys {
				if err := e.store.DeleteSlot(k); err != nil {
					return err
				}
				e.log.Info("slot cleared", zap.String("slot", k))
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s\n", k)
			}
			return nil
		},
	}
}
