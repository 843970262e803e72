package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/visionboard/internal/board"
	"github.com/sadopc/visionboard/internal/config"
	"github.com/sadopc/visionboard/internal/logging"
	"github.com/sadopc/visionboard/internal/store"
	"github.com/sadopc/visionboard/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "visionboard",
		Short:         "A terminal vision board for goals, journaling, workouts and progress",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			app := tui.NewApp(e.store, e.board, e.log)
			p := tea.NewProgram(app, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run tui: %w", err)
			}
			return nil
		},
	}

	root.PersistentFlags().String("db", "", "path to the SQLite database")
	root.PersistentFlags().String("log-file", "", "path to the log file")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(newExportCmd(), newStatsCmd(), newResetCmd())
	return root
}

// env holds everything a command needs once configuration is resolved.
type env struct {
	cfg   config.Config
	log   *zap.Logger
	store *store.Store
	board *board.Board
}

func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := applyFlags(cmd, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	s, err := store.New(cfg.DBPath)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("opening database: %w", err)
	}

	b, err := board.New(s, board.WithLogger(log))
	if err != nil {
		s.Close()
		log.Sync()
		return nil, fmt.Errorf("load board: %w", err)
	}

	log.Debug("board loaded", zap.String("db", cfg.DBPath), zap.String("command", cmd.Name()))
	return &env{cfg: cfg, log: log, store: s, board: b}, nil
}

func (e *env) Close() {
	if err := e.store.Close(); err != nil {
		e.log.Warn("close database", zap.Error(err))
	}
	e.log.Sync()
}

// applyFlags overrides cfg with the persistent flags the user actually set.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	for name, dst := range map[string]*string{
		"db":        &cfg.DBPath,
		"log-file":  &cfg.LogPath,
		"log-level": &cfg.LogLevel,
	} {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetString(name)
		if err != nil {
			return fmt.Errorf("read --%s: %w", name, err)
		}
		*dst = v
	}
	return nil
}
