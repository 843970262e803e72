package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/visionboard/internal/board"
	"github.com/sadopc/visionboard/internal/export"
	"github.com/sadopc/visionboard/internal/store"
	"go.uber.org/zap"
)

// App is the root Bubble Tea model.
type App struct {
	store  *store.Store
	board  *board.Board
	log    *zap.Logger
	width  int
	height int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int
	exportDir     string

	vision   visionModel
	journal  journalModel
	exercise exerciseModel
	progress progressModel

	help   help.Model
	status string
	errMsg bool
	quote  string
}

func NewApp(s *store.Store, b *board.Board, log *zap.Logger) App {
	h := help.New()
	h.ShowAll = false

	last, err := s.GetSetting("last_tab", viewKeys[viewVision])
	if err != nil {
		log.Warn("read last tab", zap.Error(err))
	}
	home, _ := os.UserHomeDir()

	return App{
		store:      s,
		board:      b,
		log:        log,
		activeView: viewFromKey(last),
		exportDir:  home,
		vision:     newVisionModel(b),
		journal:    newJournalModel(b),
		exercise:   newExerciseModel(b),
		progress:   newProgressModel(b),
		help:       h,
		quote:      board.RandomQuote(),
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.vision.refresh(),
		a.journal.refresh(),
		a.exercise.refresh(),
		a.progress.refresh(),
	)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.vision.setSize(a.width, contentHeight)
		a.journal.setSize(a.width, contentHeight)
		a.exercise.setSize(a.width, contentHeight)
		a.progress.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// A child view capturing input (form) gets keys first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			return a.switchView(viewVision)
		case key.Matches(msg, keys.Tab2):
			return a.switchView(viewJournal)
		case key.Matches(msg, keys.Tab3):
			return a.switchView(viewExercise)
		case key.Matches(msg, keys.Tab4):
			return a.switchView(viewProgress)
		case key.Matches(msg, keys.Tab):
			return a.switchView((a.activeView + 1) % viewState(len(viewNames)))
		}

	case statusMsg:
		a.status = msg.text
		a.errMsg = msg.isError
		if msg.isError {
			a.log.Error(msg.text)
		}
		return a, nil

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.errMsg = false
		a.exportPicking = false
		return a, nil

	// Data messages go to their owner regardless of the active tab.
	case visionDataMsg:
		var cmd tea.Cmd
		a.vision, cmd = a.vision.update(msg)
		return a, cmd
	case journalDataMsg:
		var cmd tea.Cmd
		a.journal, cmd = a.journal.update(msg)
		return a, cmd
	case exerciseDataMsg:
		var cmd tea.Cmd
		a.exercise, cmd = a.exercise.update(msg)
		return a, cmd
	case progressDataMsg:
		var cmd tea.Cmd
		a.progress, cmd = a.progress.update(msg)
		return a, cmd
	}

	return a.updateActiveView(msg)
}

func (a App) switchView(v viewState) (tea.Model, tea.Cmd) {
	a.activeView = v
	if err := a.store.SetSetting("last_tab", viewKeys[v]); err != nil {
		a.log.Warn("save last tab", zap.Error(err))
	}
	return a, a.refreshCurrentView()
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewVision:
		a.vision, cmd = a.vision.update(msg)
	case viewJournal:
		a.journal, cmd = a.journal.update(msg)
	case viewExercise:
		a.exercise, cmd = a.exercise.update(msg)
	case viewProgress:
		a.progress, cmd = a.progress.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewVision:
		return a.vision.formActive
	case viewJournal:
		return a.journal.formActive
	case viewExercise:
		return a.exercise.formActive
	case viewProgress:
		return a.progress.formActive
	}
	return false
}

func (a App) refreshCurrentView() tea.Cmd {
	switch a.activeView {
	case viewVision:
		return a.vision.refresh()
	case viewJournal:
		return a.journal.refresh()
	case viewExercise:
		return a.exercise.refresh()
	case viewProgress:
		return a.progress.refresh()
	}
	return nil
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewVision:
		content = a.vision.view()
	case viewJournal:
		content = a.journal.view()
	case viewExercise:
		content = a.exercise.view()
	case viewProgress:
		content = a.progress.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(a.height-headerHeight-footerHeight, 1)

	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("My Vision Board 2026")
	gap := max(a.width-lipgloss.Width(title)-lipgloss.Width(tabRow)-4, 1)
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		style := mutedStyle
		if a.errMsg {
			style = errorStyle
		}
		status = style.Render(" " + a.status)
	}

	left := footerStyle.Render(helpView)
	gap := max(a.width-lipgloss.Width(left)-lipgloss.Width(status)-2, 1)
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	quote := quoteStyle.Render(fmt.Sprintf(" %q", a.quote))
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, status),
		quote,
	)
}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export Format")
	formats := []string{"CSV", "JSON"}
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	rows = append(rows, renderItems(a.exportCursor, formats)...)
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < 1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	return func() tea.Msg {
		snap := a.board.Snapshot()
		dateStr := time.Now().Format(time.DateOnly)

		var path string
		if format == 0 {
			path = filepath.Join(a.exportDir, fmt.Sprintf("visionboard-export-%s.csv", dateStr))
			if err := export.ToCSV(snap, path); err != nil {
				return statusMsg{text: fmt.Sprintf("CSV error: %v", err), isError: true}
			}
		} else {
			path = filepath.Join(a.exportDir, fmt.Sprintf("visionboard-export-%s.json", dateStr))
			if err := export.ToJSON(snap, path); err != nil {
				return statusMsg{text: fmt.Sprintf("JSON error: %v", err), isError: true}
			}
		}

		a.log.Info("exported board", zap.String("path", path))
		return exportDoneMsg{path: path}
	}
}
