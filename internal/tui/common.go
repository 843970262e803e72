package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/visionboard/internal/board"
)

// viewState represents the currently active tab.
type viewState int

const (
	viewVision viewState = iota
	viewJournal
	viewExercise
	viewProgress
)

var viewNames = []string{"🎯 Vision", "📝 Journal", "💪 Exercise", "📊 Progress"}

// viewKeys are the values stored in the last_tab setting.
var viewKeys = []string{"vision", "journal", "exercise", "progress"}

func viewFromKey(k string) viewState {
	for i, v := range viewKeys {
		if v == k {
			return viewState(i)
		}
	}
	return viewVision
}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

type exportDoneMsg struct {
	path string
}

func statusCmd(text string, isError bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text, isError: isError}
	}
}

// afterMutation reloads the list and surfaces storage failures. Blank
// required fields are ignored without a message.
func afterMutation(err error, refresh tea.Cmd) tea.Cmd {
	if err == nil || errors.Is(err, board.ErrIncomplete) {
		return refresh
	}
	return tea.Batch(refresh, statusCmd(fmt.Sprintf("Save error: %v", err), true))
}

// --- Helpers ---

func clampCursor(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	return max(0, cursor)
}

func truncate(s string, w int) string {
	if w <= 0 || lipgloss.Width(s) <= w {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > w {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}

// firstLine keeps list rows to a single line.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}

func progressBar(pct, width int) string {
	if width < 1 {
		width = 1
	}
	filled := max(0, min(100, pct)) * width / 100
	return progressFillStyle.Render(strings.Repeat("█", filled)) +
		progressTrackStyle.Render(strings.Repeat("░", width-filled))
}

func renderItems(cursor int, items []string) []string {
	rows := make([]string, len(items))
	for i, it := range items {
		if i == cursor {
			rows[i] = selectedItemStyle.Render("> " + it)
		} else {
			rows[i] = normalItemStyle.Render("  " + it)
		}
	}
	return rows
}
