package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/visionboard/internal/board"
)

type journalModel struct {
	board  *board.Board
	width  int
	height int

	entries []board.JournalEntry
	cursor  int

	formActive bool
	form       *huh.Form

	formTitle      *string
	formMood       *string
	formContent    *string
	formWins       *string
	formChallenges *string
	formTomorrow   *string
}

func newJournalModel(b *board.Board) journalModel {
	title, mood, content, wins, challenges, tomorrow := "", "", "", "", "", ""
	return journalModel{
		board:          b,
		formTitle:      &title,
		formMood:       &mood,
		formContent:    &content,
		formWins:       &wins,
		formChallenges: &challenges,
		formTomorrow:   &tomorrow,
	}
}

func (j *journalModel) setSize(w, h int) {
	j.width = w
	j.height = h
}

type journalDataMsg struct {
	entries []board.JournalEntry
}

func (j journalModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return journalDataMsg{entries: j.board.Journal()}
	}
}

func (j journalModel) update(msg tea.Msg) (journalModel, tea.Cmd) {
	if j.formActive && j.form != nil {
		return j.updateForm(msg)
	}

	switch msg := msg.(type) {
	case journalDataMsg:
		j.entries = msg.entries
		j.cursor = clampCursor(j.cursor, len(j.entries))
		return j, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if j.cursor > 0 {
				j.cursor--
			}
		case key.Matches(msg, keys.Down):
			if j.cursor < len(j.entries)-1 {
				j.cursor++
			}
		case key.Matches(msg, keys.New):
			return j.showForm()
		case key.Matches(msg, keys.Delete):
			if len(j.entries) > 0 {
				err := j.board.RemoveJournal(j.entries[j.cursor].ID)
				return j, afterMutation(err, j.refresh())
			}
		}
	}
	return j, nil
}

func (j journalModel) showForm() (journalModel, tea.Cmd) {
	*j.formTitle = ""
	*j.formMood = ""
	*j.formContent = ""
	*j.formWins = ""
	*j.formChallenges = ""
	*j.formTomorrow = ""

	moodOptions := []huh.Option[string]{huh.NewOption("How are you feeling?", "")}
	for _, m := range board.Moods {
		moodOptions = append(moodOptions, huh.NewOption(board.MoodEmoji(m)+" "+m, m))
	}

	j.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Entry title").Value(j.formTitle),
			huh.NewSelect[string]().Title("Mood").Options(moodOptions...).Value(j.formMood),
			huh.NewText().Title("What happened today?").Value(j.formContent),
		).Title("Entry"),
		huh.NewGroup(
			huh.NewText().Title("Today's wins 🎉").Description("One per line").Value(j.formWins),
			huh.NewText().Title("Challenges I faced").Value(j.formChallenges),
			huh.NewText().Title("Tomorrow I will...").Value(j.formTomorrow),
		).Title("Reflection"),
	).WithShowHelp(true).WithShowErrors(true)

	j.formActive = true
	return j, j.form.Init()
}

func (j journalModel) updateForm(msg tea.Msg) (journalModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			j.formActive = false
			j.form = nil
			return j, nil
		}
	}

	form, cmd := j.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		j.form = f
	}

	if j.form.State == huh.StateCompleted {
		j.formActive = false
		_, err := j.board.AddJournal(board.JournalInput{
			Title:      *j.formTitle,
			Mood:       *j.formMood,
			Content:    *j.formContent,
			Wins:       *j.formWins,
			Challenges: *j.formChallenges,
			Tomorrow:   *j.formTomorrow,
		})
		if err == nil {
			j.cursor = 0
		}
		return j, afterMutation(err, j.refresh())
	}

	return j, cmd
}

func (j journalModel) view() string {
	w := j.width - 4

	if j.formActive && j.form != nil {
		title := titleStyle.Render("Daily Journal")
		sub := subtitleStyle.Render("Reflect on your day and track your progress")
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, sub, "", j.form.View()),
		)
	}

	title := titleStyle.Render("Daily Journal")
	if len(j.entries) == 0 {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No entries yet. Press n to write one."),
		))
	}

	var items []string
	for _, e := range j.entries {
		items = append(items, fmt.Sprintf("%s %s  %s", board.MoodEmoji(e.Mood), truncate(e.Title, 28), mutedStyle.Render(e.Date)))
	}

	list := lipgloss.JoinVertical(lipgloss.Left, renderItems(j.cursor, items)...)
	detail := renderJournalEntry(j.entries[j.cursor], w/2-4)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(w/2).Render(list),
		activePanelStyle.Width(w/2-4).Render(detail),
	)

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		body,
		"",
		mutedStyle.Render("  n: new  d: delete  e: export"),
	))
}

func renderJournalEntry(e board.JournalEntry, w int) string {
	wrap := lipgloss.NewStyle().Width(w)
	rows := []string{
		titleStyle.Render(e.Title) + "  " + board.MoodEmoji(e.Mood),
		mutedStyle.Render(e.Date),
		"",
		wrap.Render(e.Content),
	}
	if len(e.WinsList) > 0 {
		rows = append(rows, "", successStyle.Render("🎉 Wins:"))
		for _, win := range e.WinsList {
			rows = append(rows, wrap.Render("  • "+win))
		}
	}
	if e.Challenges != "" {
		rows = append(rows, "", warningStyle.Render("💪 Challenges:"), wrap.Render(e.Challenges))
	}
	if e.Tomorrow != "" {
		rows = append(rows, "", highlightStyle.Render("🎯 Tomorrow:"), wrap.Render(e.Tomorrow))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
