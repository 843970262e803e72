package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/visionboard/internal/board"
)

type exerciseModel struct {
	board  *board.Board
	width  int
	height int

	exercises []board.Exercise
	cursor    int

	formActive bool
	form       *huh.Form

	formType     *string
	formDuration *string
	formCalories *string
	formNotes    *string
}

func newExerciseModel(b *board.Board) exerciseModel {
	typ, dur, cal, notes := "", "", "", ""
	return exerciseModel{
		board:        b,
		formType:     &typ,
		formDuration: &dur,
		formCalories: &cal,
		formNotes:    &notes,
	}
}

func (e *exerciseModel) setSize(w, h int) {
	e.width = w
	e.height = h
}

type exerciseDataMsg struct {
	exercises []board.Exercise
}

func (e exerciseModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return exerciseDataMsg{exercises: e.board.Exercises()}
	}
}

func (e exerciseModel) update(msg tea.Msg) (exerciseModel, tea.Cmd) {
	if e.formActive && e.form != nil {
		return e.updateForm(msg)
	}

	switch msg := msg.(type) {
	case exerciseDataMsg:
		e.exercises = msg.exercises
		e.cursor = clampCursor(e.cursor, len(e.exercises))
		return e, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if e.cursor > 0 {
				e.cursor--
			}
		case key.Matches(msg, keys.Down):
			if e.cursor < len(e.exercises)-1 {
				e.cursor++
			}
		case key.Matches(msg, keys.New):
			return e.showForm()
		case key.Matches(msg, keys.Delete):
			if len(e.exercises) > 0 {
				err := e.board.RemoveExercise(e.exercises[e.cursor].ID)
				return e, afterMutation(err, e.refresh())
			}
		}
	}
	return e, nil
}

func (e exerciseModel) showForm() (exerciseModel, tea.Cmd) {
	*e.formType = ""
	*e.formDuration = ""
	*e.formCalories = ""
	*e.formNotes = ""

	typeOptions := []huh.Option[string]{huh.NewOption("Exercise type...", "")}
	for _, t := range board.ExerciseTypes {
		typeOptions = append(typeOptions, huh.NewOption(board.ExerciseLabel(t), t))
	}

	e.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Type").Options(typeOptions...).Value(e.formType),
			huh.NewInput().Title("Duration").Placeholder("45 mins").Value(e.formDuration),
			huh.NewInput().Title("Calories burned").Value(e.formCalories),
			huh.NewText().Title("Notes").Value(e.formNotes),
		),
	).WithShowHelp(true).WithShowErrors(true)

	e.formActive = true
	return e, e.form.Init()
}

func (e exerciseModel) updateForm(msg tea.Msg) (exerciseModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			e.formActive = false
			e.form = nil
			return e, nil
		}
	}

	form, cmd := e.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		e.form = f
	}

	if e.form.State == huh.StateCompleted {
		e.formActive = false
		_, err := e.board.AddExercise(board.ExerciseInput{
			Type:     *e.formType,
			Duration: *e.formDuration,
			Calories: *e.formCalories,
			Notes:    *e.formNotes,
		})
		if err == nil {
			e.cursor = 0
		}
		return e, afterMutation(err, e.refresh())
	}

	return e, cmd
}

func (e exerciseModel) view() string {
	w := e.width - 4

	if e.formActive && e.form != nil {
		title := titleStyle.Render("Exercise Log")
		sub := subtitleStyle.Render("Track your workouts and stay consistent!")
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, sub, "", e.form.View()),
		)
	}

	title := titleStyle.Render("Exercise Log")
	if len(e.exercises) == 0 {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No workouts logged. Press n to log one."),
		))
	}

	var rows []string
	rows = append(rows, title, "")
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-14s %-12s %-12s %-10s %s", "Type", "Date", "Duration", "Calories", "Notes")))

	var items []string
	for _, ex := range e.exercises {
		cal := ""
		if ex.Calories != "" {
			cal = ex.Calories + " cal"
		}
		items = append(items, fmt.Sprintf("%-14s %-12s %-12s %-10s %s",
			strings.ToUpper(ex.Type), ex.Date, "⏱ "+truncate(ex.Duration, 10), cal, truncate(firstLine(ex.Notes), max(w-56, 8))))
	}
	rows = append(rows, renderItems(e.cursor, items)...)

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: log exercise  d: delete  e: export"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
