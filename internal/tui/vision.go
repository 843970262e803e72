package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/visionboard/internal/board"
)

type visionModel struct {
	board  *board.Board
	width  int
	height int

	goals  []board.VisionGoal
	images map[int64]string // display URL per goal, after fallback
	cursor int

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	formTitle       *string
	formCategory    *string
	formDescription *string
	formTargetDate  *string
	formImageURL    *string
}

func newVisionModel(b *board.Board) visionModel {
	title, cat, desc, target, img := "", "", "", "", ""
	return visionModel{
		board:           b,
		formTitle:       &title,
		formCategory:    &cat,
		formDescription: &desc,
		formTargetDate:  &target,
		formImageURL:    &img,
	}
}

func (v *visionModel) setSize(w, h int) {
	v.width = w
	v.height = h
}

type visionDataMsg struct {
	goals  []board.VisionGoal
	images map[int64]string
}

func (v visionModel) refresh() tea.Cmd {
	return func() tea.Msg {
		goals := v.board.Goals()
		images := make(map[int64]string, len(goals))
		for _, g := range goals {
			images[g.ID] = v.board.DisplayImage(g)
		}
		return visionDataMsg{goals: goals, images: images}
	}
}

func (v visionModel) update(msg tea.Msg) (visionModel, tea.Cmd) {
	if v.formActive && v.form != nil {
		return v.updateForm(msg)
	}

	switch msg := msg.(type) {
	case visionDataMsg:
		v.goals = msg.goals
		v.images = msg.images
		v.cursor = clampCursor(v.cursor, len(v.goals))
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if v.cursor > 0 {
				v.cursor--
			}
		case key.Matches(msg, keys.Down):
			if v.cursor < len(v.goals)-1 {
				v.cursor++
			}
		case key.Matches(msg, keys.New):
			return v.showForm()
		case key.Matches(msg, keys.Delete):
			if len(v.goals) > 0 {
				err := v.board.RemoveGoal(v.goals[v.cursor].ID)
				return v, afterMutation(err, v.refresh())
			}
		case key.Matches(msg, keys.MoveUp):
			if v.cursor > 0 {
				err := v.board.MoveGoal(v.goals[v.cursor].ID, -1)
				v.cursor--
				return v, afterMutation(err, v.refresh())
			}
		case key.Matches(msg, keys.MoveDown):
			if v.cursor < len(v.goals)-1 {
				err := v.board.MoveGoal(v.goals[v.cursor].ID, 1)
				v.cursor++
				return v, afterMutation(err, v.refresh())
			}
		}
	}
	return v, nil
}

func validTargetDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func (v visionModel) showForm() (visionModel, tea.Cmd) {
	*v.formTitle = ""
	*v.formCategory = ""
	*v.formDescription = ""
	*v.formTargetDate = ""
	*v.formImageURL = ""

	catOptions := []huh.Option[string]{huh.NewOption("Select category...", "")}
	for _, c := range board.Categories {
		catOptions = append(catOptions, huh.NewOption(board.CategoryLabel(c), c))
	}

	v.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Goal").Placeholder("Run a marathon").Value(v.formTitle),
			huh.NewSelect[string]().Title("Category").Options(catOptions...).Value(v.formCategory),
			huh.NewInput().Title("Image URL").
				Description("Optional, a default is used if empty").
				Value(v.formImageURL),
			huh.NewText().Title("Description").Placeholder("Describe your goal in detail...").Value(v.formDescription),
			huh.NewInput().Title("Target date").Placeholder("YYYY-MM-DD").
				Validate(validTargetDate).
				Value(v.formTargetDate),
		),
	).WithShowHelp(true).WithShowErrors(true)

	v.formActive = true
	return v, v.form.Init()
}

func (v visionModel) updateForm(msg tea.Msg) (visionModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			v.formActive = false
			v.form = nil
			return v, nil
		}
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		v.formActive = false
		_, err := v.board.AddGoal(board.GoalInput{
			Title:       *v.formTitle,
			Category:    *v.formCategory,
			Description: *v.formDescription,
			TargetDate:  *v.formTargetDate,
			ImageURL:    *v.formImageURL,
		})
		if err == nil {
			v.cursor = 0
		}
		return v, afterMutation(err, v.refresh())
	}

	return v, cmd
}

func (v visionModel) view() string {
	w := v.width - 4

	if v.formActive && v.form != nil {
		title := titleStyle.Render("Add Your 2026 Goals")
		sub := subtitleStyle.Render("Visualize your dreams with images!")
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, sub, "", v.form.View()),
		)
	}

	title := titleStyle.Render("Vision Board")
	if len(v.goals) == 0 {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No vision goals yet. Press n to add your first goal!"),
		))
	}

	var items []string
	for _, g := range v.goals {
		items = append(items, fmt.Sprintf("%-32s %s", truncate(g.Title, 32), mutedStyle.Render(board.CategoryLabel(g.Category))))
	}

	list := lipgloss.JoinVertical(lipgloss.Left, renderItems(v.cursor, items)...)
	detail := v.renderDetail(v.goals[v.cursor], w/2-4)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(w/2).Render(list),
		activePanelStyle.Width(w/2-4).Render(detail),
	)

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		body,
		"",
		mutedStyle.Render("  n: new  d: delete  K/J: move  e: export"),
	))
}

func (v visionModel) renderDetail(g board.VisionGoal, w int) string {
	rows := []string{
		badgeStyle.Render(strings.ToUpper(g.Category)),
		"",
		titleStyle.Render(g.Title),
	}
	if g.Description != "" {
		rows = append(rows, lipgloss.NewStyle().Width(w).Render(g.Description))
	}
	if g.TargetDate != "" {
		rows = append(rows, "", accentStyle.Render("🎯 "+g.TargetDate))
	}

	img, ok := v.images[g.ID]
	if !ok {
		img = g.ImageURL
	}
	rows = append(rows, "", mutedStyle.Render("🖼  "+truncate(img, w-3)))
	rows = append(rows, mutedStyle.Render("added "+g.Date))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
