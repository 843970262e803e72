package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/visionboard/internal/board"
)

type progressModel struct {
	board  *board.Board
	width  int
	height int

	items  []board.ProgressItem
	stats  board.ProgressStats
	cursor int

	formActive bool
	form       *huh.Form
	formGoal   *string

	chart barchart.Model
}

func newProgressModel(b *board.Board) progressModel {
	goal := ""
	return progressModel{
		board:    b,
		formGoal: &goal,
		chart:    barchart.New(40, 8),
	}
}

func (p *progressModel) setSize(w, h int) {
	p.width = w
	p.height = h
	p.buildChart()
}

type progressDataMsg struct {
	items []board.ProgressItem
}

func (p progressModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return progressDataMsg{items: p.board.Progress()}
	}
}

func (p progressModel) update(msg tea.Msg) (progressModel, tea.Cmd) {
	if p.formActive && p.form != nil {
		return p.updateForm(msg)
	}

	switch msg := msg.(type) {
	case progressDataMsg:
		p.items = msg.items
		p.stats = board.ComputeStats(p.items)
		p.cursor = clampCursor(p.cursor, len(p.items))
		p.buildChart()
		return p, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if p.cursor > 0 {
				p.cursor--
			}
		case key.Matches(msg, keys.Down):
			if p.cursor < len(p.items)-1 {
				p.cursor++
			}
		case key.Matches(msg, keys.New):
			return p.showForm()
		}

		if len(p.items) == 0 {
			return p, nil
		}
		id := p.items[p.cursor].ID
		switch {
		case key.Matches(msg, keys.Plus):
			return p, afterMutation(p.board.StepProgress(id, 10), p.refresh())
		case key.Matches(msg, keys.Minus):
			return p, afterMutation(p.board.StepProgress(id, -10), p.refresh())
		case key.Matches(msg, keys.Complete):
			return p, afterMutation(p.board.CompleteProgress(id), p.refresh())
		case key.Matches(msg, keys.Delete):
			return p, afterMutation(p.board.RemoveProgress(id), p.refresh())
		}
	}
	return p, nil
}

func (p progressModel) showForm() (progressModel, tea.Cmd) {
	*p.formGoal = ""

	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Goal").Placeholder("Read 24 books").Value(p.formGoal),
		),
	).WithShowHelp(true).WithShowErrors(true)

	p.formActive = true
	return p, p.form.Init()
}

func (p progressModel) updateForm(msg tea.Msg) (progressModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			p.formActive = false
			p.form = nil
			return p, nil
		}
	}

	form, cmd := p.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		p.form = f
	}

	if p.form.State == huh.StateCompleted {
		p.formActive = false
		_, err := p.board.AddProgress(board.ProgressInput{Goal: *p.formGoal})
		if err == nil {
			p.cursor = 0
		}
		return p, afterMutation(err, p.refresh())
	}

	return p, cmd
}

func (p *progressModel) buildChart() {
	chartWidth := max(p.width-8, 20)
	chartHeight := 8
	if p.height > 30 {
		chartHeight = 12
	}

	p.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, it := range p.items {
		style := lipgloss.NewStyle().Foreground(colorSecondary)
		if it.Status == board.StatusCompleted {
			style = lipgloss.NewStyle().Foreground(colorSuccess)
		}
		bars = append(bars, barchart.BarData{
			Label: truncate(it.Goal, 10),
			Values: []barchart.BarValue{{
				Name:  it.Goal,
				Value: float64(it.Progress),
				Style: style,
			}},
		})
	}
	if len(bars) == 0 {
		return
	}

	p.chart.PushAll(bars)
	p.chart.Draw()
}

func (p progressModel) view() string {
	w := p.width - 4

	if p.formActive && p.form != nil {
		title := titleStyle.Render("New Progress Goal")
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", p.form.View()),
		)
	}

	title := titleStyle.Render("Goal Progress Tracker")
	sub := subtitleStyle.Render("Monitor your progress!")

	var rows []string
	rows = append(rows, title, sub, "")

	if len(p.items) == 0 {
		rows = append(rows, mutedStyle.Render("No progress goals. Press n to add one."))
		return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
	}

	barWidth := max(min(w-60, 40), 10)
	var items []string
	for _, it := range p.items {
		items = append(items, fmt.Sprintf("%s %-24s %s %4d%%  %s",
			it.Status.Icon(), truncate(it.Goal, 24), progressBar(it.Progress, barWidth), it.Progress, mutedStyle.Render(it.LastUpdated)))
	}
	rows = append(rows, renderItems(p.cursor, items)...)

	rows = append(rows, "", p.renderOverview(), "", p.chart.View(), "")
	rows = append(rows, mutedStyle.Render("  +/-: ±10%  c: complete  n: new  d: delete"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (p progressModel) renderOverview() string {
	stat := func(value, label string, style lipgloss.Style) string {
		return lipgloss.NewStyle().Width(16).Align(lipgloss.Center).Render(
			lipgloss.JoinVertical(lipgloss.Center, style.Bold(true).Render(value), mutedStyle.Render(label)),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		stat(fmt.Sprint(p.stats.Completed), "Completed", successStyle),
		stat(fmt.Sprint(p.stats.InProgress), "In Progress", accentStyle),
		stat(fmt.Sprintf("%d%%", p.stats.Average), "Average", highlightStyle),
	)
}
