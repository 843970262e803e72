package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary   = lipgloss.Color("#58CC02") // brand green
	colorSecondary = lipgloss.Color("#1CB0F6")
	colorAccent    = lipgloss.Color("#FF9600")
	colorMuted     = lipgloss.Color("#8A8A8A")
	colorSuccess   = lipgloss.Color("#2ECC71")
	colorWarning   = lipgloss.Color("#F39C12")
	colorError     = lipgloss.Color("#E74C3C")
	colorFg        = lipgloss.Color("#E8E8E8")
	colorSubtle    = lipgloss.Color("#3A3A3A")
	colorHighlight = lipgloss.Color("#CE82FF")
)

func fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func bordered(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(c).Padding(1, 2)
}

var (
	activeTabStyle = fg(colorPrimary).Bold(true).Padding(0, 2).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorPrimary)
	inactiveTabStyle = fg(colorMuted).Padding(0, 2)

	panelStyle       = bordered(colorSubtle)
	activePanelStyle = bordered(colorPrimary)

	titleStyle     = fg(colorFg).Bold(true)
	subtitleStyle  = fg(colorMuted).Italic(true)
	accentStyle    = fg(colorAccent)
	successStyle   = fg(colorSuccess)
	warningStyle   = fg(colorWarning)
	errorStyle     = fg(colorError)
	mutedStyle     = fg(colorMuted)
	highlightStyle = fg(colorHighlight)
	quoteStyle     = fg(colorHighlight).Italic(true)
	badgeStyle     = lipgloss.NewStyle().Bold(true).Padding(0, 1).
			Foreground(lipgloss.Color("#101010")).
			Background(colorSecondary)

	progressFillStyle  = fg(colorPrimary)
	progressTrackStyle = fg(colorSubtle)

	headerStyle = lipgloss.NewStyle().Padding(0, 1)
	footerStyle = fg(colorMuted).Padding(0, 1)

	selectedItemStyle = fg(colorPrimary).Bold(true)
	normalItemStyle   = fg(colorFg)
)
