package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("35")
	ColorMuted   = lipgloss.Color("241")
	ColorAccent  = lipgloss.Color("178")
	ColorDanger  = lipgloss.Color("160")

	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	FieldLabelStyle = lipgloss.NewStyle().
			Width(22).
			Foreground(ColorMuted)

	FocusedLabelStyle = lipgloss.NewStyle().
				Width(22).
				Bold(true).
				Foreground(ColorPrimary)

	SummaryLabelStyle = lipgloss.NewStyle().
				Width(28).
				Foreground(ColorMuted)

	SummaryValueStyle = lipgloss.NewStyle().
				Bold(true)

	NetPayableStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	BandHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)
)
