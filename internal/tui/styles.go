package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF7AB6")).Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	chipStyle     = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	wordCardStyle = lipgloss.NewStyle().
			Padding(1, 4).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#FF7AB6"))
	wordTextStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	translationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7FE7D6"))
	knownStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#7FE7D6")).Bold(true)
	unknownStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#BFE8FF")).Bold(true)
	selectedStyle    = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#121212")).
				Background(lipgloss.Color("#FF7AB6")).
				Bold(true).
				Padding(0, 1)
	unselectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0")).Padding(0, 1)
	footerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	noticeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
)
