package viz

import "github.com/charmbracelet/lipgloss"

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("242"))

	Value = lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Bold(true)

	ErrorText = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")).
		Bold(true)

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("242")).
		Italic(true)

	liveSlot = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("82")).
			Padding(0, 1)

	spareSlot = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Foreground(lipgloss.Color("238")).
			Padding(0, 1)

	cursorSlot = liveSlot.
			BorderForeground(lipgloss.Color("213")).
			Foreground(lipgloss.Color("213")).
			Bold(true)

	header = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255")).
		Padding(0, 1)

	cell = lipgloss.NewStyle().Padding(0, 1)
)
