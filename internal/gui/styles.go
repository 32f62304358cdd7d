package gui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary    = lipgloss.Color("#00BFFF") // Cyan — focus and headings
	colorAccent     = lipgloss.Color("#FFD700") // Gold — open menus
	colorMuted      = lipgloss.Color("#636363") // Gray — de-emphasized
	colorMutedLight = lipgloss.Color("#8C8C8C") // Lighter gray — normal text
	colorWhite      = lipgloss.Color("#EEEEEE") // Off-white — values
)

// FocusIndicator is prepended to the focused widget. Hosts search for it to
// keep the focused line on screen.
const FocusIndicator = "▎"

var (
	styleHeading = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleLabel = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleSmall = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	styleSeparator = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleValue = lipgloss.NewStyle().
			Foreground(colorWhite)

	styleFocused = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleIndicator = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)
)

// Container styles.
var (
	styleMultiline = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	styleMenu = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	styleGroup = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	styleSectionBody = lipgloss.NewStyle().
				PaddingLeft(2)
)
