package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/xray-forge/xrf-shell/internal/domain"
)

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)

// Header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Menu styles
var (
	MenuDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			PaddingLeft(4)

	MenuItemSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Background(ColorSelected).
				Bold(true)

	MenuItemStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)
)

// Tree styles
var (
	TreeFolderStyle = lipgloss.NewStyle().
			Foreground(ColorFolder).
			Bold(true)

	TreeLeafStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TreeSelectedStyle = lipgloss.NewStyle().
				Background(ColorSelected).
				Foreground(ColorHighlight)
)

// Equipment styles
var (
	GridStyle = lipgloss.NewStyle().
			Foreground(ColorGrid)

	IconStyle = lipgloss.NewStyle().
			Foreground(ColorIcon)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)

// Tip styles
var (
	TipKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	TipTextStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

// Filter input styles
var (
	FilterCursorStyle = lipgloss.NewStyle().
				Foreground(ColorSpinner)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(ColorHintKey)
)

// Panel style frames the detail view of the selected item
var PanelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorMuted).
	Padding(0, 1)

// Spinner style
var SpinnerStyle = lipgloss.NewStyle().
	Foreground(ColorSpinner)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// StatusStyle returns the style used to render a session status
func StatusStyle(status domain.SessionStatus) lipgloss.Style {
	var color Color
	switch status {
	case domain.StatusLoading:
		color = ColorStatusLoading
	case domain.StatusReady:
		color = ColorStatusReady
	case domain.StatusFailed:
		color = ColorStatusFailed
	default:
		color = ColorStatusIdle
	}
	return lipgloss.NewStyle().Foreground(color)
}
