package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "208" // Orange - app name, titles
	ColorSecondary Color = "86"  // Cyan - subtitles
)

// Session status colors
const (
	ColorStatusFailed  Color = "1" // Red
	ColorStatusIdle    Color = "8" // Gray
	ColorStatusLoading Color = "3" // Yellow
	ColorStatusReady   Color = "2" // Green
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSelected  Color = "237" // Dark gray - selected row background
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorFolder    Color = "75"  // Blue
	ColorGrid      Color = "238" // Dark gray - grid overlay
	ColorHelpGroup Color = "141" // Purple
	ColorHintKey   Color = "226" // Yellow
	ColorIcon      Color = "214" // Amber - inventory icons
	ColorSpinner   Color = "205" // Pink
)
