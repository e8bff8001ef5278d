package ui

import (
	"fmt"

	"github.com/xray-forge/xrf-shell/internal/theme"
	"github.com/xray-forge/xrf-shell/internal/version"
)

// renderHeader creates the header used across the entire application.
// Version details are shown in dev mode only. A non-empty subtitle is
// rendered below the tagline.
func renderHeader(devMode bool, subtitle string) string {
	appNameLine := theme.AppNameStyle.Render("xrf")
	if devMode {
		commit := version.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		appNameLine += theme.VersionStyle.Render(fmt.Sprintf(" %s | %s | %s | %s",
			version.Version,
			commit,
			version.Date,
			version.GoVersion))
	}

	result := appNameLine + "\n"
	result += theme.TaglineStyle.Render(version.Tagline)

	if subtitle != "" {
		result += "\n\n" + theme.SubtitleStyle.Render(subtitle)
	}

	return result + "\n"
}
