package config

import (
	"os"
	"path/filepath"
)

// EnvHome overrides the xrf home directory
const EnvHome = "XRF_HOME"

// GetHome returns XRF_HOME or ~/.xrf default
func GetHome() string {
	home := os.Getenv(EnvHome)
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".xrf"
		}
		return filepath.Join(homeDir, ".xrf")
	}
	return ExpandPath(home)
}

// GetDBPath returns $XRF_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "state.db")
}

// GetSettingsPath returns $XRF_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// GetHostKeyPath returns $XRF_HOME/ssh/host_ed25519
func GetHostKeyPath() string {
	return filepath.Join(GetHome(), "ssh", "host_ed25519")
}

// GetAuthorizedKeysPath returns $XRF_HOME/ssh/authorized_keys
func GetAuthorizedKeysPath() string {
	return filepath.Join(GetHome(), "ssh", "authorized_keys")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
