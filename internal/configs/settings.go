package configs

import (
	"os"
	"path/filepath"
)

type UserSettings struct {
	UserConfigsPath string
	DownloadsPath   string
}

var UserCloudSafeSettings *UserSettings

func init() {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = "."
	}

	downloads := "."
	if homeDir, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(homeDir, "Downloads")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			downloads = candidate
		}
	}

	UserCloudSafeSettings = &UserSettings{
		UserConfigsPath: filepath.Join(configDir, "cloudsafe"),
		DownloadsPath:   downloads,
	}
}

// ConfigPath returns the location of the user config file.
func ConfigPath() string {
	return filepath.Join(UserCloudSafeSettings.UserConfigsPath, "config.toml")
}
