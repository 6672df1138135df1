//go:build windows

package app

import (
	"os"
	"os/user"
	"path/filepath"
)

func defaultConfigurationFile() string {
	if appData := os.Getenv("APPDATA"); appData != "" {
		fs, err := os.Stat(appData)
		if err == nil && fs.IsDir() {
			return filepath.Join(appData, "host-remote", "configuration.yml")
		}
	}

	u, err := user.Current()
	if err != nil {
		return "configuration.yml"
	}

	return filepath.Join(u.HomeDir, ".config", "host-remote", "configuration.yml")
}
