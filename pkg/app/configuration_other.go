//go:build !windows

package app

import (
	"os/user"
	"path/filepath"
)

func defaultConfigurationFile() string {
	u, err := user.Current()
	if err != nil {
		return "configuration.yml"
	}

	return filepath.Join(u.HomeDir, ".config", "host-remote", "configuration.yml")
}
