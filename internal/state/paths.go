package state

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigDirName is the root directory name for go-modlist configuration
	ConfigDirName = "go-modlist"

	// ConfigFileName is the name of the main configuration file
	ConfigFileName = "config.yaml"
)

// GetConfigDir returns the path to the go-modlist configuration directory.
// It honours XDG_CONFIG_HOME and defaults to ~/.config/go-modlist/.
func GetConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		configHome = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configHome, ConfigDirName), nil
}

// GetConfigPath returns the path to the main configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, ConfigFileName), nil
}

// EnsureDir ensures that a directory exists, creating it if necessary.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("failed to ensure directory %s: %w", path, err)
	}
	return nil
}
