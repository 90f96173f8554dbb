package config

import (
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
)

const (
	DefaultConfigDir = "~/.config/folderswap"
	DefaultStore     = StoreJSON
	LogFileName      = "folderswap.log"
)

const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// ErrUnknownStore is returned for a store backend other than json or sqlite
var ErrUnknownStore = errors.Base("unknown store backend")

// Settings holds the resolved configuration for one process
type Settings struct {
	ConfigDir string
	Store     string
	LogLevel  string
	LogFile   string
}

// ConfigDir returns the config directory from FOLDERSWAP_CONFIG_DIR,
// falling back to DefaultConfigDir.
func ConfigDir() string {
	if env := os.Getenv("FOLDERSWAP_CONFIG_DIR"); env != "" {
		return env
	}
	return DefaultConfigDir
}

// Store returns the backend name from FOLDERSWAP_STORE, falling back to
// DefaultStore.
func Store() string {
	if env := os.Getenv("FOLDERSWAP_STORE"); env != "" {
		return env
	}
	return DefaultStore
}

// LogLevel returns FOLDERSWAP_LOG_LEVEL, or fallback when unset
func LogLevel(fallback string) string {
	if env := os.Getenv("FOLDERSWAP_LOG_LEVEL"); env != "" {
		return env
	}
	return fallback
}

// LogFile returns FOLDERSWAP_LOG_FILE; empty means the default location
// inside the config directory.
func LogFile() string {
	return os.Getenv("FOLDERSWAP_LOG_FILE")
}

// FromEnv reads every setting from the environment
func FromEnv(defaultLevel string) Settings {
	return Settings{
		ConfigDir: ConfigDir(),
		Store:     Store(),
		LogLevel:  LogLevel(defaultLevel),
		LogFile:   LogFile(),
	}
}

// Resolve expands ~ in paths, fills the log file default and checks the
// store backend.
func (s Settings) Resolve() (Settings, error) {
	dir, err := ExpandHome(s.ConfigDir)
	if err != nil {
		return s, err
	}
	s.ConfigDir = dir

	s.Store = strings.ToLower(strings.TrimSpace(s.Store))
	switch s.Store {
	case StoreJSON, StoreSQLite:
	case "":
		s.Store = DefaultStore
	default:
		return s, errors.WithDetails(ErrUnknownStore, "store", s.Store)
	}

	if s.LogFile == "" {
		s.LogFile = filepath.Join(s.ConfigDir, LogFileName)
	} else if s.LogFile, err = ExpandHome(s.LogFile); err != nil {
		return s, err
	}

	return s, nil
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
