package config

import "github.com/spf13/pflag"

// BindFlags registers the shared flags on fs, defaulting to the values
// already in s (normally read from the environment)
func BindFlags(fs *pflag.FlagSet, s *Settings) {
	fs.StringVarP(&s.ConfigDir, "config-dir", "c", s.ConfigDir, "directory holding the keyword and directory configuration")
	fs.StringVar(&s.Store, "store", s.Store, "config store backend: json or sqlite")
	fs.StringVar(&s.LogLevel, "log-level", s.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&s.LogFile, "log-file", s.LogFile, "log file for the terminal UI and MCP server (default <config-dir>/folderswap.log)")
}
