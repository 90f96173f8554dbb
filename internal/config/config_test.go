package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("FOLDERSWAP_CONFIG_DIR", "")
	t.Setenv("FOLDERSWAP_STORE", "")
	t.Setenv("FOLDERSWAP_LOG_LEVEL", "")
	t.Setenv("FOLDERSWAP_LOG_FILE", "")

	s := FromEnv("warn")
	assert.Equal(t, DefaultConfigDir, s.ConfigDir)
	assert.Equal(t, StoreJSON, s.Store)
	assert.Equal(t, "warn", s.LogLevel)
	assert.Empty(t, s.LogFile)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("FOLDERSWAP_CONFIG_DIR", "/etc/fs")
	t.Setenv("FOLDERSWAP_STORE", "sqlite")
	t.Setenv("FOLDERSWAP_LOG_LEVEL", "debug")
	t.Setenv("FOLDERSWAP_LOG_FILE", "/tmp/fs.log")

	s := FromEnv("warn")
	assert.Equal(t, Settings{ConfigDir: "/etc/fs", Store: "sqlite", LogLevel: "debug", LogFile: "/tmp/fs.log"}, s)
}

func TestSettings_Resolve(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name    string
		in      Settings
		want    Settings
		wantErr error
	}{
		{
			name: "expands home and defaults log file",
			in:   Settings{ConfigDir: "~/.config/folderswap", Store: "JSON"},
			want: Settings{
				ConfigDir: filepath.Join(home, ".config/folderswap"),
				Store:     StoreJSON,
				LogFile:   filepath.Join(home, ".config/folderswap", LogFileName),
			},
		},
		{
			name: "empty store falls back",
			in:   Settings{ConfigDir: "/cfg", LogFile: "/var/log/fs.log"},
			want: Settings{ConfigDir: "/cfg", Store: StoreJSON, LogFile: "/var/log/fs.log"},
		},
		{
			name:    "unknown store",
			in:      Settings{ConfigDir: "/cfg", Store: "redis"},
			wantErr: ErrUnknownStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.Resolve()
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandHome("~")
	require.NoError(t, err)
	assert.Equal(t, home, got)

	got, err = ExpandHome("/abs/~user")
	require.NoError(t, err)
	assert.Equal(t, "/abs/~user", got)
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, lvl)

	lvl, err = ParseLevel(" DEBUG ")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)

	_, err = ParseLevel("chatty")
	assert.Error(t, err)
}

func TestFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "fs.log")

	logger, closer, err := FileLogger(path, "info")
	require.NoError(t, err)
	logger.Debug().Msg("hidden")
	logger.Info().Msg("visible")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible")
	assert.NotContains(t, string(data), "hidden")
}

func TestBindFlags(t *testing.T) {
	s := Settings{ConfigDir: "/env/dir", Store: StoreJSON, LogLevel: "warn"}
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs, &s)

	require.NoError(t, fs.Parse([]string{"--store", "sqlite", "-c", "/flag/dir"}))
	assert.Equal(t, Settings{ConfigDir: "/flag/dir", Store: StoreSQLite, LogLevel: "warn"}, s)
}
