package desktop

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestRevealer_Command(t *testing.T) {
	tests := []struct {
		goos     string
		wantArgs []string
	}{
		{"darwin", []string{"open", "/data/projectAlpha"}},
		{"linux", []string{"xdg-open", "/data/projectAlpha"}},
		{"freebsd", []string{"xdg-open", "/data/projectAlpha"}},
		{"windows", []string{"explorer", "/data/projectAlpha"}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			r := &Revealer{goos: tt.goos}
			cmd, err := r.Command("/data/projectAlpha")
			require.NoError(t, err)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}

func TestRevealer_Errors(t *testing.T) {
	_, err := (&Revealer{goos: "plan9"}).Command("/data")
	assert.True(t, errors.Is(err, ErrUnsupportedOS))

	_, err = (&Revealer{goos: "linux"}).Command("relative/dir")
	assert.Error(t, err)
}

func TestRevealer_Reveal(t *testing.T) {
	var ran []string
	r := &Revealer{goos: "linux", run: func(c *exec.Cmd) error {
		ran = c.Args
		return nil
	}}
	require.NoError(t, r.Reveal("/data/projectAlpha"))
	assert.Equal(t, []string{"xdg-open", "/data/projectAlpha"}, ran)

	r.run = func(*exec.Cmd) error { return exec.ErrNotFound }
	assert.ErrorIs(t, r.Reveal("/data/projectAlpha"), exec.ErrNotFound)
}
