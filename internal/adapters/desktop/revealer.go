package desktop

import (
	"os/exec"
	"path/filepath"
	"runtime"

	"gitlab.com/tozd/go/errors"

	"folderswap/internal/ports"
)

// ErrUnsupportedOS is returned where no file manager launcher is known
var ErrUnsupportedOS = errors.Base("unsupported operating system")

// Revealer implements ports.FolderRevealer with the platform's launcher
type Revealer struct {
	goos string
	run  func(*exec.Cmd) error
}

// Ensure Revealer implements FolderRevealer
var _ ports.FolderRevealer = (*Revealer)(nil)

// NewRevealer creates a revealer for the running platform
func NewRevealer() *Revealer {
	return &Revealer{
		goos: runtime.GOOS,
		run:  func(c *exec.Cmd) error { return c.Run() },
	}
}

// Reveal opens path in the file manager
func (r *Revealer) Reveal(path string) error {
	cmd, err := r.Command(path)
	if err != nil {
		return err
	}
	if err := r.run(cmd); err != nil {
		return errors.Errorf("opening %s: %w", path, err)
	}
	return nil
}

// Command builds the launcher invocation for path
func (r *Revealer) Command(path string) (*exec.Cmd, error) {
	if !filepath.IsAbs(path) {
		return nil, errors.Errorf("not an absolute path: %s", path)
	}

	switch r.goos {
	case "darwin":
		return exec.Command("open", path), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", path), nil
	case "windows":
		return exec.Command("explorer", path), nil
	default:
		return nil, errors.WithDetails(ErrUnsupportedOS, "os", r.goos)
	}
}
