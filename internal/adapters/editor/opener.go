package editor

import (
	"os"
	"os/exec"
	"strings"

	"gitlab.com/tozd/go/errors"

	"folderswap/internal/ports"
)

// ErrNoEditor is returned when neither the environment nor PATH names an editor
var ErrNoEditor = errors.Base("no editor found: set $VISUAL or $EDITOR")

// fallbackEditors are tried in order when no variable is set.
// Each of them accepts a directory argument.
var fallbackEditors = []string{"nvim", "vim", "code", "nano", "vi"}

// Opener implements ports.EditorOpener for folders
type Opener struct {
	getenv   func(string) string
	lookPath func(string) (string, error)
}

// Ensure Opener implements EditorOpener
var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates an opener reading the real environment and PATH
func NewOpener() *Opener {
	return &Opener{getenv: os.Getenv, lookPath: exec.LookPath}
}

// Command returns an exec.Cmd that opens path in the editor, wired to the
// terminal so bubbletea's ExecProcess can hand over the screen
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	argv, err := o.editorArgs()
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}

// editorArgs splits the configured editor into program and arguments, so
// values like "code --wait" work
func (o *Opener) editorArgs() ([]string, error) {
	for _, name := range []string{"VISUAL", "EDITOR"} {
		if fields := strings.Fields(o.getenv(name)); len(fields) > 0 {
			return fields, nil
		}
	}

	for _, candidate := range fallbackEditors {
		if path, err := o.lookPath(candidate); err == nil {
			return []string{path}, nil
		}
	}

	return nil, ErrNoEditor
}
