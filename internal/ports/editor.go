package ports

import "os/exec"

// EditorOpener opens a path in the user's preferred editor
type EditorOpener interface {
	// Command returns an exec.Cmd for opening path in the editor.
	// This is useful for integrating with bubbletea's ExecProcess
	Command(path string) (*exec.Cmd, error)
}
