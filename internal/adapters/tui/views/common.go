package views

import (
	"gitlab.com/tozd/go/errors"

	"folderswap/internal/application"
)

// MessageKind selects how a status message is styled
type MessageKind int

const (
	MessageInfo MessageKind = iota
	MessageWarning
	MessageError
)

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width       int
	Height      int
	Message     string
	MessageKind MessageKind
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, kind MessageKind) {
	s.Message = msg
	s.MessageKind = kind
}

// SetError shows err. Unusable roots are warnings, everything else an error.
func (s *ViewState) SetError(err error) {
	kind := MessageError
	if errors.Is(err, application.ErrDirectoryUnavailable) {
		kind = MessageWarning
	}
	s.SetMessage(err.Error(), kind)
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageKind = MessageInfo
}

// pageSizeFor returns how many list rows fit in height after the chrome
// every list view draws (title, header, message, help)
func pageSizeFor(height int) int {
	const chrome = 12
	if height-chrome < 5 {
		return 5
	}
	return height - chrome
}

// Messages for view switching
type SwitchToKeywordsMsg struct {
	Message string
}

type SwitchToFoldersMsg struct {
	Keyword string
}

type SwitchToDirectoriesMsg struct{}

type SwitchToHelpMsg struct{}

// OpenEditorMsg asks the app to hand the terminal to the editor
type OpenEditorMsg struct {
	Path string
}

// EditorFinishedMsg reports the editor exited
type EditorFinishedMsg struct {
	Err error
}
