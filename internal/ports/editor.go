package ports

import "os/exec"

// EditorOpener opens a temp file holding a node's field content in the
// user's external editor, so long-form fields can be edited outside the TUI.
type EditorOpener interface {
	// OpenFile opens the specified file in the user's preferred editor.
	// It uses the $EDITOR environment variable, falling back to common editors.
	OpenFile(path string) error

	// Command returns an exec.Cmd for opening a file in the editor.
	// This is useful for integrating with bubbletea's ExecProcess.
	Command(path string) (*exec.Cmd, error)
}
