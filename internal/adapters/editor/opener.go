package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"treecreator/internal/ports"
)

// Opener implements ports.EditorOpener
type Opener struct{}

// Ensure Opener implements EditorOpener
var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{}
}

// OpenFile opens a file in the user's preferred editor
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd for opening a file in the editor
// This is useful for integrating with bubbletea's ExecProcess
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	editor := o.findEditor()
	if editor == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// findEditor returns the editor to use
func (o *Opener) findEditor() string {
	// Check $EDITOR first
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}

	// Check $VISUAL
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}

	// Try common editors
	editors := []string{"nvim", "vim", "vi", "nano", "code"}
	for _, editor := range editors {
		if path, err := exec.LookPath(editor); err == nil {
			return path
		}
	}

	return ""
}

// FieldSession stages a node field's content in a temp file so it can be
// edited in an external editor and read back afterwards.
type FieldSession struct {
	// Path is the temp file handed to the editor
	Path string
}

// NewFieldSession writes the current field content to a temp file.
// The caller is responsible for calling Cleanup when done.
func NewFieldSession(nodeName, field, content string) (*FieldSession, error) {
	pattern := fmt.Sprintf("treecreator-%s-%s-*%s", sanitize(nodeName), field, extensionFor(field))
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to create edit buffer: %w", err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("failed to stage field content: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("failed to stage field content: %w", err)
	}
	return &FieldSession{Path: f.Name()}, nil
}

// Read returns the edited content, with trailing newlines trimmed
func (s *FieldSession) Read() (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read edit buffer: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// Cleanup removes the temp file
func (s *FieldSession) Cleanup() {
	os.Remove(s.Path)
}

func extensionFor(field string) string {
	switch field {
	case "markdown_short", "explanation":
		return ".md"
	default:
		return ".txt"
	}
}

func sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
