package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"treecreator/internal/ports"
)

// System implements ports.SystemClipboard over the OS clipboard
type System struct{}

// Ensure System implements SystemClipboard
var _ ports.SystemClipboard = (*System)(nil)

// NewSystem creates a new OS clipboard bridge
func NewSystem() *System {
	return &System{}
}

// WriteText places text on the OS clipboard
func (s *System) WriteText(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no system clipboard available on this platform")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write system clipboard: %w", err)
	}
	return nil
}

// ReadText returns the current OS clipboard text
func (s *System) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", fmt.Errorf("no system clipboard available on this platform")
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("failed to read system clipboard: %w", err)
	}
	return text, nil
}
