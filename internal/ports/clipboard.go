package ports

// SystemClipboard bridges to the operating system clipboard, used to export
// node content as text alongside the internal node clipboard.
type SystemClipboard interface {
	// WriteText places text on the OS clipboard.
	WriteText(text string) error

	// ReadText returns the current OS clipboard text.
	ReadText() (string, error)
}
