package pp

import (
	"errors"

	"github.com/atotto/clipboard"
)

// Sink receives a copy of rendered output when [ExportToSink] is requested.
// Implementations must be safe for concurrent use if the [Dispatcher] is.
type Sink interface {
	Copy(content string) error
}

// SinkFunc adapts a function to [Sink].
type SinkFunc func(content string) error

// Copy calls f(content).
func (f SinkFunc) Copy(content string) error { return f(content) }

// ClipboardSink writes to the system clipboard.
type ClipboardSink struct{}

// Copy replaces the clipboard contents with content.
func (ClipboardSink) Copy(content string) error {
	if clipboard.Unsupported {
		return errors.New("clipboard is not supported on this system")
	}
	return clipboard.WriteAll(content)
}
