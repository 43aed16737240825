package clipboard

import (
	"github.com/atotto/clipboard"
)

// Clipboard defines the system clipboard integration.
type Clipboard interface {
	Copy(text string) error
}

// SystemClipboard places text on the OS clipboard.
type SystemClipboard struct{}

// NewSystemClipboard creates a new SystemClipboard.
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

// Copy writes text to the system clipboard.
func (c *SystemClipboard) Copy(text string) error {
	return clipboard.WriteAll(text)
}
