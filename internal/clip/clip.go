// Package clip copies text to the system clipboard on a best-effort basis.
package clip

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
)

// Copier writes text to a clipboard.
type Copier interface {
	WriteAll(text string) error
}

// System is the OS clipboard.
type System struct{}

// WriteAll implements Copier.
func (System) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Available reports whether the OS clipboard can be used at all.
func Available() bool {
	return !clipboard.Unsupported
}

// Copy writes text with c and reports whether it worked. Failures are logged
// at debug level and otherwise ignored.
func Copy(logger *log.Logger, c Copier, text string) bool {
	if err := c.WriteAll(text); err != nil {
		logger.Debug("Clipboard copy failed", "error", err)
		return false
	}
	return true
}
