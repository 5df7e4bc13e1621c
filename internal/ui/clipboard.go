package ui

import (
	"errors"
	"time"

	"github.com/atotto/clipboard"
)

// statusTimeout is how long transient status messages stay up
const statusTimeout = 3 * time.Second

var errClipboardUnsupported = errors.New("no clipboard utility available")

// systemClipboard is the default clipboard writer
func systemClipboard(text string) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}
