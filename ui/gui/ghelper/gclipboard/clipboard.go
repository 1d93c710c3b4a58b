package gclipboard

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
)

var ErrEmptyClipboard = errors.New("clipboard is empty")

// CopyFEN puts the position on the system clipboard.
func CopyFEN(fen string) error {
	return clipboard.WriteAll(fen)
}

// PasteFEN returns the first non-blank line of the clipboard.
func PasteFEN() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", err
	}
	fen := FirstLine(text)
	if fen == "" {
		return "", ErrEmptyClipboard
	}
	return fen, nil
}

// FirstLine trims text down to its first non-blank line.
func FirstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
