package gdialog

import (
	"fmt"
	"os"
	"path/filepath"
	"schack/ui/gui/ghelper/gclipboard"

	"github.com/sqweek/dialog"
)

// OpenFEN asks for a file and returns the position written on its first line.
// dialog.ErrCancelled is returned as is when the user closes the dialog.
func OpenFEN(title string) (string, error) {
	path, err := dialog.File().Title(title).Filter("FEN position", "fen", "txt").Load()
	if err != nil {
		return "", err
	}
	return ReadFEN(path)
}

func ReadFEN(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	fen := gclipboard.FirstLine(string(b))
	if fen == "" {
		return "", fmt.Errorf("no position in %s", filepath.Base(path))
	}
	return fen, nil
}
