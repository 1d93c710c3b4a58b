package gdialog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadFEN(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "pos.fen")
	if err := os.WriteFile(good, []byte("\n7k/P7/8/8/8/8/8/K7 w - - 0 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	fen, err := ReadFEN(good)
	if err != nil || fen != "7k/P7/8/8/8/8/8/K7 w - - 0 1" {
		t.Fatalf("got %q, %v", fen, err)
	}

	empty := filepath.Join(dir, "empty.fen")
	if err := os.WriteFile(empty, []byte("  \n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFEN(empty); err == nil {
		t.Fatal("expected error for empty file")
	}
	if _, err := ReadFEN(filepath.Join(dir, "missing.fen")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
