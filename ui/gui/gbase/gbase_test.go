package gbase

import (
	"schack/src/base"
	"testing"
)

func TestSpriteFilesCoverAllPieces(t *testing.T) {
	for _, p := range base.AllPieces {
		if SpriteFiles[p] == "" {
			t.Errorf("no sprite file for %q", p)
		}
	}
	if SpriteFiles[base.ShadowPiece] == "" {
		t.Error("no shadow sprite")
	}
	if len(SpriteFiles) != 13 {
		t.Errorf("expected 13 sprite files, got %d", len(SpriteFiles))
	}
	seen := map[string]bool{}
	for _, f := range SpriteFiles {
		if seen[f] {
			t.Errorf("duplicate sprite file %s", f)
		}
		seen[f] = true
	}
}

func TestPaletteFromString(t *testing.T) {
	if PaletteFromString("dark") != DarkPalette {
		t.Error("dark")
	}
	if PaletteFromString("classic") != ClassicPalette {
		t.Error("classic")
	}
	if PaletteFromString("neon") != ClassicPalette {
		t.Error("unknown falls back to classic")
	}
	if ClassicPalette.String() != "classic" || DarkPalette.String() != "dark" {
		t.Error("palette names")
	}
}

func TestTileColor(t *testing.T) {
	if ClassicPalette.TileColor(true) != ClassicPalette.Dark {
		t.Error("dark tile")
	}
	if ClassicPalette.TileColor(false) != ClassicPalette.Light {
		t.Error("light tile")
	}
	if ClassicPalette.Highlight.A == 0xff {
		t.Error("highlight must be translucent")
	}
}
