package gimages

import (
	"fmt"
	"image"
	"path/filepath"
	"schack/src/base"
	"schack/ui/gui/gbase"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Sprites maps a piece character to its image. Built once, read-only after.
type Sprites map[base.Piece]*ebiten.Image

// LoadImageAssets loads every file of gbase.SpriteFiles from workdir. Any
// missing file fails the whole load.
func LoadImageAssets(workdir string) (Sprites, error) {
	sprites := make(Sprites, len(gbase.SpriteFiles))
	for piece, file := range gbase.SpriteFiles {
		img, _, err := ebitenutil.NewImageFromFile(filepath.Join(workdir, file))
		if err != nil {
			return nil, fmt.Errorf("load sprite %q for %c: %w", file, piece, err)
		}
		sprites[piece] = img
	}
	return sprites, nil
}

// LoadIcon returns the window icon in the form ebiten.SetWindowIcon wants.
func LoadIcon(path string) ([]image.Image, error) {
	_, img, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load icon %q: %w", path, err)
	}
	return []image.Image{img}, nil
}
