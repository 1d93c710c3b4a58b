package gfont

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type Fonts struct {
	Status font.Face
	Button font.Face
}

// LoadFonts builds faces scaled to the tile size.
func LoadFonts(tile int) (*Fonts, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, err
	}

	fonts := &Fonts{}
	// roughly 30px on 128px tiles
	fonts.Status, err = opentype.NewFace(bold, &opentype.FaceOptions{
		Size:    float64(tile) * 0.24,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}

	fonts.Button, err = opentype.NewFace(regular, &opentype.FaceOptions{
		Size:    float64(tile) * 0.2,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}

	return fonts, nil
}
