package gfont

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type Fonts struct {
	Notation font.Face // rank and file labels
	Big      font.Face // end of game message
}

func LoadFonts() (*Fonts, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}

	fonts := &Fonts{}
	fonts.Notation, err = opentype.NewFace(f, &opentype.FaceOptions{
		Size:    15,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}

	fonts.Big, err = opentype.NewFace(f, &opentype.FaceOptions{
		Size:    50,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}

	return fonts, nil
}

// Ascent converts a top-left text position into the baseline y used by text.Draw.
func Ascent(face font.Face) int {
	return face.Metrics().Ascent.Ceil()
}
