package gimages

import (
	"bytes"
	"chessboard/src/base"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

const (
	BoardAsset     = "board"
	HighlightAsset = "highlight"
)

type Sprites struct {
	Pieces    map[base.Piece]image.Image
	Board     image.Image
	Highlight image.Image
}

// LoadSprites reads the 12 piece sprites, the board and the highlight overlay
// from workdir. Every asset is required. unit is the square size used to
// rasterize SVG fallbacks.
func LoadSprites(workdir string, unit int) (*Sprites, error) {
	s := &Sprites{Pieces: make(map[base.Piece]image.Image, len(base.AllPieces))}
	for _, p := range base.AllPieces {
		img, err := loadSprite(workdir, base.AssetName(p), unit)
		if err != nil {
			return nil, err
		}
		s.Pieces[p] = img
	}
	var err error
	if s.Board, err = loadSprite(workdir, BoardAsset, unit*8); err != nil {
		return nil, err
	}
	if s.Highlight, err = loadSprite(workdir, HighlightAsset, unit); err != nil {
		return nil, err
	}
	return s, nil
}

// loadSprite prefers <name>.png and falls back to <name>.svg.
func loadSprite(workdir, name string, size int) (image.Image, error) {
	pngPath := filepath.Join(workdir, name+".png")
	img, err := decodeImage(pngPath)
	if err == nil {
		return img, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load asset %s: %w", pngPath, err)
	}

	svgPath := filepath.Join(workdir, name+".svg")
	data, serr := os.ReadFile(svgPath)
	if serr != nil {
		return nil, fmt.Errorf("load asset %s: %w", pngPath, err)
	}
	img, serr = rasterizeSVG(data, size)
	if serr != nil {
		return nil, fmt.Errorf("load asset %s: %w", svgPath, serr)
	}
	return img, nil
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func rasterizeSVG(data []byte, size int) (image.Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid sprite size %d", size)
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	if icon.ViewBox.W <= 0 {
		icon.ViewBox.W = float64(size)
	}
	if icon.ViewBox.H <= 0 {
		icon.ViewBox.H = float64(size)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Transparent), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}
