package gimages

import (
	"chessboard/src/base"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const redSquareSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">` +
	`<rect x="0" y="0" width="10" height="10" fill="#ff0000"/></svg>`

func writePNG(t *testing.T, path string, size int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			img.Set(x, y, color.RGBA{0x10, 0x20, 0x30, 0x40})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func fillAssets(t *testing.T, dir string, unit int) {
	t.Helper()
	for _, p := range base.AllPieces {
		writePNG(t, filepath.Join(dir, base.AssetName(p)+".png"), unit)
	}
	writePNG(t, filepath.Join(dir, BoardAsset+".png"), unit*8)
	writePNG(t, filepath.Join(dir, HighlightAsset+".png"), unit)
}

func TestLoadSpritesPNG(t *testing.T) {
	dir := t.TempDir()
	fillAssets(t, dir, 4)
	s, err := LoadSprites(dir, 4)
	if err != nil {
		t.Fatalf("LoadSprites: %v", err)
	}
	if len(s.Pieces) != 12 {
		t.Fatalf("expected 12 piece sprites, got %d", len(s.Pieces))
	}
	if s.Board.Bounds().Dx() != 32 || s.Highlight.Bounds().Dx() != 4 {
		t.Fatalf("unexpected sprite sizes %v %v", s.Board.Bounds(), s.Highlight.Bounds())
	}
}

func TestLoadSpritesMissing(t *testing.T) {
	dir := t.TempDir()
	fillAssets(t, dir, 4)
	if err := os.Remove(filepath.Join(dir, "bq.png")); err != nil {
		t.Fatalf("remove: %v", err)
	}
	_, err := LoadSprites(dir, 4)
	if err == nil {
		t.Fatalf("expected error for missing black queen")
	}
	if !strings.Contains(err.Error(), "bq.png") {
		t.Fatalf("error should name the missing file: %v", err)
	}
}

func TestLoadSpritesCorrupt(t *testing.T) {
	dir := t.TempDir()
	fillAssets(t, dir, 4)
	if err := os.WriteFile(filepath.Join(dir, "board.png"), []byte("not a png"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadSprites(dir, 4); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestSVGFallback(t *testing.T) {
	dir := t.TempDir()
	fillAssets(t, dir, 8)
	if err := os.Remove(filepath.Join(dir, "wk.png")); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "wk.svg"), []byte(redSquareSVG), 0644); err != nil {
		t.Fatalf("write svg: %v", err)
	}
	s, err := LoadSprites(dir, 8)
	if err != nil {
		t.Fatalf("LoadSprites: %v", err)
	}
	img := s.Pieces[base.WKing]
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Fatalf("svg not rasterized at unit size: %v", img.Bounds())
	}
	r, g, _, a := img.At(4, 4).RGBA()
	if r>>8 < 200 || g>>8 > 50 || a>>8 < 200 {
		t.Fatalf("expected red centre pixel, got r=%d g=%d a=%d", r>>8, g>>8, a>>8)
	}
}
