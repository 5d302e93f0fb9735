package ghelper

import (
	"chessboard/src/base"
	"chessboard/src/ui/gui/gbase"
	"chessboard/src/ui/gui/ghelper/gfont"
	"chessboard/src/ui/gui/ghelper/gimages"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIAssetsWorker struct {
	fonts       *gfont.Fonts
	pieceImages map[base.Piece]*ebiten.Image
	board       *ebiten.Image
	highlight   *ebiten.Image
}

func NewGUIAssetsWorker(rootDirAssets string) (*GUIAssetsWorker, error) {
	sprites, err := gimages.LoadSprites(rootDirAssets, gbase.Unit)
	if err != nil {
		return nil, err
	}
	f, err := gfont.LoadFonts()
	if err != nil {
		return nil, err
	}

	aw := &GUIAssetsWorker{
		fonts:       f,
		pieceImages: make(map[base.Piece]*ebiten.Image, len(sprites.Pieces)),
		board:       ebiten.NewImageFromImage(sprites.Board),
		highlight:   ebiten.NewImageFromImage(sprites.Highlight),
	}
	for p, img := range sprites.Pieces {
		aw.pieceImages[p] = ebiten.NewImageFromImage(img)
	}
	return aw, nil
}

func (aw *GUIAssetsWorker) Piece(p base.Piece) *ebiten.Image {
	return aw.pieceImages[p]
}
func (aw *GUIAssetsWorker) Board() *ebiten.Image {
	return aw.board
}
func (aw *GUIAssetsWorker) Highlight() *ebiten.Image {
	return aw.highlight
}
func (aw *GUIAssetsWorker) Fonts() *gfont.Fonts {
	return aw.fonts
}
