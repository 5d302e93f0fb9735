package gui

import (
	"chessboard/src/chesslib"
	"chessboard/src/logx"
	"chessboard/src/ui/gui/gbase"
	"chessboard/src/ui/gui/gbase/gconf"
	"chessboard/src/ui/gui/gdraw"
	"chessboard/src/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIProcessing struct {
	board *gdraw.GUIBoardDrawer
	ctx   *ghelper.GUIGameContext
}

func NewGUI(b *chesslib.GameBuilder, cfg *gconf.Config, logx logx.Logger) (*GUIProcessing, error) {
	as, err := ghelper.NewGUIAssetsWorker(cfg.Assets)
	if err != nil {
		return nil, err
	}
	ctx := ghelper.NewGUIGameContext(b, as, cfg, logx)
	return &GUIProcessing{board: gdraw.NewGUIBoardDrawer(ctx), ctx: ctx}, nil
}

func (gp *GUIProcessing) Run() error {
	ebiten.SetWindowSize(gbase.WindowW, gbase.WindowH)
	ebiten.SetWindowTitle(gbase.WindowTitle)
	ebiten.SetTPS(gbase.TPS)
	ebiten.SetWindowClosingHandled(true)
	return ebiten.RunGame(gp)
}

func (gp *GUIProcessing) Update() error {
	return gp.board.Update(gp.ctx)
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.board.Draw(gp.ctx, screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gbase.WindowW, gbase.WindowH
}
