package gdraw

import (
	"chessboard/src/ui/gui/gbase"
	"chessboard/src/ui/gui/gbase/gconf"
	"chessboard/src/ui/gui/ghelper"
	"chessboard/src/ui/gui/ghelper/gclipboard"
	"chessboard/src/ui/gui/ghelper/gfont"
	"chessboard/src/ui/gui/gplay"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// GUIBoardDrawer is the only scene: one board, moves by drag and drop.
type GUIBoardDrawer struct {
	session *gplay.Session

	// end of game panel, rebuilt when the message changes
	bannerText string
	bannerImg  *ebiten.Image
}

func NewGUIBoardDrawer(ctx *ghelper.GUIGameContext) *GUIBoardDrawer {
	if !ctx.Builder.IsReady() {
		ctx.Builder.CreateClassic()
	}
	bd := &GUIBoardDrawer{}
	bd.resetSession(ctx, ctx.Config.Flipped)
	return bd
}

// resetSession starts input handling for the builder's current game.
func (bd *GUIBoardDrawer) resetSession(ctx *ghelper.GUIGameContext, flipped bool) {
	bd.session = gplay.NewSession(ctx.Builder, gplay.Mapper{Unit: gbase.Unit}, gplay.Options{
		Flipped:              flipped,
		HighlightFlippedOnly: ctx.Config.Highlight == gconf.HighlightFlipped,
	}, ctx.Builder.Logger())
}

func (bd *GUIBoardDrawer) Update(ctx *ghelper.GUIGameContext) error {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return gbase.ErrExit
	}

	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		bd.session.Press(mx, my)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		bd.session.Release(mx, my)
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		bd.session.Flip()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		ctx.Builder.CreateClassic()
		bd.resetSession(ctx, bd.session.Flipped())
		ctx.Logx.Infof("new game %s", ctx.Builder.ID())
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		copyText(ctx, "FEN", ctx.Builder.FEN())
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		copyText(ctx, "PGN", ctx.Builder.PGN())
	case inpututil.IsKeyJustPressed(ebiten.KeyV):
		bd.pasteFEN(ctx)
	}
	return nil
}

func copyText(ctx *ghelper.GUIGameContext, what, s string) {
	if err := gclipboard.WriteAll(s); err != nil {
		ctx.Logx.Warnf("error copy %s: %v", what, err)
		return
	}
	ctx.Logx.Debugf("%s copied to clipboard", what)
}

func (bd *GUIBoardDrawer) pasteFEN(ctx *ghelper.GUIGameContext) {
	fen, err := gclipboard.ReadAll()
	if err != nil {
		ctx.Logx.Warnf("error read clipboard: %v", err)
		return
	}
	bd.session.Cancel()
	if err := ctx.Builder.CreateFromFEN(fen); err != nil {
		ctx.Logx.Warnf("clipboard FEN ignored: %v", err)
		return
	}
	bd.resetSession(ctx, bd.session.Flipped())
	ctx.Logx.Infof("new game %s from FEN %s", ctx.Builder.ID(), fen)
}

func (bd *GUIBoardDrawer) Draw(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	mx, my := ebiten.CursorPosition()
	bd.DrawFrame(ctx, screen, bd.session.Frame(mx, my))
}

// DrawFrame paints a frame plan onto screen.
func (bd *GUIBoardDrawer) DrawFrame(ctx *ghelper.GUIGameContext, screen *ebiten.Image, f gplay.Frame) {
	aw := ctx.AssetsWorker
	screen.Fill(gbase.White)
	ghelper.DrawAt(screen, aw.Board(), 0, 0)

	notation := aw.Fonts().Notation
	asc := gfont.Ascent(notation)
	for _, l := range f.Files {
		text.Draw(screen, l.Text, notation, l.X, l.Y+asc, gbase.Black)
	}
	for _, l := range f.Ranks {
		text.Draw(screen, l.Text, notation, l.X, l.Y+asc, gbase.Black)
	}

	for _, p := range f.Highlights {
		ghelper.DrawAt(screen, aw.Highlight(), p.X, p.Y)
	}
	for _, sp := range f.Pieces {
		ghelper.DrawAt(screen, aw.Piece(sp.Piece), sp.X, sp.Y)
	}
	if f.Dragged != nil {
		ghelper.DrawAt(screen, aw.Piece(f.Dragged.Piece), f.Dragged.X, f.Dragged.Y)
	}

	if f.Ending != "" {
		bd.drawBanner(ctx, screen, f.Ending)
	}
}

func (bd *GUIBoardDrawer) drawBanner(ctx *ghelper.GUIGameContext, screen *ebiten.Image, msg string) {
	big := ctx.AssetsWorker.Fonts().Big
	bounds := text.BoundString(big, msg)
	const padX, padY = 24, 16

	if bd.bannerImg == nil || bd.bannerText != msg {
		bd.bannerImg = ghelper.RenderRoundedRect(bounds.Dx()+padX*2, bounds.Dy()+padY*2, 16, gbase.BannerBg, gbase.Black, 2)
		bd.bannerText = msg
	}
	// (BannerX, BannerY) is the top left of the text, bounds are relative to the baseline
	baseline := gbase.BannerY + gfont.Ascent(big)
	ghelper.DrawAt(screen, bd.bannerImg, gbase.BannerX+bounds.Min.X-padX, baseline+bounds.Min.Y-padY)
	text.Draw(screen, msg, big, gbase.BannerX, baseline, gbase.Black)
}
