package ghelper

import (
	"chessboard/src/chesslib"
	"chessboard/src/logx"
	"chessboard/src/ui/gui/gbase/gconf"
)

// ---- GUI Context ----

type GUIGameContext struct {
	Builder      *chesslib.GameBuilder
	AssetsWorker *GUIAssetsWorker
	Config       *gconf.Config
	Logx         logx.Logger
}

func NewGUIGameContext(b *chesslib.GameBuilder, a *GUIAssetsWorker, c *gconf.Config, l logx.Logger) *GUIGameContext {
	return &GUIGameContext{
		Builder:      b,
		AssetsWorker: a,
		Config:       c,
		Logx:         l,
	}
}
