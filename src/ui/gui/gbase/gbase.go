package gbase

import (
	"errors"
	"image/color"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

// --- UI constants ---

const (
	Unit        int = 104 // square size in pixels
	BoardSize   int = Unit * 8
	WindowW     int = BoardSize
	WindowH     int = BoardSize
	TPS         int = 60
	WindowTitle     = "Basic Chessboard"

	// label offsets from the square corner
	FileLabelInsetX = 10
	FileLabelInsetY = 15
	RankLabelInset  = 5

	// end of game message position
	BannerX = 100
	BannerY = BoardSize / 3
)

// ---- Palette ----

var (
	White    = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Black    = color.RGBA{0x00, 0x00, 0x00, 0xff}
	BannerBg = color.RGBA{0xff, 0xff, 0xff, 0xcc}
)
