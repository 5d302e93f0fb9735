package gplay

import (
	"chessboard/src/base"
	"chessboard/src/chesslib"
	"chessboard/src/ui/gui/gbase"
	"image"
	"strconv"
)

type Label struct {
	Text string
	X, Y int // top-left
}

type Sprite struct {
	Piece base.Piece
	X, Y  int
}

// Frame is everything one redraw puts on screen, in drawing order:
// board, labels, highlights, pieces, dragged piece, ending message.
type Frame struct {
	Files      []Label
	Ranks      []Label
	Highlights []image.Point
	Pieces     []Sprite
	Dragged    *Sprite
	Ending     string
}

// Frame plans a redraw for the pointer at (cursorX, cursorY).
func (s *Session) Frame(cursorX, cursorY int) Frame {
	var f Frame
	unit := s.mapper.Unit

	f.Files, f.Ranks = s.labels()

	if from, to, ok := s.oracle.LastMove(); ok && (s.flipped || !s.flippedMarks) {
		for _, c := range []base.Cell{chesslib.SquareToCell(from), chesslib.SquareToCell(to)} {
			if s.flipped {
				c = c.Mirror()
			}
			f.Highlights = append(f.Highlights, s.mapper.Origin(c))
		}
	}

	pl, err := base.ParsePlacement(s.oracle.Placement())
	if err == nil {
		if s.flipped {
			pl = pl.Flip()
		}
		dragging := s.dragging && s.pending.From != nil
		pl.Walk(func(c base.Cell, p base.Piece) {
			if dragging && c == *s.pending.From {
				f.Dragged = &Sprite{Piece: p, X: cursorX - unit/2, Y: cursorY - unit/2}
				return
			}
			o := s.mapper.Origin(c)
			f.Pieces = append(f.Pieces, Sprite{Piece: p, X: o.X, Y: o.Y})
		})
	}

	if msg, ok := s.Ending(); ok {
		f.Ending = msg
	}
	return f
}

// labels puts file letters along the bottom edge and rank digits down the
// left edge, matching the orientation of the squares.
func (s *Session) labels() ([]Label, []Label) {
	unit := s.mapper.Unit
	files := make([]Label, 0, 8)
	ranks := make([]Label, 0, 8)
	for i := 0; i < 8; i++ {
		file := rune('a' + i)
		rank := 8 - i
		if s.flipped {
			file = rune('h' - i)
			rank = 1 + i
		}
		files = append(files, Label{
			Text: string(file),
			X:    (i+1)*unit - gbase.FileLabelInsetX,
			Y:    8*unit - gbase.FileLabelInsetY,
		})
		ranks = append(ranks, Label{
			Text: strconv.Itoa(rank),
			X:    gbase.RankLabelInset,
			Y:    i*unit + gbase.RankLabelInset,
		})
	}
	return files, ranks
}
