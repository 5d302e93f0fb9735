package base

import (
	"fmt"
	"strings"
)

// Placement is the board part of a FEN split into its 8 rank strings, rank 8 first.
type Placement [8]string

// ParsePlacement accepts either a bare placement field or a full FEN.
func ParsePlacement(s string) (Placement, error) {
	var pl Placement
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return pl, fmt.Errorf("empty placement")
	}
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return pl, fmt.Errorf("invalid placement %q: %d ranks", fields[0], len(ranks))
	}
	for i, r := range ranks {
		n := 0
		for _, ch := range r {
			switch {
			case ch >= '1' && ch <= '8':
				n += int(ch - '0')
			case PieceFromLetter(ch) != InvalidPiece:
				n++
			default:
				return pl, fmt.Errorf("invalid placement %q: bad symbol %q", fields[0], ch)
			}
		}
		if n != 8 {
			return pl, fmt.Errorf("invalid placement %q: rank %d has %d squares", fields[0], 8-i, n)
		}
		pl[i] = r
	}
	return pl, nil
}

// Flip returns the placement as seen from black: ranks in reverse order
// and every rank string reversed.
func (pl Placement) Flip() Placement {
	var out Placement
	for i, r := range pl {
		rs := []rune(r)
		for a, b := 0, len(rs)-1; a < b; a, b = a+1, b-1 {
			rs[a], rs[b] = rs[b], rs[a]
		}
		out[7-i] = string(rs)
	}
	return out
}

// Walk calls fn for every piece in screen order, top row first, left to right.
// Digits advance the column cursor by their value.
func (pl Placement) Walk(fn func(c Cell, p Piece)) {
	for row, r := range pl {
		col := 0
		for _, ch := range r {
			if ch >= '0' && ch <= '9' {
				col += int(ch - '0')
				continue
			}
			fn(Cell{Col: col, Row: row}, PieceFromLetter(ch))
			col++
		}
	}
}

// PieceAt returns EmptyPiece for an empty cell and InvalidPiece outside the board.
func (pl Placement) PieceAt(c Cell) Piece {
	if !c.InBoard() {
		return InvalidPiece
	}
	found := EmptyPiece
	pl.Walk(func(cc Cell, p Piece) {
		if cc == c {
			found = p
		}
	})
	return found
}
