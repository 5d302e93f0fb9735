package base

import "fmt"

type Piece uint8

const (
	WKing        Piece = 19
	WQueen       Piece = 18
	WRook        Piece = 15
	WBishop      Piece = 14
	WKnight      Piece = 13
	WPawn        Piece = 11
	BKing        Piece = 9
	BQueen       Piece = 8
	BRook        Piece = 5
	BBishop      Piece = 4
	BKnight      Piece = 3
	BPawn        Piece = 1
	EmptyPiece   Piece = 99
	InvalidPiece Piece = 0
)

// AllPieces lists every drawable piece, white first.
var AllPieces = []Piece{
	WKing, WQueen, WRook, WBishop, WKnight, WPawn,
	BKing, BQueen, BRook, BBishop, BKnight, BPawn,
}

func (p Piece) String() string {
	if r := PieceLetter(p); r != '.' {
		return string(r)
	}
	if p == EmptyPiece {
		return "empty"
	}
	return "invalid"
}

func PieceIsWhite(p Piece) bool {
	return p >= WPawn && p <= WKing
}

func PieceIsBlack(p Piece) bool {
	return p >= BPawn && p <= BKing
}

// PieceFromLetter converts a placement letter (KQRBNP / kqrbnp).
func PieceFromLetter(p rune) Piece {
	switch p {
	case 'P':
		return WPawn
	case 'R':
		return WRook
	case 'N':
		return WKnight
	case 'B':
		return WBishop
	case 'Q':
		return WQueen
	case 'K':
		return WKing
	case 'p':
		return BPawn
	case 'r':
		return BRook
	case 'n':
		return BKnight
	case 'b':
		return BBishop
	case 'q':
		return BQueen
	case 'k':
		return BKing
	default:
		return InvalidPiece
	}
}

func PieceLetter(p Piece) rune {
	switch p {
	case WPawn:
		return 'P'
	case WKnight:
		return 'N'
	case WBishop:
		return 'B'
	case WRook:
		return 'R'
	case WQueen:
		return 'Q'
	case WKing:
		return 'K'
	case BPawn:
		return 'p'
	case BKnight:
		return 'n'
	case BBishop:
		return 'b'
	case BRook:
		return 'r'
	case BQueen:
		return 'q'
	case BKing:
		return 'k'
	default:
		return '.'
	}
}

// AssetName is the sprite file stem: colour prefix plus lower-case kind, e.g. "wk", "bp".
func AssetName(p Piece) string {
	r := PieceLetter(p)
	switch {
	case PieceIsWhite(p):
		return "w" + string(r+('a'-'A'))
	case PieceIsBlack(p):
		return "b" + string(r)
	default:
		return ""
	}
}

// Cell is a (column, row) pair in screen-grid space, (0,0) is the upper left square.
type Cell struct {
	Col int
	Row int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

func (c Cell) InBoard() bool {
	return c.Col >= 0 && c.Col < 8 && c.Row >= 0 && c.Row < 8
}

// Mirror returns the cell seen from the other side of the board.
func (c Cell) Mirror() Cell {
	return Cell{Col: 7 - c.Col, Row: 7 - c.Row}
}
