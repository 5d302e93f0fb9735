package chesslib

import "github.com/corentings/chess/v2"

// Candidate identifies a legal move by its squares and promotion piece.
type Candidate struct {
	From  chess.Square
	To    chess.Square
	Promo chess.PieceType
}

// Oracle is the authoritative chess state. All rule knowledge lives behind it.
type Oracle interface {
	// ParseMove decodes a UCI string such as "e2e4" or "e7e8q". It fails
	// with ErrBadNotation for text that names no squares and with
	// ErrIllegalMove for a move not legal in the current position.
	ParseMove(uci string) (*chess.Move, error)
	LegalMoves() []Candidate
	// Apply pushes mv onto the move history; the state is unchanged on error.
	Apply(mv *chess.Move) error
	// SAN encodes mv for the current position, call it before Apply.
	SAN(mv *chess.Move) string
	// Placement is the board field of the current FEN.
	Placement() string
	LastMove() (from, to chess.Square, ok bool)

	FivefoldRepetition() bool
	SeventyFiveMoveRule() bool
	Stalemate() bool
	InsufficientMaterial() bool
	Checkmate() bool
	WhiteToMove() bool
}

// IsLegal reports whether the squares and promotion of mv match a legal move.
func IsLegal(o Oracle, mv *chess.Move) bool {
	if mv == nil {
		return false
	}
	for _, c := range o.LegalMoves() {
		if c.From == mv.S1() && c.To == mv.S2() && c.Promo == mv.Promo() {
			return true
		}
	}
	return false
}
