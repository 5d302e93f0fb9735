package moves

import (
	"chessboard/src/base"
	"chessboard/src/chesslib"
	"errors"
	"strconv"
)

type Status uint8

const (
	Applied Status = iota
	Malformed
	Illegal
)

func (s Status) String() string {
	switch s {
	case Applied:
		return "applied"
	case Malformed:
		return "malformed"
	case Illegal:
		return "illegal"
	default:
		return "unknown"
	}
}

// Result of one submission. UCI is what was sent to the oracle, SAN is only set when Applied.
type Result struct {
	Status Status
	UCI    string
	SAN    string
	Err    error
}

func (r Result) Applied() bool {
	return r.Status == Applied
}

// Notation converts a screen cell pair into coordinate notation.
// Normal board: file 'a'+col, rank 8-row. Flipped: file 'h'-col, rank 1+row.
// No range checks: cells off the board give strings the oracle rejects.
func Notation(from, to base.Cell, flipped bool) string {
	return square(from, flipped) + square(to, flipped)
}

func square(c base.Cell, flipped bool) string {
	if flipped {
		return string(rune('h'-c.Col)) + strconv.Itoa(1+c.Row)
	}
	return string(rune('a'+c.Col)) + strconv.Itoa(8-c.Row)
}

// Submit plays from→to on the oracle if it is legal. A pawn reaching the
// last rank without a promotion piece is promoted to a queen.
// The oracle is left untouched unless the result is Applied.
func Submit(o chesslib.Oracle, from, to base.Cell, flipped bool) Result {
	uci := Notation(from, to, flipped)
	mv, err := o.ParseMove(uci)
	switch {
	case err == nil:
	case errors.Is(err, chesslib.ErrIllegalMove):
		if !queenPromotion(o, uci) {
			return Result{Status: Illegal, UCI: uci, Err: err}
		}
		if mv, err = o.ParseMove(uci + "q"); err != nil {
			return Result{Status: Illegal, UCI: uci, Err: err}
		}
		uci += "q"
	default:
		return Result{Status: Malformed, UCI: uci, Err: err}
	}
	if !chesslib.IsLegal(o, mv) {
		return Result{Status: Illegal, UCI: uci}
	}
	san := o.SAN(mv)
	if err := o.Apply(mv); err != nil {
		return Result{Status: Illegal, UCI: uci, Err: err}
	}
	return Result{Status: Applied, UCI: uci, SAN: san}
}

// queenPromotion reports whether uci with a queen appended is a legal move.
func queenPromotion(o chesslib.Oracle, uci string) bool {
	c, ok := chesslib.ParseCandidate(uci + "q")
	if !ok {
		return false
	}
	for _, l := range o.LegalMoves() {
		if l == c {
			return true
		}
	}
	return false
}
