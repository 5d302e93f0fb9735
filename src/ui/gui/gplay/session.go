package gplay

import (
	"chessboard/src/base"
	"chessboard/src/chesslib"
	"chessboard/src/logic/moves"
	"chessboard/src/logic/rules"
	"chessboard/src/logx"
)

// PendingMove holds the cells of the press and the release, either may be unset.
type PendingMove struct {
	From *base.Cell
	To   *base.Cell
}

// Session is the transient input state of one board: orientation, pending
// move and drag flag. The position itself always comes from the oracle.
type Session struct {
	oracle       chesslib.Oracle
	mapper       Mapper
	flipped      bool
	flippedMarks bool // last move highlight only on a flipped board
	pending      PendingMove
	dragging     bool
	logx         logx.Logger
}

type Options struct {
	Flipped bool
	// HighlightFlippedOnly restores the old behaviour of marking the last
	// move only when the board is flipped.
	HighlightFlippedOnly bool
}

func NewSession(o chesslib.Oracle, m Mapper, opts Options, l logx.Logger) *Session {
	return &Session{
		oracle:       o,
		mapper:       m,
		flipped:      opts.Flipped,
		flippedMarks: opts.HighlightFlippedOnly,
		logx:         l,
	}
}

func (s *Session) Flipped() bool {
	return s.flipped
}

func (s *Session) Dragging() bool {
	return s.dragging
}

func (s *Session) Pending() PendingMove {
	return s.pending
}

// Flip turns the board around. A drag in progress is dropped.
func (s *Session) Flip() {
	s.flipped = !s.flipped
	s.Cancel()
	s.logx.Debugf("board flipped: %v", s.flipped)
}

// Cancel forgets the pending move and the drag.
func (s *Session) Cancel() {
	s.pending = PendingMove{}
	s.dragging = false
}

// Press starts a drag at the pointer position.
func (s *Session) Press(px, py int) {
	c := s.mapper.Cell(px, py)
	s.pending = PendingMove{From: &c}
	s.dragging = true
}

// Release drops the dragged piece and submits the move. The pending move
// is reset whatever the outcome.
func (s *Session) Release(px, py int) moves.Result {
	c := s.mapper.Cell(px, py)
	s.pending.To = &c
	defer s.Cancel()

	if s.pending.From == nil {
		return moves.Result{Status: moves.Malformed}
	}
	res := moves.Submit(s.oracle, *s.pending.From, c, s.flipped)
	if res.Applied() {
		s.logx.Infof("Move: %s Alg: %s", res.UCI, res.SAN)
	} else {
		s.logx.Debugf("move %s not taken: %s", res.UCI, res.Status)
	}
	return res
}

func (s *Session) Ending() (string, bool) {
	return rules.Ending(s.oracle)
}
