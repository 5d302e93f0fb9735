package chesslib

import (
	"chessboard/src/base"
	"chessboard/src/logx"
	"errors"
	"fmt"
	"strings"

	"github.com/corentings/chess/v2"
	"github.com/google/uuid"
)

var (
	ErrNoGame      = errors.New("game is not created")
	ErrBadNotation = errors.New("bad move notation")
	ErrIllegalMove = errors.New("illegal move")
)

// at first use Create* methods
type GameBuilder struct {
	game   *chess.Game
	id     string
	logger logx.Logger
}

func NewBuilderBoard(logger logx.Logger) *GameBuilder {
	return &GameBuilder{logger: logger}
}

func (gb *GameBuilder) CreateClassic() {
	gb.reset(chess.NewGame())
	gb.logger.Debugf("create classic game %s", gb.id)
}

func (gb *GameBuilder) CreateFromFEN(fen string) error {
	opt, err := chess.FEN(strings.TrimSpace(fen))
	if err != nil {
		return fmt.Errorf("error parse FEN: %w", err)
	}
	gb.reset(chess.NewGame(opt))
	gb.logger.Debugf("create game %s by FEN: %v", gb.id, fen)
	return nil
}

func (gb *GameBuilder) reset(g *chess.Game) {
	gb.game = g
	gb.id = uuid.NewString()
}

// Logger tags every line with the id of the current game.
func (gb *GameBuilder) Logger() logx.Logger {
	return gb.logger.With("game", gb.id)
}

// ID changes on every Create* call.
func (gb *GameBuilder) ID() string {
	return gb.id
}

func (gb *GameBuilder) IsReady() bool {
	return gb.game != nil
}

func (gb *GameBuilder) FEN() string {
	if gb.game == nil {
		return ""
	}
	return gb.game.FEN()
}

// PGN of the moves played so far
func (gb *GameBuilder) PGN() string {
	if gb.game == nil {
		return ""
	}
	return gb.game.String()
}

func (gb *GameBuilder) CountHalfMoves() int {
	if gb.game == nil {
		return 0
	}
	return len(gb.game.Moves())
}

// ---- Oracle ----

func (gb *GameBuilder) ParseMove(uci string) (*chess.Move, error) {
	if gb.game == nil {
		return nil, ErrNoGame
	}
	c, ok := ParseCandidate(uci)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBadNotation, uci)
	}
	// the decoder panics on an empty origin square, only legal moves reach it
	if !gb.hasCandidate(c) {
		return nil, fmt.Errorf("%w: %s", ErrIllegalMove, uci)
	}
	return chess.UCINotation{}.Decode(gb.game.Position(), uci)
}

func (gb *GameBuilder) hasCandidate(c Candidate) bool {
	for _, l := range gb.LegalMoves() {
		if l == c {
			return true
		}
	}
	return false
}

// ParseCandidate reads the squares and promotion of a UCI string without
// looking at a position.
func ParseCandidate(uci string) (Candidate, bool) {
	if !wellFormedUCI(uci) {
		return Candidate{}, false
	}
	c := Candidate{From: uciSquare(uci[0:2]), To: uciSquare(uci[2:4]), Promo: chess.NoPieceType}
	if len(uci) == 5 {
		c.Promo = promoPieces[uci[4]]
	}
	return c, true
}

var promoPieces = map[byte]chess.PieceType{
	'q': chess.Queen,
	'r': chess.Rook,
	'b': chess.Bishop,
	'n': chess.Knight,
}

func uciSquare(s string) chess.Square {
	return chess.NewSquare(chess.File(s[0]-'a'), chess.Rank(s[1]-'1'))
}

// wellFormedUCI checks squares inside a-h/1-8 and an optional promotion letter.
func wellFormedUCI(s string) bool {
	if len(s) != 4 && len(s) != 5 {
		return false
	}
	for i := 0; i < 4; i += 2 {
		if s[i] < 'a' || s[i] > 'h' || s[i+1] < '1' || s[i+1] > '8' {
			return false
		}
	}
	return len(s) == 4 || strings.ContainsRune("qrbn", rune(s[4]))
}

func (gb *GameBuilder) LegalMoves() []Candidate {
	if gb.game == nil {
		return nil
	}
	var out []Candidate
	for _, m := range gb.game.ValidMoves() {
		out = append(out, Candidate{From: m.S1(), To: m.S2(), Promo: m.Promo()})
	}
	return out
}

func (gb *GameBuilder) Apply(mv *chess.Move) error {
	if gb.game == nil {
		return ErrNoGame
	}
	if err := gb.game.Move(mv, nil); err != nil {
		return fmt.Errorf("error apply move %s: %w", mv, err)
	}
	return nil
}

func (gb *GameBuilder) SAN(mv *chess.Move) string {
	if gb.game == nil || mv == nil {
		return ""
	}
	return chess.AlgebraicNotation{}.Encode(gb.game.Position(), mv)
}

func (gb *GameBuilder) Placement() string {
	fen := gb.FEN()
	if fen == "" {
		return ""
	}
	return strings.Fields(fen)[0]
}

func (gb *GameBuilder) LastMove() (chess.Square, chess.Square, bool) {
	if gb.game == nil {
		return chess.NoSquare, chess.NoSquare, false
	}
	moves := gb.game.Moves()
	if len(moves) == 0 {
		return chess.NoSquare, chess.NoSquare, false
	}
	mv := moves[len(moves)-1]
	return mv.S1(), mv.S2(), true
}

// ---- Status ----

func (gb *GameBuilder) FivefoldRepetition() bool {
	if gb.game == nil {
		return false
	}
	cur := repetitionKey(gb.game.FEN())
	n := 0
	for _, p := range gb.game.Positions() {
		if repetitionKey(p.String()) == cur {
			n++
		}
	}
	return n >= 5
}

// repetitionKey drops the move clocks from a FEN
func repetitionKey(fen string) string {
	f := strings.Fields(fen)
	if len(f) > 4 {
		f = f[:4]
	}
	return strings.Join(f, " ")
}

func (gb *GameBuilder) SeventyFiveMoveRule() bool {
	if gb.game == nil {
		return false
	}
	// a mate or stalemate on the 150th half move is reported as such
	return gb.game.Position().HalfMoveClock() >= 150 && len(gb.game.ValidMoves()) > 0
}

func (gb *GameBuilder) Stalemate() bool {
	if gb.game == nil {
		return false
	}
	return gb.game.Position().Status() == chess.Stalemate
}

func (gb *GameBuilder) InsufficientMaterial() bool {
	if gb.game == nil {
		return false
	}
	return insufficientMaterial(gb.game.Position().Board().SquareMap())
}

// insufficientMaterial is true for king against king, a single minor piece,
// or bishops only with all of them on one square colour.
func insufficientMaterial(pieces map[chess.Square]chess.Piece) bool {
	kings := map[chess.Color]int{}
	count := map[chess.PieceType]int{}
	bishopColours := map[bool]int{}
	for sq, p := range pieces {
		switch p.Type() {
		case chess.Queen, chess.Rook, chess.Pawn:
			return false
		case chess.King:
			kings[p.Color()]++
		case chess.Bishop:
			bishopColours[(int(sq.File())+int(sq.Rank()))%2 == 0]++
		}
		count[p.Type()]++
	}
	if kings[chess.White] == 0 || kings[chess.Black] == 0 {
		return false
	}
	minors := count[chess.Bishop] + count[chess.Knight]
	if minors <= 1 {
		return true
	}
	return count[chess.Knight] == 0 && len(bishopColours) == 1
}

func (gb *GameBuilder) Checkmate() bool {
	if gb.game == nil {
		return false
	}
	return gb.game.Position().Status() == chess.Checkmate
}

func (gb *GameBuilder) WhiteToMove() bool {
	if gb.game == nil {
		return true
	}
	return gb.game.Position().Turn() == chess.White
}

// ---- Squares ----

// SquareToCell maps a board square to its screen cell in normal orientation.
func SquareToCell(sq chess.Square) base.Cell {
	return base.Cell{Col: int(sq.File()), Row: 7 - int(sq.Rank())}
}
