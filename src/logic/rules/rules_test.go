package rules

import (
	"chessboard/src/chesslib"
	"chessboard/src/logx"
	"testing"
)

// statusOracle answers only the status predicates.
type statusOracle struct {
	chesslib.Oracle
	fivefold, seventyFive, stalemate, insufficient, checkmate bool
	whiteToMove                                               bool
}

func (s statusOracle) FivefoldRepetition() bool   { return s.fivefold }
func (s statusOracle) SeventyFiveMoveRule() bool  { return s.seventyFive }
func (s statusOracle) Stalemate() bool            { return s.stalemate }
func (s statusOracle) InsufficientMaterial() bool { return s.insufficient }
func (s statusOracle) Checkmate() bool            { return s.checkmate }
func (s statusOracle) WhiteToMove() bool          { return s.whiteToMove }

func TestEndingPriority(t *testing.T) {
	cases := []struct {
		name string
		o    statusOracle
		want string
		ok   bool
	}{
		{"none", statusOracle{}, "", false},
		{"stalemate beats insufficient material", statusOracle{stalemate: true, insufficient: true}, MsgStalemate, true},
		{"fivefold first", statusOracle{fivefold: true, seventyFive: true, checkmate: true}, MsgFivefold, true},
		{"seventy-five before stalemate", statusOracle{seventyFive: true, stalemate: true}, MsgSeventyFive, true},
		{"insufficient before checkmate", statusOracle{insufficient: true, checkmate: true}, MsgInsufficient, true},
		{"black mated", statusOracle{checkmate: true, whiteToMove: false}, "Checkmate White Wins.", true},
		{"white mated", statusOracle{checkmate: true, whiteToMove: true}, "Checkmate Black Wins.", true},
	}
	for _, tc := range cases {
		got, ok := Ending(tc.o)
		if got != tc.want || ok != tc.ok {
			t.Errorf("%s: Ending = (%q, %v), want (%q, %v)", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}

func newGame(t *testing.T, fen string) *chesslib.GameBuilder {
	t.Helper()
	gb := chesslib.NewBuilderBoard(logx.NewNopLogx())
	if fen == "" {
		gb.CreateClassic()
		return gb
	}
	if err := gb.CreateFromFEN(fen); err != nil {
		t.Fatalf("CreateFromFEN: %v", err)
	}
	return gb
}

func TestEndingWithOracle(t *testing.T) {
	if msg, ok := Ending(newGame(t, "")); ok {
		t.Fatalf("start position reported ending %q", msg)
	}

	mated := newGame(t, "rn1qkbnr/pbpp1Qpp/1p6/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 1")
	if msg, _ := Ending(mated); msg != "Checkmate White Wins." {
		t.Fatalf("got %q", msg)
	}

	// king and bishop against king, black to move has no move
	stale := newGame(t, "k7/2K5/8/8/8/4B3/8/8 b - - 0 1")
	if msg, _ := Ending(stale); msg != MsgStalemate {
		t.Fatalf("got %q", msg)
	}
}

func TestFoolsMate(t *testing.T) {
	gb := newGame(t, "")
	for _, s := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		mv, err := gb.ParseMove(s)
		if err != nil {
			t.Fatalf("ParseMove(%s): %v", s, err)
		}
		if err := gb.Apply(mv); err != nil {
			t.Fatalf("Apply(%s): %v", s, err)
		}
	}
	if msg, _ := Ending(gb); msg != "Checkmate Black Wins." {
		t.Fatalf("got %q", msg)
	}
}
