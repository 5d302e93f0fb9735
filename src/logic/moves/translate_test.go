package moves

import (
	"chessboard/src/base"
	"chessboard/src/chesslib"
	"chessboard/src/logx"
	"testing"
)

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

func TestNotation(t *testing.T) {
	cases := []struct {
		from, to base.Cell
		flipped  bool
		want     string
	}{
		{base.Cell{Col: 4, Row: 6}, base.Cell{Col: 4, Row: 4}, false, "e2e4"},
		{base.Cell{Col: 0, Row: 0}, base.Cell{Col: 7, Row: 7}, false, "a8h1"},
		{base.Cell{Col: 3, Row: 6}, base.Cell{Col: 3, Row: 4}, true, "e7e5"},
		{base.Cell{Col: 0, Row: 0}, base.Cell{Col: 7, Row: 7}, true, "h1a8"},
		{base.Cell{Col: 8, Row: 0}, base.Cell{Col: 0, Row: 8}, false, "i8a0"},
	}
	for _, tc := range cases {
		if got := Notation(tc.from, tc.to, tc.flipped); got != tc.want {
			t.Errorf("Notation(%v, %v, %v) = %q, want %q", tc.from, tc.to, tc.flipped, got, tc.want)
		}
	}
}

func TestNotationOrientationsAgree(t *testing.T) {
	// the same physical square seen from both sides gives the same notation
	for col := 0; col < 8; col++ {
		for row := 0; row < 8; row++ {
			c := base.Cell{Col: col, Row: row}
			if Notation(c, c, false) != Notation(c.Mirror(), c.Mirror(), true) {
				t.Fatalf("cell %v disagrees with its mirror", c)
			}
		}
	}
}

func TestSubmitLegal(t *testing.T) {
	gb := newGame(t, "")
	res := Submit(gb, base.Cell{Col: 4, Row: 6}, base.Cell{Col: 4, Row: 4}, false)
	if !res.Applied() {
		t.Fatalf("e2e4 not applied: %+v", res)
	}
	if res.UCI != "e2e4" || res.SAN != "e4" {
		t.Fatalf("unexpected result %+v", res)
	}
	if gb.CountHalfMoves() != 1 {
		t.Fatalf("move not recorded in history")
	}

	// black replies from the flipped side: e7e5 is cell (3,6) -> (3,4)
	res = Submit(gb, base.Cell{Col: 3, Row: 6}, base.Cell{Col: 3, Row: 4}, true)
	if !res.Applied() || res.UCI != "e7e5" {
		t.Fatalf("flipped e7e5 failed: %+v", res)
	}
}

func TestSubmitRejected(t *testing.T) {
	gb := newGame(t, "")
	before := gb.Placement()

	res := Submit(gb, base.Cell{Col: 4, Row: 6}, base.Cell{Col: 4, Row: 3}, false)
	if res.Applied() {
		t.Fatalf("e2e5 was applied")
	}

	// empty square to empty square
	res = Submit(gb, base.Cell{Col: 4, Row: 4}, base.Cell{Col: 3, Row: 3}, false)
	if res.Applied() {
		t.Fatalf("empty square move was applied")
	}

	// pointer left the board
	res = Submit(gb, base.Cell{Col: 4, Row: 6}, base.Cell{Col: 9, Row: 4}, false)
	if res.Status != Malformed {
		t.Fatalf("expected malformed, got %v", res.Status)
	}
	res = Submit(gb, base.Cell{Col: 4, Row: 6}, base.Cell{Col: 4, Row: 12}, false)
	if res.Status != Malformed {
		t.Fatalf("expected malformed for negative rank, got %v", res.Status)
	}

	if gb.Placement() != before || gb.CountHalfMoves() != 0 {
		t.Fatalf("rejected moves changed the position")
	}
}

func TestSubmitEveryCellPair(t *testing.T) {
	for _, flipped := range []bool{false, true} {
		gb := newGame(t, "")
		before := gb.Placement()
		applied := 0
		for from := 0; from < 64; from++ {
			for to := 0; to < 64; to++ {
				f := base.Cell{Col: from % 8, Row: from / 8}
				d := base.Cell{Col: to % 8, Row: to / 8}
				res := Submit(gb, f, d, flipped)
				if !res.Applied() {
					continue
				}
				applied++
				// put the start position back for the next pair
				if err := gb.CreateFromFEN(before + " w KQkq - 0 1"); err != nil {
					t.Fatalf("CreateFromFEN: %v", err)
				}
			}
		}
		if applied != 20 {
			t.Fatalf("flipped=%v: expected 20 applied drags, got %d", flipped, applied)
		}
		if gb.Placement() != before {
			t.Fatalf("rejected drags changed the position")
		}
	}
}

func TestSubmitEmptyOrigin(t *testing.T) {
	gb := newGame(t, "")
	res := Submit(gb, base.Cell{Col: 4, Row: 4}, base.Cell{Col: 3, Row: 3}, false)
	if res.Status != Illegal || res.UCI != "e4d5" {
		t.Fatalf("expected illegal e4d5, got %+v", res)
	}
	// an empty square on the last rank must not try a promotion either
	gb = newGame(t, "8/4P3/8/8/8/8/k7/4K3 w - - 0 1")
	res = Submit(gb, base.Cell{Col: 3, Row: 1}, base.Cell{Col: 3, Row: 0}, false)
	if res.Status != Illegal || res.UCI != "d7d8" {
		t.Fatalf("expected illegal d7d8, got %+v", res)
	}
}

func TestSubmitPromotesToQueen(t *testing.T) {
	gb := newGame(t, "8/4P3/8/8/8/8/k7/4K3 w - - 0 1")
	res := Submit(gb, base.Cell{Col: 4, Row: 1}, base.Cell{Col: 4, Row: 0}, false)
	if !res.Applied() {
		t.Fatalf("promotion not applied: %+v", res)
	}
	if res.UCI != "e7e8q" {
		t.Fatalf("expected queen promotion, got %q", res.UCI)
	}
	pl, err := base.ParsePlacement(gb.Placement())
	if err != nil {
		t.Fatalf("ParsePlacement: %v", err)
	}
	if got := pl.PieceAt(base.Cell{Col: 4, Row: 0}); got != base.WQueen {
		t.Fatalf("e8 holds %v, want white queen", got)
	}
}

func TestStatusString(t *testing.T) {
	if Applied.String() != "applied" || Malformed.String() != "malformed" || Illegal.String() != "illegal" {
		t.Fatalf("unexpected status names")
	}
}
