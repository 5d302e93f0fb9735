package rules

import "chessboard/src/chesslib"

const (
	MsgFivefold     = "Game drawn by fivefold repetition."
	MsgSeventyFive  = "Game drawn by seventy-five move rule."
	MsgStalemate    = "Game drawn by stalemate."
	MsgInsufficient = "Game drawn by insufficient material."
)

// CheckmateMessage names the winner, the side that is not to move.
func CheckmateMessage(whiteToMove bool) string {
	winner := "White"
	if whiteToMove {
		winner = "Black"
	}
	return "Checkmate " + winner + " Wins."
}

// Ending returns the message of the first ending condition that holds.
// Order matters: a stalemate with bare kings and a minor piece reports stalemate.
func Ending(o chesslib.Oracle) (string, bool) {
	switch {
	case o.FivefoldRepetition():
		return MsgFivefold, true
	case o.SeventyFiveMoveRule():
		return MsgSeventyFive, true
	case o.Stalemate():
		return MsgStalemate, true
	case o.InsufficientMaterial():
		return MsgInsufficient, true
	case o.Checkmate():
		return CheckmateMessage(o.WhiteToMove()), true
	}
	return "", false
}
