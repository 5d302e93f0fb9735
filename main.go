package main

import (
	"chessboard/src/ui"
	"fmt"
	"os"
)

func main() {
	if err := ui.RunChessboard(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
