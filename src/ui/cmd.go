package ui

import (
	"chessboard/src/chesslib"
	"chessboard/src/ui/gui"
	"chessboard/src/ui/gui/gbase"
	"chessboard/src/ui/gui/ghelper/gdialog"
	"chessboard/src/ui/uicmd"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

const logfile string = "chessboard.log"

func RunGUI(c *cli.Command) error {
	var out io.Writer = os.Stdout
	if !c.Bool("console") {
		file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return fmt.Errorf("error open logfile: %w", err)
		}
		defer file.Close()
		out = file
	}
	logger := uicmd.GetLogger(out, c)
	defer logger.Sync()

	cfg, err := uicmd.GetConfig(c)
	if err != nil {
		logger.Errorf("error read config: %v", err)
		return fmt.Errorf("error read config: %w", err)
	}

	gb := chesslib.NewBuilderBoard(logger)
	if cfg.FEN != "" {
		if err := gb.CreateFromFEN(cfg.FEN); err != nil {
			logger.Errorf("error start position: %v", err)
			return err
		}
	} else {
		gb.CreateClassic()
	}

	g, err := gui.NewGUI(gb, cfg, logger)
	if err != nil {
		logger.Errorf("error init GUI: %v", err)
		gdialog.ShowError(gbase.WindowTitle, "error init GUI: %v", err)
		return fmt.Errorf("error init GUI: %w", err)
	}
	if err := g.Run(); err != nil && !errors.Is(err, gbase.ErrExit) {
		logger.Errorf("error GUI: %v", err)
		return err
	}
	return nil
}

func RunChessboard() error {
	return uicmd.NewCommand(RunGUI).Run(context.Background(), os.Args)
}
