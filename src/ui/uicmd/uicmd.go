package uicmd

import (
	"chessboard/src/logx"
	"chessboard/src/ui/gui/gbase/gconf"
	"context"
	"io"

	"github.com/urfave/cli/v3"
)

func GetLogger(w io.Writer, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("level")),
		c.Bool("dev"),
		c.Bool("console"),
	)
	l.InitLogger(w)
	return l
}

// GetConfig reads the config file and applies the command line overrides.
func GetConfig(c *cli.Command) (*gconf.Config, error) {
	cfg, err := gconf.NewGUIConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("assets") {
		cfg.Assets = c.String("assets")
	}
	if c.IsSet("flip") {
		cfg.Flipped = c.Bool("flip")
	}
	if c.IsSet("fen") {
		cfg.FEN = c.String("fen")
	}
	return cfg, nil
}

// NewCommand builds the command tree, run starts the board for both the
// root command and the gui subcommand.
func NewCommand(run func(c *cli.Command) error) *cli.Command {
	df := &cli.BoolFlag{
		Name:    "dev",
		Aliases: []string{"d"},
		Usage:   "dev encode log",
	}
	lf := &cli.StringFlag{
		Name:        "level",
		Aliases:     []string{"l"},
		Usage:       "level log",
		DefaultText: "info",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console log",
	}
	conff := &cli.StringFlag{
		Name:  "config",
		Usage: "path to YAML config",
		Value: gconf.DefaultFile,
	}
	ff := &cli.StringFlag{
		Name:  "fen",
		Usage: "string FEN format of the start position",
	}
	fl := &cli.BoolFlag{
		Name:  "flip",
		Usage: "black at the bottom",
	}
	af := &cli.StringFlag{
		Name:  "assets",
		Usage: "directory with piece, board and highlight sprites",
	}
	// root flags are persistent, gui reads them through its lineage
	guiff := []cli.Flag{df, lf, cf, conff, ff, fl, af}

	action := func(ctx context.Context, c *cli.Command) error {
		return run(c)
	}
	return &cli.Command{
		Name:  "chessboard",
		Usage: "drag and drop chessboard",
		Flags: guiff,
		Commands: []*cli.Command{
			{
				Name:   "gui",
				Action: action,
			},
		},
		Action: action,
	}
}
