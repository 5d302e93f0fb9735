package uicmd

import (
	"chessboard/src/ui/gui/gbase/gconf"
	"context"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v3"
)

// runArgs runs the command tree and returns the config seen by the action.
func runArgs(t *testing.T, args ...string) *gconf.Config {
	t.Helper()
	var got *gconf.Config
	cmd := NewCommand(func(c *cli.Command) error {
		cfg, err := GetConfig(c)
		if err != nil {
			return err
		}
		got = cfg
		return nil
	})
	missing := filepath.Join(t.TempDir(), "none.yaml")
	full := append([]string{"chessboard", "--config", missing}, args...)
	if err := cmd.Run(context.Background(), full); err != nil {
		t.Fatalf("Run(%v): %v", full, err)
	}
	if got == nil {
		t.Fatalf("Run(%v): action not called", full)
	}
	return got
}

func TestFlagsReachEveryCommand(t *testing.T) {
	cases := [][]string{
		{"--flip"},
		{"--flip", "gui"},
		{"gui", "--flip"},
	}
	for _, args := range cases {
		if cfg := runArgs(t, args...); !cfg.Flipped {
			t.Errorf("%v: --flip lost", args)
		}
	}
}

func TestOverrides(t *testing.T) {
	fen := "8/8/8/8/8/8/k7/4K3 w - - 0 1"
	cfg := runArgs(t, "--assets", "sprites", "--fen", fen, "gui")
	if cfg.Assets != "sprites" || cfg.FEN != fen || cfg.Flipped {
		t.Fatalf("unexpected config %+v", cfg)
	}

	cfg = runArgs(t)
	if cfg.Assets != "assets" || cfg.FEN != "" || cfg.Highlight != gconf.HighlightAlways {
		t.Fatalf("defaults expected without flags, got %+v", cfg)
	}
}
