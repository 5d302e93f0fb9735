package gconf

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultFile = "chessboard.yaml"

const (
	HighlightAlways  = "always"
	HighlightFlipped = "flipped" // last move shown only on a flipped board
)

type Config struct {
	Assets    string `yaml:"assets"`    // sprite directory
	Flipped   bool   `yaml:"flipped"`   // black at the bottom
	FEN       string `yaml:"fen"`       // start position, empty for classic
	Highlight string `yaml:"highlight"` // always/flipped
}

func defaultConfig() Config {
	return Config{
		Assets:    "assets",
		Flipped:   false,
		FEN:       "",
		Highlight: HighlightAlways,
	}
}

// NewGUIConfig reads path, a missing file gives the defaults.
func NewGUIConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultFile
	}

	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		def := defaultConfig()
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := defaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("error decode config %s: %w", path, err)
	}
	correctableConfig(&c)

	return &c, nil
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Assets == "" {
		c.Assets = def.Assets
	}
	if c.Highlight != HighlightAlways && c.Highlight != HighlightFlipped {
		c.Highlight = def.Highlight
	}
}
