package config

import (
	_ "embed"
)

//go:embed defaults/crates.yaml
var defaultYAML []byte

// Default returns the hard-coded configuration, used when even the
// embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Paths: PathsConfig{
			Levels: "",
			Scores: "~/.crates/scores.txt",
			DB:     "~/.crates/history.db",
			Log:    "~/.crates/crates.log",
		},
		Display: DisplayConfig{
			TickRate:  30,
			ShowHelp:  true,
			CellWidth: 2,
			Color:     true,
		},
		Glyphs: GlyphsConfig{
			Wall:           "##",
			Floor:          "  ",
			Target:         "..",
			Crate:          "[]",
			Stored:         "{}",
			Player:         "@@",
			PlayerOnTarget: "&&",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
