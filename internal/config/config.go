// Package config provides YAML-based configuration loading for crates.
package config

// Config contains all user-tunable settings.
type Config struct {
	Paths   PathsConfig   `yaml:"paths"`
	Display DisplayConfig `yaml:"display"`
	Glyphs  GlyphsConfig  `yaml:"glyphs"`
}

// PathsConfig locates the files crates reads and writes.
// A leading ~ is expanded to the home directory.
type PathsConfig struct {
	Levels string `yaml:"levels"` // empty selects the built-in level set
	Scores string `yaml:"scores"`
	DB     string `yaml:"db"`  // solve history; empty disables it
	Log    string `yaml:"log"` // empty disables the log file
}

// DisplayConfig defines how the board is drawn.
type DisplayConfig struct {
	TickRate  int  `yaml:"tick_rate"`  // frames per second
	ShowHelp  bool `yaml:"show_help"`  // key help below the status bar
	CellWidth int  `yaml:"cell_width"` // terminal columns per cell, 1-3
	Color     bool `yaml:"color"`
}

// GlyphsConfig maps each cell kind to the text drawn for it.
// Glyphs shorter than the cell width are padded, longer ones are cut.
type GlyphsConfig struct {
	Wall           string `yaml:"wall"`
	Floor          string `yaml:"floor"`
	Target         string `yaml:"target"`
	Crate          string `yaml:"crate"`
	Stored         string `yaml:"stored"`
	Player         string `yaml:"player"`
	PlayerOnTarget string `yaml:"player_on_target"`
}

// Limits applied by Normalize.
const (
	MinTickRate  = 1
	MaxTickRate  = 120
	MinCellWidth = 1
	MaxCellWidth = 3
)

// Normalize replaces out-of-range values with defaults.
func (c *Config) Normalize() {
	def := Default()
	if c.Display.TickRate < MinTickRate || c.Display.TickRate > MaxTickRate {
		c.Display.TickRate = def.Display.TickRate
	}
	if c.Display.CellWidth < MinCellWidth || c.Display.CellWidth > MaxCellWidth {
		c.Display.CellWidth = def.Display.CellWidth
	}

	g, dg := &c.Glyphs, def.Glyphs
	for _, p := range []struct {
		v *string
		d string
	}{
		{&g.Wall, dg.Wall},
		{&g.Floor, dg.Floor},
		{&g.Target, dg.Target},
		{&g.Crate, dg.Crate},
		{&g.Stored, dg.Stored},
		{&g.Player, dg.Player},
		{&g.PlayerOnTarget, dg.PlayerOnTarget},
	} {
		if *p.v == "" {
			*p.v = p.d
		}
	}
}
