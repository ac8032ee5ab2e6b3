package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-crates/internal/core"
)

// Theme contains all configurable visual styles.
type Theme struct {
	// Board cells
	Wall   lipgloss.Style
	Floor  lipgloss.Style
	Target lipgloss.Style
	Crate  lipgloss.Style
	Stored lipgloss.Style
	Player lipgloss.Style

	// HUD
	Status lipgloss.Style
	Hint   lipgloss.Style
	Title  lipgloss.Style
	Help   lipgloss.Style

	// Overlay shown on pause, win and completion
	OverlayBorder lipgloss.Style
	OverlayTitle  lipgloss.Style
	OverlayText   lipgloss.Style
}

// DefaultTheme returns the default colored theme.
func DefaultTheme() Theme {
	return Theme{
		Wall:   lipgloss.NewStyle().Foreground(lipgloss.Color("130")),          // Brick
		Floor:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),          // Dark gray
		Target: lipgloss.NewStyle().Foreground(lipgloss.Color("204")),          // Pink
		Crate:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),          // Amber
		Stored: lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true), // Lime green
		Player: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true), // Bright cyan

		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("252")),
		Hint:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Title:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		OverlayBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("57")).
			Padding(0, 2),
		OverlayTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		OverlayText:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

// MonochromeTheme returns a theme without colors, for terminals where the
// user turned color off.
func MonochromeTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Wall:   plain,
		Floor:  plain,
		Target: plain,
		Crate:  plain,
		Stored: plain.Bold(true),
		Player: plain.Bold(true),

		Status: plain.Reverse(true),
		Hint:   plain,
		Title:  plain.Bold(true),
		Help:   plain,

		OverlayBorder: plain.Border(lipgloss.NormalBorder()).Padding(0, 2),
		OverlayTitle:  plain.Bold(true),
		OverlayText:   plain,
	}
}

// styleFor maps a screen color to its style in the theme.
func (t Theme) styleFor(c core.Color) lipgloss.Style {
	switch c {
	case core.ColorWall:
		return t.Wall
	case core.ColorFloor:
		return t.Floor
	case core.ColorTarget:
		return t.Target
	case core.ColorCrate:
		return t.Crate
	case core.ColorStored:
		return t.Stored
	case core.ColorPlayer:
		return t.Player
	case core.ColorStatus:
		return t.Status
	case core.ColorHint:
		return t.Hint
	default:
		return lipgloss.NewStyle()
	}
}
