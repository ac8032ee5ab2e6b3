package core

// Color represents a foreground color for a screen cell.
// The front end maps each value to a terminal color.
type Color uint8

// Colors used by the puzzle renderer.
const (
	ColorDefault Color = iota
	ColorWall
	ColorFloor
	ColorTarget
	ColorCrate
	ColorStored
	ColorPlayer
	ColorStatus
	ColorHint
)
