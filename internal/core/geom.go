// Package core provides fundamental types and utilities shared by the puzzle
// engine and the terminal front end. It has no external dependencies
// (especially no Bubble Tea) so puzzle logic stays pure and testable.
package core

import "fmt"

// Coord is a cell position on a level grid.
// X increases to the right, Y increases downward (row index).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the neighbouring coordinate in direction d.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// Dir is one of the four cardinal directions.
type Dir uint8

const (
	DirDown Dir = iota // zero value: a fresh player faces the camera
	DirUp
	DirLeft
	DirRight
)

// Delta returns the (dx, dy) unit step for the direction.
func (d Dir) Delta() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// String returns a human-readable name for the direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Facing derives the direction encoded by a (dx, dy) step.
// The horizontal component is applied first and the vertical one last, so a
// (never produced) diagonal step would face vertically.
func Facing(current Dir, dx, dy int) Dir {
	d := current
	if dx < 0 {
		d = DirLeft
	} else if dx > 0 {
		d = DirRight
	}
	if dy < 0 {
		d = DirUp
	} else if dy > 0 {
		d = DirDown
	}
	return d
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
