// Package game implements the board/game core of a go (the board game)
// kifu library: immutable board positions, play application with capture
// and suicide resolution, incremental Zobrist fingerprinting for ko and
// superko detection, and a small family of pluggable rule variants.
//
// Everything in this package is a pure value transformation. Positions
// and states are never mutated in place; operations return fresh
// snapshots, so earlier ones stay valid and may be shared freely.
package game

import "fmt"

// Colour is the colour of a point on the board.
type Colour int32

const (
	None Colour = iota
	Black
	White
)

// Opponent returns the colour of the opposing player.
func Opponent(c Colour) Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	panic("Unreachable")
}

// IsPlayer reports whether c is one of the two stone colours.
func IsPlayer(c Colour) bool { return c == Black || c == White }

// Format implements fmt.Formatter
func (c Colour) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v': // used in debug
		switch c {
		case None:
			fmt.Fprint(s, "None")
		case Black:
			fmt.Fprint(s, "Black")
		case White:
			fmt.Fprint(s, "White")
		}
	case 's': // used on boards
		switch c {
		case None:
			fmt.Fprint(s, "·")
		case Black:
			fmt.Fprint(s, "X")
		case White:
			fmt.Fprint(s, "O")
		}
	}
}

// Point is a zero-based (x, y) board coordinate.
type Point struct {
	X, Y int
}

// Eq returns true if both are equal
func (p Point) Eq(other Point) bool { return p.X == other.X && p.Y == other.Y }

func (p Point) add(other Point) Point { return Point{p.X + other.X, p.Y + other.Y} }

// Stone is a point occupied by a player's colour.
type Stone struct {
	Point
	Colour Colour
}

// Play is a single move by a player: either a stone placement or a pass.
type Play struct {
	Point
	Colour Colour
	pass   bool
}

// NewPlay makes a placement at (x, y).
func NewPlay(c Colour, x, y int) Play { return Play{Point: Point{x, y}, Colour: c} }

// NewPass makes a pass move.
func NewPass(c Colour) Play { return Play{Colour: c, pass: true} }

// IsPass reports whether the play is a pass.
func (p Play) IsPass() bool { return p.pass }

// Format implements fmt.Formatter
func (p Play) Format(s fmt.State, verb rune) {
	if p.pass {
		fmt.Fprintf(s, "%v@pass", p.Colour)
		return
	}
	fmt.Fprintf(s, "%v@(%d, %d)", p.Colour, p.X, p.Y)
}

var adjacents = [4]Point{
	{0, 1},
	{1, 0},
	{0, -1},
	{-1, 0},
}
