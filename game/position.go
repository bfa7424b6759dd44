package game

import (
	"fmt"

	"github.com/pkg/errors"
)

// Position is a single board snapshot.
//
// A Position is immutable: mutating operations return a fresh Position
// with a copied grid, never aliasing the backing storage. That keeps
// earlier snapshots valid, so move trees and undo stacks can hold them
// and multiple goroutines can read them without locking.
type Position struct {
	rows, cols int
	grid       []Colour
}

// NewPosition returns an all-empty rows×cols position.
func NewPosition(rows, cols int) (*Position, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.WithMessagef(ErrBoardSize, "%d×%d", rows, cols)
	}
	return &Position{rows: rows, cols: cols, grid: make([]Colour, rows*cols)}, nil
}

// NewPositionFromGrid builds a position from a matrix of colours,
// indexed grid[y][x]. The input must be rectangular and non-empty.
func NewPositionFromGrid(grid [][]Colour) (*Position, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, errors.WithMessage(ErrGridShape, "empty input")
	}
	rows, cols := len(grid), len(grid[0])
	p := &Position{rows: rows, cols: cols, grid: make([]Colour, rows*cols)}
	for y, row := range grid {
		if len(row) != cols {
			return nil, errors.WithMessagef(ErrGridShape, "row %d has %d cells, want %d", y, len(row), cols)
		}
		copy(p.grid[y*cols:], row)
	}
	return p, nil
}

// Rows returns the number of rows.
func (p *Position) Rows() int { return p.rows }

// Cols returns the number of columns.
func (p *Position) Cols() int { return p.cols }

// IsOnBoard reports whether (x, y) is a valid board coordinate. It is
// the single bounds predicate every other operation relies on.
func (p *Position) IsOnBoard(x, y int) bool {
	return x >= 0 && x < p.cols && y >= 0 && y < p.rows
}

// Get returns the colour at (x, y). The second return value is false
// when the coordinate is off the board, so callers can probe neighbour
// liveness without a bounds check of their own.
func (p *Position) Get(x, y int) (Colour, bool) {
	if !p.IsOnBoard(x, y) {
		return None, false
	}
	return p.grid[y*p.cols+x], true
}

// Set returns a new position with the cell at (x, y) set to c. Unlike
// Get, mutating an off-board cell is a caller error.
func (p *Position) Set(x, y int, c Colour) (*Position, error) {
	if !p.IsOnBoard(x, y) {
		return nil, errors.WithMessagef(ErrOutsideBoard, "set (%d, %d)", x, y)
	}
	q := p.clone()
	q.grid[y*q.cols+x] = c
	return q, nil
}

func (p *Position) clone() *Position {
	grid := make([]Colour, len(p.grid))
	copy(grid, p.grid)
	return &Position{rows: p.rows, cols: p.cols, grid: grid}
}

// Eq checks value equality: same dimensions with every cell matching.
func (p *Position) Eq(other *Position) bool {
	if p == other {
		return true
	}
	if p.rows != other.rows || p.cols != other.cols {
		return false
	}
	for i, c := range p.grid {
		if other.grid[i] != c {
			return false
		}
	}
	return true
}

// Stones enumerates every stone on the board in row-major order.
func (p *Position) Stones() []Stone {
	var stones []Stone
	for i, c := range p.grid {
		if c == None {
			continue
		}
		stones = append(stones, Stone{Point: Point{i % p.cols, i / p.cols}, Colour: c})
	}
	return stones
}

// Chain returns the maximal 4-connected set of cells sharing the colour
// at (x, y), or nil when the point is empty. The fill is iterative with
// an explicit stack so deep chains on large boards cannot overflow.
func (p *Position) Chain(x, y int) ([]Stone, error) {
	if !p.IsOnBoard(x, y) {
		return nil, errors.WithMessagef(ErrOutsideBoard, "chain at (%d, %d)", x, y)
	}
	c := p.grid[y*p.cols+x]
	if c == None {
		return nil, nil
	}

	visited := make([]bool, len(p.grid))
	visited[y*p.cols+x] = true
	stack := []Point{{x, y}}
	var chain []Stone
	for len(stack) > 0 {
		pt := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		chain = append(chain, Stone{Point: pt, Colour: c})

		for _, d := range adjacents {
			a := pt.add(d)
			if !p.IsOnBoard(a.X, a.Y) {
				continue
			}
			i := a.Y*p.cols + a.X
			if visited[i] || p.grid[i] != c {
				continue
			}
			visited[i] = true
			stack = append(stack, a)
		}
	}
	return chain, nil
}

// HasLiberties reports whether the chain containing (x, y) touches at
// least one empty point. The whole connected group is considered, not
// just the single stone. Asking about an empty point is an error: there
// is no liberty question to answer there.
func (p *Position) HasLiberties(x, y int) (bool, error) {
	if !p.IsOnBoard(x, y) {
		return false, errors.WithMessagef(ErrOutsideBoard, "liberties at (%d, %d)", x, y)
	}
	c := p.grid[y*p.cols+x]
	if c == None {
		return false, errors.WithMessagef(ErrEmptyPoint, "(%d, %d)", x, y)
	}

	// same traversal as Chain, but bails out at the first liberty
	visited := make([]bool, len(p.grid))
	visited[y*p.cols+x] = true
	stack := []Point{{x, y}}
	for len(stack) > 0 {
		pt := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, d := range adjacents {
			a := pt.add(d)
			if !p.IsOnBoard(a.X, a.Y) {
				continue
			}
			i := a.Y*p.cols + a.X
			switch {
			case p.grid[i] == None:
				return true, nil
			case p.grid[i] == c && !visited[i]:
				visited[i] = true
				stack = append(stack, a)
			}
		}
	}
	return false, nil
}

// RemoveStones returns a new position with each given point emptied.
// Removing an already-empty point is a no-op, not an error.
func (p *Position) RemoveStones(stones []Stone) *Position {
	q := p.clone()
	for _, s := range stones {
		if !q.IsOnBoard(s.X, s.Y) {
			continue
		}
		q.grid[s.Y*q.cols+s.X] = None
	}
	return q
}

// Grid returns the position as a rows×cols matrix of colours, indexed
// grid[y][x]. The matrix is freshly allocated on every call.
func (p *Position) Grid() [][]Colour {
	grid := make([][]Colour, p.rows)
	for y := range grid {
		grid[y] = make([]Colour, p.cols)
		copy(grid[y], p.grid[y*p.cols:(y+1)*p.cols])
	}
	return grid
}

// Format implements fmt.Formatter
func (p *Position) Format(s fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		for y := 0; y < p.rows; y++ {
			fmt.Fprint(s, "⎢ ")
			for x := 0; x < p.cols; x++ {
				fmt.Fprintf(s, "%s ", p.grid[y*p.cols+x])
			}
			fmt.Fprint(s, "⎥\n")
		}
	}
}

func (p *Position) String() string { return fmt.Sprintf("%s", p) }
