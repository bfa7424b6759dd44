package game

import "github.com/pkg/errors"

// ErrBoardSize means a position was created with non-positive dimensions.
var ErrBoardSize = errors.New("board dimensions must be positive")

// ErrGridShape means a grid conversion was given empty or jagged input.
var ErrGridShape = errors.New("grid must be rectangular and non-empty")

// ErrOutsideBoard means a coordinate exceeds the size of the board.
// By this layer that is a caller logic error, not a user-input problem.
var ErrOutsideBoard = errors.New("point outside board")

// ErrEmptyPoint means a stone query was made about an empty point.
var ErrEmptyPoint = errors.New("no stone at point")

// ErrBadColour means a play carried a colour that is not a player.
var ErrBadColour = errors.New("colour is not a player colour")
