package game

import "errors"

var (
	ErrOutOfBounds     = errors.New("row or column out of bounds")
	ErrNoMoveToUndo    = errors.New("no move to undo")
	ErrMalformedSquare = errors.New("malformed square designation")
	ErrMalformedMove   = errors.New("malformed move")
	ErrMalformedBoard  = errors.New("malformed board")
)
