package game

import (
	"fmt"
	"regexp"
	"strconv"
)

const (
	Size       = 10          // Squares on a side of the board
	NumSquares = Size * Size // Total number of squares
)

// Square is a board position numbered from 0 (a1, lower-left) to 99 (j10, upper-right).
type Square int8

// NoSquare stands for "no such square", e.g. a ray that leaves the board or an unused asEmpty hole.
const NoSquare Square = -1

// Direction of a queen move, numbered clockwise from north.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	NumDirections
)

// steps[d] = (dcol, drow) for one step in direction d
var steps = [NumDirections][2]int{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

// SquarePattern matches a square designation such as a3 or j10.
const SquarePattern = `([a-j](?:[1-9]|10))`

var squareRegexp = regexp.MustCompile(`^` + SquarePattern + `$`)

// Exists reports whether (col, row) lies on the board.
func Exists(col, row int) bool {
	return col >= 0 && row >= 0 && col < Size && row < Size
}

// Sq returns the square at (col, row).
func Sq(col, row int) (Square, error) {
	if !Exists(col, row) {
		return NoSquare, fmt.Errorf("square (col=%d, row=%d): %w", col, row, ErrOutOfBounds)
	}
	return Square(row*Size + col), nil
}

// SqIndex returns the square with the given index.
func SqIndex(index int) (Square, error) {
	if index < 0 || index >= NumSquares {
		return NoSquare, fmt.Errorf("square index %d: %w", index, ErrOutOfBounds)
	}
	return Square(index), nil
}

// SqNamed returns the square for a column letter 'a'..'j' and a 1-based row 1..10.
func SqNamed(col byte, row int) (Square, error) {
	return Sq(int(col)-'a', row-1)
}

// MustSq is like Sq but panics on out-of-range input. Meant for constants and tests.
func MustSq(col, row int) Square {
	s, err := Sq(col, row)
	if err != nil {
		panic(err)
	}
	return s
}

// ParseSquare parses a designation such as "e9".
func ParseSquare(text string) (Square, error) {
	if !squareRegexp.MatchString(text) {
		return NoSquare, fmt.Errorf("%q: %w", text, ErrMalformedSquare)
	}
	row, err := strconv.Atoi(text[1:])
	if err != nil {
		return NoSquare, fmt.Errorf("%q: %w", text, ErrMalformedSquare)
	}
	return SqNamed(text[0], row)
}

func (s Square) Index() int { return int(s) }
func (s Square) Row() int   { return int(s) / Size }
func (s Square) Col() int   { return int(s) % Size }

// Valid reports whether s is one of the 100 board squares.
func (s Square) Valid() bool {
	return s >= 0 && int(s) < NumSquares
}

// IsQueenMove reports whether s-to is a queen move: same row, column or diagonal, and to != s.
func (s Square) IsQueenMove(to Square) bool {
	if s == to {
		return false
	}
	dc, dr := to.Col()-s.Col(), to.Row()-s.Row()
	return dc == 0 || dr == 0 || abs(dc) == abs(dr)
}

// Direction returns the direction of the queen move s-to. Only meaningful when s.IsQueenMove(to).
func (s Square) Direction(to Square) Direction {
	dc, dr := sign(to.Col()-s.Col()), sign(to.Row()-s.Row())
	for d, step := range steps {
		if step[0] == dc && step[1] == dr {
			return Direction(d)
		}
	}
	panic(fmt.Sprintf("%v-%v is not a queen move", s, to))
}

// QueenMove returns the square steps squares away in direction dir, or NoSquare if there is none.
func (s Square) QueenMove(dir Direction, n int) Square {
	if dir < 0 || dir >= NumDirections {
		return NoSquare
	}
	col := s.Col() + n*steps[dir][0]
	row := s.Row() + n*steps[dir][1]
	if !Exists(col, row) {
		return NoSquare
	}
	return Square(row*Size + col)
}

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+s.Col(), s.Row()+1)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
