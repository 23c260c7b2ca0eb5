package game

import "iter"

// Reachable lazily walks the squares reachable from a square by an unblocked queen
// move. It does not look at what is on the starting square. The asEmpty square, if
// not NoSquare, is treated as empty; after a queen moves, its old square is passable
// for the spear throw.
//
// The board is read at each call to Next, so a caller may mutate the board between
// calls as long as it restores it first.
type Reachable struct {
	board   *Board
	from    Square
	asEmpty Square
	dir     Direction
	steps   int
}

// ReachableFrom returns a walker over the squares reachable from from.
func (b *Board) ReachableFrom(from, asEmpty Square) *Reachable {
	return &Reachable{
		board:   b,
		from:    from,
		asEmpty: asEmpty,
	}
}

// Next returns the next reachable square, direction by direction, nearest first.
func (r *Reachable) Next() (Square, bool) {
	for r.dir < NumDirections {
		r.steps++
		s := r.from.QueenMove(r.dir, r.steps)
		if s != NoSquare && (r.board.cells[s] == Empty || s == r.asEmpty) {
			return s, true
		}
		// Ray ended; move on to the next direction
		r.dir++
		r.steps = 0
	}
	return NoSquare, false
}

// All adapts the walker to a range-over-func sequence.
func (r *Reachable) All() iter.Seq[Square] {
	return func(yield func(Square) bool) {
		for s, ok := r.Next(); ok; s, ok = r.Next() {
			if !yield(s) {
				return
			}
		}
	}
}
