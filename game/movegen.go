package game

import "iter"

// MoveIterator lazily enumerates the legal moves of one side as three nested cursors:
// starting squares holding the side's queens, destinations reachable from the start
// (start still occupied), and spear squares reachable from the destination with the
// start treated as empty. The innermost cursor advances first.
//
// A MoveIterator cannot be restarted. It reads the board on every call to Next, so the
// board may be changed between calls provided it is restored before the next call.
type MoveIterator struct {
	board  *Board
	side   Piece
	cursor int // Next starting square to examine

	start      Square
	dest       Square
	pieceMoves *Reachable // Remaining destinations from start
	spears     *Reachable // Remaining spear squares from dest
}

// LegalMoves returns an iterator over the legal moves of the side to move.
func (b *Board) LegalMoves() *MoveIterator {
	return b.LegalMovesFor(b.turn)
}

// LegalMovesFor returns an iterator over the legal moves of side, regardless of whose turn it is.
func (b *Board) LegalMovesFor(side Piece) *MoveIterator {
	return &MoveIterator{
		board: b,
		side:  side,
		start: NoSquare,
		dest:  NoSquare,
	}
}

// Next returns the next legal move, or false once the moves are exhausted.
func (it *MoveIterator) Next() (Move, bool) {
	for {
		if it.spears != nil {
			if spear, ok := it.spears.Next(); ok {
				return Mv(it.start, it.dest, spear), true
			}
			it.spears = nil
		}

		if it.pieceMoves != nil {
			if dest, ok := it.pieceMoves.Next(); ok {
				it.dest = dest
				it.spears = it.board.ReachableFrom(dest, it.start)
				continue
			}
			it.pieceMoves = nil
		}

		if !it.nextStart() {
			return Move{}, false
		}
		it.pieceMoves = it.board.ReachableFrom(it.start, NoSquare)
	}
}

// nextStart advances the outer cursor to the next square holding one of side's queens.
func (it *MoveIterator) nextStart() bool {
	for it.cursor < NumSquares {
		s := Square(it.cursor)
		it.cursor++
		if it.board.cells[s] == it.side {
			it.start = s
			return true
		}
	}
	return false
}

// All adapts the iterator to a range-over-func sequence.
func (it *MoveIterator) All() iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for m, ok := it.Next(); ok; m, ok = it.Next() {
			if !yield(m) {
				return
			}
		}
	}
}

// Moves returns the legal moves of side as a lazy sequence.
func (b *Board) Moves(side Piece) iter.Seq[Move] {
	return b.LegalMovesFor(side).All()
}

// HasLegalMove reports whether side has at least one legal move.
func (b *Board) HasLegalMove(side Piece) bool {
	_, ok := b.LegalMovesFor(side).Next()
	return ok
}

// CountMoves returns the number of legal moves of side (its mobility).
func (b *Board) CountMoves(side Piece) int {
	count := 0
	it := b.LegalMovesFor(side)
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		count++
	}
	return count
}
