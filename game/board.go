package game

import (
	"encoding/binary"
	"hash/fnv"
)

// Board is the mutable state of an Amazons game: square contents, the side to move
// and the history of applied moves (kept for undo).
type Board struct {
	cells   [NumSquares]Piece // Contents indexed by square
	turn    Piece             // Side to move, White or Black
	history []Move            // Applied moves, oldest first
}

// Starting queens. White occupies d1, g1, a4 and j4; Black mirrors it.
var (
	whiteStart = []Square{MustSq(3, 0), MustSq(6, 0), MustSq(0, 3), MustSq(9, 3)}
	blackStart = []Square{MustSq(0, 6), MustSq(9, 6), MustSq(3, 9), MustSq(6, 9)}
)

// NewBoard returns a board in the initial position with White to move.
func NewBoard() *Board {
	b := &Board{}
	b.Init()
	return b
}

// Init resets the board to the initial position.
func (b *Board) Init() {
	b.cells = [NumSquares]Piece{}
	for _, s := range whiteStart {
		b.cells[s] = White
	}
	for _, s := range blackStart {
		b.cells[s] = Black
	}
	b.turn = White
	b.history = nil
}

// Copy returns an independent copy of the board, history included.
func (b *Board) Copy() *Board {
	history := make([]Move, len(b.history))
	copy(history, b.history)
	return &Board{
		cells:   b.cells,
		turn:    b.turn,
		history: history,
	}
}

// Turn returns the side to move.
func (b *Board) Turn() Piece {
	return b.turn
}

// NumMoves returns the number of moves applied and not undone.
func (b *Board) NumMoves() int {
	return len(b.history)
}

// History returns a copy of the applied moves, oldest first.
func (b *Board) History() []Move {
	history := make([]Move, len(b.history))
	copy(history, b.history)
	return history
}

// Get returns the contents of s.
func (b *Board) Get(s Square) Piece {
	return b.cells[s]
}

// GetAt returns the contents of (col, row).
func (b *Board) GetAt(col, row int) Piece {
	return b.cells[row*Size+col]
}

// Put sets the contents of s. It is a setup primitive: history and turn are untouched.
func (b *Board) Put(p Piece, s Square) {
	b.cells[s] = p
}

// Winner returns the winner in the current position, or Empty if the side to move
// still has a legal move.
func (b *Board) Winner() Piece {
	if b.HasLegalMove(b.turn) {
		return Empty
	}
	return b.turn.Opponent()
}

// IsUnblockedMove reports whether from-to is a queen move whose intermediate squares
// and destination are all empty, treating asEmpty (which may be NoSquare) as empty.
func (b *Board) IsUnblockedMove(from, to, asEmpty Square) bool {
	if !to.Valid() || !from.IsQueenMove(to) {
		return false
	}
	dir := from.Direction(to)
	for n := 1; ; n++ {
		s := from.QueenMove(dir, n)
		if b.cells[s] != Empty && s != asEmpty {
			return false
		}
		if s == to {
			return true
		}
	}
}

// IsLegalStart reports whether from holds a queen that could start a move.
func (b *Board) IsLegalStart(from Square) bool {
	if !from.Valid() {
		return false
	}
	p := b.cells[from]
	return p != Empty && p != Spear
}

// IsLegalStep reports whether from-to is a valid first part of a move, ignoring the spear.
func (b *Board) IsLegalStep(from, to Square) bool {
	return b.IsUnblockedMove(from, to, NoSquare)
}

// IsLegalThrow reports whether from-to(spear) is legal in the current position,
// regardless of whose turn it is.
func (b *Board) IsLegalThrow(from, to, spear Square) bool {
	if !b.IsLegalStart(from) {
		return false
	}
	if spear == from {
		return b.IsLegalStep(from, to) && b.IsUnblockedMove(from, to, from)
	}
	if !spear.Valid() || b.cells[spear] != Empty {
		return false
	}
	return b.IsUnblockedMove(from, to, spear) && b.IsUnblockedMove(to, spear, from)
}

// IsLegal reports whether m is legal for the side to move.
func (b *Board) IsLegal(m Move) bool {
	if !m.From.Valid() || b.cells[m.From] != b.turn {
		return false
	}
	return b.IsLegalThrow(m.From, m.To, m.Spear)
}

// MakeMove applies m, which the caller guarantees to be legal.
func (b *Board) MakeMove(m Move) {
	b.history = append(b.history, m)
	b.cells[m.To] = b.cells[m.From]
	b.cells[m.From] = Empty
	b.cells[m.Spear] = Spear
	b.turn = b.turn.Opponent()
}

// Undo takes back the last move.
func (b *Board) Undo() error {
	if len(b.history) == 0 {
		return ErrNoMoveToUndo
	}
	m := b.history[len(b.history)-1]
	b.cells[m.Spear] = Empty
	b.cells[m.From] = b.cells[m.To]
	b.cells[m.To] = Empty
	b.turn = b.turn.Opponent()
	b.history = b.history[:len(b.history)-1]
	return nil
}

// Apply makes m and returns a function that takes it back. Every call to Apply must be
// paired with exactly one call of the returned function before the board is used to
// explore a sibling move.
func (b *Board) Apply(m Move) (unapply func()) {
	b.MakeMove(m)
	depth := len(b.history)
	return func() {
		if len(b.history) != depth {
			panic("unapply called out of order")
		}
		if err := b.Undo(); err != nil {
			panic(err)
		}
	}
}

// Hash returns an FNV-1a hash of the square contents and the side to move.
func (b *Board) Hash() uint64 {
	hasher := fnv.New64a()

	// Hash side to move
	binary.Write(hasher, binary.LittleEndian, int8(b.turn))

	// Hash square contents
	for _, p := range b.cells {
		binary.Write(hasher, binary.LittleEndian, int8(p))
	}

	return hasher.Sum64()
}
