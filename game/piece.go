package game

// Piece is the content of a board square.
type Piece int8

const (
	Empty Piece = iota
	White
	Black
	Spear
)

// Opponent returns the other side. Empty and Spear have no opponent and return Empty.
func (p Piece) Opponent() Piece {
	switch p {
	case White:
		return Black
	case Black:
		return White
	default:
		return Empty
	}
}

// Symbol is the single character used in board renderings.
func (p Piece) Symbol() string {
	switch p {
	case White:
		return "W"
	case Black:
		return "B"
	case Spear:
		return "S"
	default:
		return "-"
	}
}

func (p Piece) String() string {
	switch p {
	case White:
		return "white"
	case Black:
		return "black"
	case Spear:
		return "spear"
	default:
		return "empty"
	}
}

func pieceFromSymbol(symbol string) (Piece, bool) {
	switch symbol {
	case "-":
		return Empty, true
	case "W":
		return White, true
	case "B":
		return Black, true
	case "S":
		return Spear, true
	}
	return Empty, false
}
