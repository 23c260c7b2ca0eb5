package game

import (
	"fmt"
	"regexp"
)

// Move represents moving the queen on From to To, then throwing a spear to Spear.
// Spear may equal From, since From is vacant once the queen has left it.
type Move struct {
	From  Square
	To    Square
	Spear Square
}

var moveRegexp = regexp.MustCompile(`^` + SquarePattern + `-` + SquarePattern + `\(` + SquarePattern + `\)$`)

// Mv returns the move from-to(spear).
func Mv(from, to, spear Square) Move {
	return Move{From: from, To: to, Spear: spear}
}

// ParseMove parses the canonical text form produced by Move.String, e.g. "j4-e9(a9)".
func ParseMove(text string) (Move, error) {
	groups := moveRegexp.FindStringSubmatch(text)
	if groups == nil {
		return Move{}, fmt.Errorf("%q: %w", text, ErrMalformedMove)
	}
	var squares [3]Square
	for i := range squares {
		s, err := ParseSquare(groups[i+1])
		if err != nil {
			return Move{}, fmt.Errorf("move %q: %w", text, err)
		}
		squares[i] = s
	}
	return Mv(squares[0], squares[1], squares[2]), nil
}

func (m Move) String() string {
	return fmt.Sprintf("%v-%v(%v)", m.From, m.To, m.Spear)
}
