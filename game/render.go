package game

import (
	"fmt"
	"strings"
)

// String renders the board top row first, each row indented by three spaces with
// space-separated cells: - empty, W white, B black, S spear.
func (b *Board) String() string {
	var out strings.Builder
	for row := Size - 1; row >= 0; row-- {
		out.WriteString("   ")
		for col := 0; col < Size; col++ {
			if col > 0 {
				out.WriteByte(' ')
			}
			out.WriteString(b.GetAt(col, row).Symbol())
		}
		out.WriteByte('\n')
	}
	return out.String()
}

// ParseBoard reads a board in the layout produced by String. Leading and trailing
// whitespace on each line is ignored and blank lines are skipped. The result has
// turn as the side to move and an empty history.
func ParseBoard(text string, turn Piece) (*Board, error) {
	if turn != White && turn != Black {
		return nil, fmt.Errorf("side to move %v: %w", turn, ErrMalformedBoard)
	}
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != Size {
			return nil, fmt.Errorf("row %d has %d cells: %w", len(rows)+1, len(fields), ErrMalformedBoard)
		}
		rows = append(rows, fields)
	}
	if len(rows) != Size {
		return nil, fmt.Errorf("found %d rows: %w", len(rows), ErrMalformedBoard)
	}

	b := &Board{turn: turn}
	for i, fields := range rows {
		row := Size - 1 - i
		for col, symbol := range fields {
			p, ok := pieceFromSymbol(symbol)
			if !ok {
				return nil, fmt.Errorf("cell %q at %v: %w", symbol, MustSq(col, row), ErrMalformedBoard)
			}
			b.cells[row*Size+col] = p
		}
	}
	return b, nil
}
