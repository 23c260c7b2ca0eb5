package searcher

import (
	"math"

	"github.com/Frederickfan/Amazon-AI/game"
)

const (
	// WinningValue is the magnitude of a won position (White if positive, Black if negative).
	WinningValue = math.MaxInt - 1
	// Infinity is greater in magnitude than any position value.
	Infinity = math.MaxInt
)

// StaticScore evaluates b from White's perspective: ±WinningValue for a finished game,
// otherwise White's mobility minus Black's.
func StaticScore(b *game.Board) int {
	switch b.Winner() {
	case game.White:
		return WinningValue
	case game.Black:
		return -WinningValue
	}
	return b.CountMoves(game.White) - b.CountMoves(game.Black)
}

// MaxDepth returns the search depth to use for b.
// TODO: scale with b.NumMoves() once the mobility count is cheap enough for deeper searches.
func MaxDepth(b *game.Board) int {
	return 1
}
