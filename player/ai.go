package player

import (
	"fmt"

	"github.com/Frederickfan/Amazon-AI/experiments/metrics"
	"github.com/Frederickfan/Amazon-AI/game"
	"github.com/Frederickfan/Amazon-AI/searcher"
)

// AI plays the moves found by an alpha-beta search.
type AI struct {
	piece      game.Piece
	controller Controller
	searcher   *searcher.AlphaBeta
	last       metrics.SearchMetric
}

func NewAI(piece game.Piece, controller Controller, options ...searcher.Option) *AI {
	return &AI{
		piece:      piece,
		controller: controller,
		searcher:   searcher.NewAlphaBeta(options...),
	}
}

// AIFactory returns a Factory for AI players sharing the same search options.
func AIFactory(options ...searcher.Option) Factory {
	return func(piece game.Piece, controller Controller) Player {
		return NewAI(piece, controller, options...)
	}
}

func (a *AI) Piece() game.Piece {
	return a.piece
}

// MyMove searches the controller's current position, reports the chosen move
// and returns it in text form.
func (a *AI) MyMove() (string, error) {
	board := a.controller.Board()
	if board.Turn() != a.piece {
		return "", fmt.Errorf("%v asked to move on %v's turn: %w", a.piece, board.Turn(), ErrNotMyTurn)
	}

	move, metric, err := a.searcher.FindMove(board)
	if err != nil {
		return "", fmt.Errorf("failed to find a move for %v: %w", a.piece, err)
	}
	a.last = metric
	a.controller.ReportMove(move)
	return move.String(), nil
}

// LastSearch returns the metrics of the search behind the last move.
func (a *AI) LastSearch() metrics.SearchMetric {
	return a.last
}
