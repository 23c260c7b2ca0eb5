package searcher

import (
	"errors"

	"github.com/Frederickfan/Amazon-AI/experiments/metrics"
	"github.com/Frederickfan/Amazon-AI/game"

	"github.com/rs/zerolog/log"
)

var ErrNoLegalMoves = errors.New("no legal moves: game is over")

type Option func(s *AlphaBeta)

// AlphaBeta is a fixed-depth minimax searcher with alpha-beta pruning and a
// mobility evaluation at the leaves.
type AlphaBeta struct {
	depth     func(*game.Board) int
	metrics   metrics.Collector
	lastFound game.Move // Move recorded by the last search that saved one
}

// WithDepth searches every position to a fixed depth instead of MaxDepth.
func WithDepth(depth int) Option {
	return func(s *AlphaBeta) {
		if depth > 0 {
			s.depth = func(*game.Board) int { return depth }
		}
	}
}

func WithMetrics() Option {
	return func(s *AlphaBeta) {
		s.metrics = metrics.NewCollector()
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	s := &AlphaBeta{ // Default values
		depth:   MaxDepth,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// FindMove searches a scratch copy of b and returns the best move for the side to move.
func (s *AlphaBeta) FindMove(b *game.Board) (game.Move, metrics.SearchMetric, error) {
	if b.Winner() != game.Empty {
		return game.Move{}, metrics.SearchMetric{}, ErrNoLegalMoves
	}
	board := b.Copy()
	depth := s.depth(board)
	sense := 1
	if board.Turn() == game.Black {
		sense = -1
	}

	s.metrics.Start(depth)
	value := s.search(board, depth, true, sense, -Infinity, Infinity)
	metric := s.metrics.Complete(value)

	log.Debug().
		Str("side", b.Turn().String()).
		Str("move", s.lastFound.String()).
		Int("value", value).
		Int("depth", depth).
		Int("nodes", metric.Nodes).
		Int("cutoffs", metric.Cutoffs).
		Dur("duration", metric.Duration).
		Msg("search complete")

	return s.lastFound, metric, nil
}

// search returns the value of board searched to depth, recording the chosen move in
// lastFound iff saveMove. With sense 1 it maximizes (White), with -1 it minimizes
// (Black). The board is restored before search returns.
func (s *AlphaBeta) search(board *game.Board, depth int, saveMove bool, sense int, alpha, beta int) int {
	if depth == 0 || board.Winner() != game.Empty {
		s.metrics.AddLeaf()
		return StaticScore(board)
	}
	s.metrics.AddNode()

	var found game.Move
	bestSoFar := -sense * Infinity
	moves := board.LegalMoves()
	for move, ok := moves.Next(); ok; move, ok = moves.Next() {
		unapply := board.Apply(move)
		response := s.search(board, depth-1, false, -sense, alpha, beta)
		unapply()

		if sense == 1 {
			if response < bestSoFar {
				continue
			}
			bestSoFar, found = response, move
			alpha = max(alpha, response)
		} else {
			if response > bestSoFar {
				continue
			}
			bestSoFar, found = response, move
			beta = min(beta, response)
		}
		if beta <= alpha {
			s.metrics.AddCutoff()
			break
		}
	}

	if saveMove {
		s.lastFound = found
	}
	return bestSoFar
}
