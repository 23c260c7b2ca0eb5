package player

import (
	"fmt"

	"github.com/Frederickfan/Amazon-AI/game"
	"github.com/Frederickfan/Amazon-AI/meta"
	"github.com/Frederickfan/Amazon-AI/searcher"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random legal move.
type Random struct {
	piece      game.Piece
	controller Controller
	rng        *rand.Rand
}

type RandomOption func(r *Random)

func WithSeed(seed uint64) RandomOption {
	return func(r *Random) {
		r.rng = rand.New(rand.NewSource(seed))
	}
}

func NewRandom(piece game.Piece, controller Controller, options ...RandomOption) *Random {
	r := &Random{ // Default values
		piece:      piece,
		controller: controller,
		rng:        rand.New(rand.NewSource(meta.DEFAULT_SEED)),
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// RandomFactory returns a Factory for random players. Each player gets its own
// source seeded from seed and its piece, so both sides of a game differ.
func RandomFactory(seed uint64) Factory {
	return func(piece game.Piece, controller Controller) Player {
		return NewRandom(piece, controller, WithSeed(seed*2+uint64(piece)))
	}
}

func (r *Random) Piece() game.Piece {
	return r.piece
}

func (r *Random) MyMove() (string, error) {
	board := r.controller.Board()
	if board.Turn() != r.piece {
		return "", fmt.Errorf("%v asked to move on %v's turn: %w", r.piece, board.Turn(), ErrNotMyTurn)
	}

	// Reservoir sampling keeps the n-th move with probability 1/n.
	var chosen game.Move
	n := 0
	moves := board.LegalMoves()
	for move, ok := moves.Next(); ok; move, ok = moves.Next() {
		n++
		if r.rng.Intn(n) == 0 {
			chosen = move
		}
	}
	if n == 0 {
		return "", fmt.Errorf("failed to find a move for %v: %w", r.piece, searcher.ErrNoLegalMoves)
	}

	r.controller.ReportMove(chosen)
	return chosen.String(), nil
}
