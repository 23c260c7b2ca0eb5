package engine

import (
	"errors"

	"github.com/Frederickfan/Amazon-AI/experiments/metrics"
	"github.com/Frederickfan/Amazon-AI/game"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over")
)

type Engine interface {
	// Run plays the game till there's a winner or the turn limit is reached
	Run() (winner game.Piece, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
