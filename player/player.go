package player

import (
	"errors"

	"github.com/Frederickfan/Amazon-AI/experiments/metrics"
	"github.com/Frederickfan/Amazon-AI/game"
)

var ErrNotMyTurn = errors.New("not this player's turn")

// Controller owns the authoritative board of a game.
type Controller interface {
	// Board returns a snapshot of the current position. Players must not expect
	// changes they make to it to reach the controller.
	Board() *game.Board
	// ReportMove tells the controller which move the player chose.
	ReportMove(move game.Move)
}

// Player produces moves for one side.
type Player interface {
	Piece() game.Piece
	// MyMove returns the player's next move in text form, e.g. "d1-d7(g7)".
	MyMove() (string, error)
}

// Factory creates a player for piece under controller.
type Factory func(piece game.Piece, controller Controller) Player

// SearchReporter is implemented by players that search for their moves.
type SearchReporter interface {
	LastSearch() metrics.SearchMetric
}
