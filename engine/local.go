package engine

import (
	"fmt"
	"time"

	"github.com/Frederickfan/Amazon-AI/experiments/metrics"
	"github.com/Frederickfan/Amazon-AI/game"
	"github.com/Frederickfan/Amazon-AI/meta"
	"github.com/Frederickfan/Amazon-AI/player"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// LocalEngine owns the authoritative board of a game between two in-process
// players and acts as their controller.
type LocalEngine struct {
	id       uuid.UUID
	board    *game.Board
	players  map[game.Piece]player.Player
	reported []game.Move // Moves reported during the current turn
	maxTurns int
}

type Option func(e *LocalEngine)

// WithMaxTurns stops the game after turns moves.
func WithMaxTurns(turns int) Option {
	return func(e *LocalEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithBoard starts the game from a copy of b instead of the initial position.
func WithBoard(b *game.Board) Option {
	return func(e *LocalEngine) {
		e.board = b.Copy()
	}
}

func NewLocalEngine(white, black player.Factory, options ...Option) *LocalEngine {
	e := &LocalEngine{ // Default values
		id:       uuid.New(),
		board:    game.NewBoard(),
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	e.players = map[game.Piece]player.Player{
		game.White: white(game.White, e),
		game.Black: black(game.Black, e),
	}
	return e
}

func (e *LocalEngine) ID() uuid.UUID {
	return e.id
}

// Board returns a copy of the current position.
func (e *LocalEngine) Board() *game.Board {
	return e.board.Copy()
}

func (e *LocalEngine) ReportMove(move game.Move) {
	e.reported = append(e.reported, move)
}

func (e *LocalEngine) Winner() game.Piece {
	return e.board.Winner()
}

// Play validates text as a move for the side to move and makes it.
func (e *LocalEngine) Play(text string) error {
	if e.board.Winner() != game.Empty {
		return ErrGameOver
	}
	move, err := game.ParseMove(text)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIllegalMove, err)
	}
	if !e.board.IsLegal(move) {
		return fmt.Errorf("%w: %s for %v", ErrIllegalMove, text, e.board.Turn())
	}
	e.board.MakeMove(move)
	return nil
}

// Run executes the entire game loop until a winner is found. A player that
// fails to produce a legal move forfeits.
func (e *LocalEngine) Run() (game.Piece, metrics.GameMetric, []metrics.MoveMetric) {
	log.Info().Msgf("game %s: %v is starting", e.id, e.board.Turn())

	gameMetric := metrics.GameMetric{
		ID:        e.id.String(),
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric
	winner := game.Empty

	for step := 1; step <= e.maxTurns; step++ {
		if winner = e.board.Winner(); winner != game.Empty {
			break
		}
		side := e.board.Turn()
		p := e.players[side]

		e.reported = e.reported[:0]
		text, err := p.MyMove()
		if err == nil {
			err = e.Play(text)
		}
		if err != nil {
			winner = side.Opponent()
			log.Warn().Err(err).Msgf("game %s: %v forfeits at step %d", e.id, side, step)
			break
		}
		if len(e.reported) != 1 || e.reported[0].String() != text {
			log.Warn().Msgf("game %s: %v played %s but reported %v", e.id, side, text, e.reported)
		}

		moveMetric := metrics.MoveMetric{
			Step:   step,
			Player: side.String(),
			Move:   text,
			Hash:   e.board.Hash(),
		}
		if reporter, ok := p.(player.SearchReporter); ok {
			moveMetric.SearchMetric = reporter.LastSearch()
		}
		moveMetrics = append(moveMetrics, moveMetric)

		log.Debug().
			Str("game", e.id.String()).
			Int("step", step).
			Str("player", side.String()).
			Str("move", text).
			Msg("move played")
	}
	if winner == game.Empty {
		winner = e.board.Winner()
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	if winner != game.Empty {
		gameMetric.Winner = winner.String()
		log.Info().Msgf("game %s: %v wins after %d moves", e.id, winner, gameMetric.TotalMoves)
	} else {
		log.Warn().Msgf("game %s: stopped after %d turns (no winner yet)", e.id, e.maxTurns)
	}

	return winner, gameMetric, moveMetrics
}
