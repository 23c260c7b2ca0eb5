package experiments

import (
	"fmt"
	"time"

	"github.com/Frederickfan/Amazon-AI/engine"
	"github.com/Frederickfan/Amazon-AI/game"
	"github.com/Frederickfan/Amazon-AI/player"
	"github.com/Frederickfan/Amazon-AI/searcher"

	"github.com/rs/zerolog/log"
)

// ThroughputRecord sums the searches of one depth over a set of positions.
type ThroughputRecord struct {
	Depth     int
	Positions int
	Nodes     int
	Leaves    int
	Cutoffs   int
	Duration  time.Duration
}

func (r ThroughputRecord) LeavesPerSecond() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Leaves) / r.Duration.Seconds()
}

// RunThroughputExperiment searches the first positions of a random game seeded
// with seed at each depth and reports how fast the searcher goes.
func RunThroughputExperiment(depths []int, positions int, seed uint64) ([]ThroughputRecord, error) {
	boards, err := samplePositions(positions, seed)
	if err != nil {
		return nil, err
	}

	log.Info().Msgf("starting throughput experiment on %d positions...", len(boards))

	records := make([]ThroughputRecord, 0, len(depths))
	for _, depth := range depths {
		s := searcher.NewAlphaBeta(searcher.WithDepth(depth), searcher.WithMetrics())
		record := ThroughputRecord{Depth: depth}
		for _, b := range boards {
			_, metric, err := s.FindMove(b)
			if err != nil {
				return nil, fmt.Errorf("failed to search position %d: %w", record.Positions+1, err)
			}
			record.Positions++
			record.Nodes += metric.Nodes
			record.Leaves += metric.Leaves
			record.Cutoffs += metric.Cutoffs
			record.Duration += metric.Duration
		}
		records = append(records, record)

		log.Info().Msgf("depth %d: %d nodes, %d leaves, %d cutoffs in %v (%.0f leaves/s)",
			depth, record.Nodes, record.Leaves, record.Cutoffs, record.Duration, record.LeavesPerSecond())
	}

	log.Info().Msg("completed throughput experiment")
	return records, nil
}

// samplePositions replays a random game and returns the positions before each
// of its moves, up to n of them.
func samplePositions(n int, seed uint64) ([]*game.Board, error) {
	e := engine.NewLocalEngine(player.RandomFactory(seed), player.RandomFactory(seed), engine.WithMaxTurns(n))
	_, _, moveMetrics := e.Run()

	b := game.NewBoard()
	boards := make([]*game.Board, 0, len(moveMetrics))
	for _, mm := range moveMetrics {
		boards = append(boards, b.Copy())
		move, err := game.ParseMove(mm.Move)
		if err != nil {
			return nil, fmt.Errorf("failed to replay sample game: %w", err)
		}
		b.MakeMove(move)
	}
	return boards, nil
}
