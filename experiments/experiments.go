package experiments

import (
	"errors"
	"fmt"
	"os"

	"github.com/Frederickfan/Amazon-AI/engine"
	"github.com/Frederickfan/Amazon-AI/experiments/metrics"
	"github.com/Frederickfan/Amazon-AI/game"
	"github.com/Frederickfan/Amazon-AI/meta"
	"github.com/Frederickfan/Amazon-AI/player"
	"github.com/Frederickfan/Amazon-AI/searcher"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	KindAI     = "ai"
	KindRandom = "random"
)

var ErrInvalidPlan = errors.New("invalid experiment plan")

type Matchup struct {
	White int `yaml:"white"` // AgentConfig.ID
	Black int `yaml:"black"` // AgentConfig.ID
}

// Plan describes a self-play experiment: the agents taking part and the
// matchups between them, each played Games times.
type Plan struct {
	Name     string                `yaml:"name"`
	Games    int                   `yaml:"games"`
	Agents   []metrics.AgentConfig `yaml:"agents"`
	Matchups []Matchup             `yaml:"matchups"`
}

// DefaultPlan pits the searching player against a random baseline with both
// colours, plus a random mirror match.
func DefaultPlan() Plan {
	return Plan{
		Name:  "baseline",
		Games: meta.NUM_GAMES,
		Agents: []metrics.AgentConfig{
			{ID: 1, Kind: KindAI},
			{ID: 2, Kind: KindRandom, Seed: meta.DEFAULT_SEED},
		},
		Matchups: []Matchup{
			{White: 1, Black: 2},
			{White: 2, Black: 1},
			{White: 2, Black: 2},
		},
	}
}

// LoadPlan reads a YAML plan. Fields missing from the file keep their
// DefaultPlan values.
func LoadPlan(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("failed to read plan: %w", err)
	}
	plan := DefaultPlan()
	err = yaml.Unmarshal(data, &plan)
	if err != nil {
		return Plan{}, fmt.Errorf("failed to parse plan %s: %w", path, err)
	}
	return plan, plan.Validate()
}

func (p Plan) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidPlan)
	}
	if p.Games <= 0 {
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalidPlan, p.Games)
	}
	ids := map[int]bool{}
	for _, config := range p.Agents {
		if ids[config.ID] {
			return fmt.Errorf("%w: duplicate agent id %d", ErrInvalidPlan, config.ID)
		}
		ids[config.ID] = true
		if config.Kind != KindAI && config.Kind != KindRandom {
			return fmt.Errorf("%w: agent %d has unknown kind %q", ErrInvalidPlan, config.ID, config.Kind)
		}
		if config.Depth < 0 {
			return fmt.Errorf("%w: agent %d has negative depth", ErrInvalidPlan, config.ID)
		}
	}
	if len(p.Matchups) == 0 {
		return fmt.Errorf("%w: no matchups", ErrInvalidPlan)
	}
	for _, m := range p.Matchups {
		if !ids[m.White] || !ids[m.Black] {
			return fmt.Errorf("%w: matchup %d vs %d names an unknown agent", ErrInvalidPlan, m.White, m.Black)
		}
	}
	return nil
}

func (p Plan) agent(id int) metrics.AgentConfig {
	for _, config := range p.Agents {
		if config.ID == id {
			return config
		}
	}
	panic(fmt.Sprintf("unknown agent %d", id))
}

// Result holds the records of a finished experiment.
type Result struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
	Wins  map[int]int // Games won per AgentConfig.ID
}

// Run plays every game of the plan.
func Run(plan Plan) (Result, error) {
	err := plan.Validate()
	if err != nil {
		return Result{}, err
	}

	result := Result{Wins: map[int]int{}}
	count := 0

	log.Info().Msgf("starting %s experiment...", plan.Name)

	for mi, matchup := range plan.Matchups {
		white, black := plan.agent(matchup.White), plan.agent(matchup.Black)

		log.Info().Msgf("starting matchup %d of %d between white=%+v and black=%+v...", mi+1, len(plan.Matchups), white, black)

		for i := 0; i < plan.Games; i++ {
			count++
			winner, gameMetric, moveMetrics := runGame(white, black, uint64(count))
			result.Games = append(result.Games, metrics.GameRecord{
				Game:       count,
				White:      white.ID,
				Black:      black.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				result.Moves = append(result.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
			switch winner {
			case game.White:
				result.Wins[white.ID]++
			case game.Black:
				result.Wins[black.ID]++
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %v", mi+1, len(plan.Matchups), i+1, winner)
		}
	}

	log.Info().Msgf("completed %s experiment: wins by agent %v", plan.Name, result.Wins)
	return result, nil
}

// RunAndStore runs the plan and stores its setup and records under root.
// It returns the directory the records were written to.
func RunAndStore(plan Plan, root string) (string, error) {
	result, err := Run(plan)
	if err != nil {
		return "", err
	}

	writer, err := metrics.NewWriter(root, plan.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteSetup(plan)
	if err != nil {
		return "", fmt.Errorf("failed to store setup: %w", err)
	}
	err = writer.WriteAgentConfigs(plan.Agents)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(result.Games)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(result.Moves)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())

	return writer.Dir(), nil
}

// runGame executes a single game between two agents and returns the winner.
// count varies the random seeds between games of a matchup.
func runGame(white, black metrics.AgentConfig, count uint64) (game.Piece, metrics.GameMetric, []metrics.MoveMetric) {
	e := engine.NewLocalEngine(createPlayer(white, count), createPlayer(black, count))
	return e.Run()
}

func createPlayer(config metrics.AgentConfig, count uint64) player.Factory {
	if config.Kind == KindRandom {
		return player.RandomFactory(config.Seed*1000 + count)
	}

	options := []searcher.Option{searcher.WithMetrics()}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	return player.AIFactory(options...)
}
