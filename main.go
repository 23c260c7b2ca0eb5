package main

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Frederickfan/Amazon-AI/experiments"
	"github.com/Frederickfan/Amazon-AI/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	planPath := flag.String("plan", "", "YAML experiment plan (default: built-in baseline plan)")
	games := flag.Int("games", 0, "Games per matchup, overriding the plan")
	depths := flag.String("throughput", "", "Comma-separated search depths to measure instead of playing the plan")
	positions := flag.Int("positions", 10, "Positions searched per depth by -throughput")
	verbose := flag.Bool("v", false, "Log every search and move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *depths != "" {
		runThroughput(*depths, *positions)
		return
	}

	plan := experiments.DefaultPlan()
	if *planPath != "" {
		var err error
		plan, err = experiments.LoadPlan(*planPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load plan")
		}
	}
	if *games > 0 {
		plan.Games = *games
	}

	dir, err := experiments.RunAndStore(plan, meta.EXPERIMENTS_DIR)
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", plan.Name)
	}
	log.Info().Msgf("records written to %s", dir)
}

func runThroughput(list string, positions int) {
	var depths []int
	for _, field := range strings.Split(list, ",") {
		depth, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || depth <= 0 {
			log.Fatal().Msgf("invalid search depth %q", field)
		}
		depths = append(depths, depth)
	}

	_, err := experiments.RunThroughputExperiment(depths, positions, meta.DEFAULT_SEED)
	if err != nil {
		log.Fatal().Err(err).Msg("throughput experiment failed")
	}
}
