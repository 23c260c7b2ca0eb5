// meta/meta.go
package meta

// MAX_TURNS caps a game. A game can never last longer than the 92 empty squares
// of the initial position allow, so hitting it means the engine is broken.
const MAX_TURNS = 100

// NUM_GAMES defines the number of games per matchup in an experiment.
const NUM_GAMES = 2

// DEFAULT_SEED seeds random players that are not given a seed.
const DEFAULT_SEED = 1

// EXPERIMENTS_DIR is where experiment records are written.
const EXPERIMENTS_DIR = "experiments"
