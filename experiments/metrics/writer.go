package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	AgentConfigsFile = "agent_configs.csv"
	GameRecordsFile  = "game_records.csv"
	MoveRecordsFile  = "move_records.csv"
	SetupFile        = "setup.yaml"
)

// AgentConfig describes one player of an experiment.
type AgentConfig struct {
	ID    int    `yaml:"id"`
	Kind  string `yaml:"kind"`            // "ai" or "random"
	Depth int    `yaml:"depth,omitempty"` // Fixed search depth, 0 for the default
	Seed  uint64 `yaml:"seed,omitempty"`  // Random players only
}

type GameRecord struct {
	Game  int
	White int // AgentConfig.ID
	Black int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.Game
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a writer for a run of the named experiment under root, in a
// subfolder named by the current timestamp.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.Depth),
			strconv.FormatUint(config.Seed, 10),
		})
	}
	return w.writeCSV(AgentConfigsFile, "agent configs", []string{"id", "kind", "depth", "seed"}, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			record.ID,
			strconv.Itoa(record.White),
			strconv.Itoa(record.Black),
			record.Winner,
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	header := []string{"game", "uuid", "white", "black", "winner", "total_moves", "start_time", "end_time", "duration"}
	return w.writeCSV(GameRecordsFile, "game records", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player,
			record.Move,
			strconv.FormatUint(record.Hash, 16),
			strconv.Itoa(record.Depth),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Leaves),
			strconv.Itoa(record.Cutoffs),
			strconv.Itoa(record.Value),
			record.Duration.String(),
		})
	}
	header := []string{"game", "step", "player", "move", "hash", "depth", "nodes", "leaves", "cutoffs", "value", "duration"}
	return w.writeCSV(MoveRecordsFile, "move records", header, rows)
}

// WriteSetup stores the experiment setup as YAML.
func (w *Writer) WriteSetup(setup any) error {
	path := filepath.Join(w.baseDir, SetupFile)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create setup file: %w", err)
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)
	defer encoder.Close()
	err = encoder.Encode(setup)
	if err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}
	return nil
}

func (w *Writer) writeCSV(file, what string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s file: %w", what, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", what, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", what, err)
	}

	return nil
}
