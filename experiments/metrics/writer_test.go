package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "unit")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())
	require.Equal(t, filepath.Join(root, "unit"), filepath.Dir(w.Dir()))

	t.Run("agent configs are written with a header", func(t *testing.T) {
		configs := []AgentConfig{
			{ID: 1, Kind: "ai", Depth: 2},
			{ID: 2, Kind: "random", Seed: 9},
		}
		require.NoError(t, w.WriteAgentConfigs(configs))

		rows := readCSV(t, filepath.Join(w.Dir(), AgentConfigsFile))
		require.Equal(t, [][]string{
			{"id", "kind", "depth", "seed"},
			{"1", "ai", "2", "0"},
			{"2", "random", "0", "9"},
		}, rows)
	})

	t.Run("game records carry the game id and the agents", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		records := []GameRecord{{
			Game:  1,
			White: 1,
			Black: 2,
			GameMetric: GameMetric{
				ID:         "a1b2",
				Winner:     "white",
				StartTime:  start,
				EndTime:    start.Add(time.Second),
				Duration:   time.Second,
				TotalMoves: 31,
			},
		}}
		require.NoError(t, w.WriteGameRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), GameRecordsFile))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"game", "uuid", "white", "black", "winner", "total_moves", "start_time", "end_time", "duration"}, rows[0])
		require.Equal(t, []string{"1", "a1b2", "1", "2", "white", "31", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s"}, rows[1])
	})

	t.Run("move records flatten the search metrics", func(t *testing.T) {
		records := []MoveRecord{{
			Game: 1,
			MoveMetric: MoveMetric{
				Step:   1,
				Player: "white",
				Move:   "d1-d7(g7)",
				Hash:   255,
				SearchMetric: SearchMetric{
					Depth: 1, Nodes: 1, Leaves: 2176, Cutoffs: 0, Value: 12, Duration: time.Millisecond,
				},
			},
		}}
		require.NoError(t, w.WriteMoveRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), MoveRecordsFile))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "1", "white", "d1-d7(g7)", "ff", "1", "1", "2176", "0", "12", "1ms"}, rows[1])
	})

	t.Run("the setup is written as yaml", func(t *testing.T) {
		setup := struct {
			Name   string        `yaml:"name"`
			Agents []AgentConfig `yaml:"agents"`
		}{"unit", []AgentConfig{{ID: 1, Kind: "ai"}}}
		require.NoError(t, w.WriteSetup(setup))

		data, err := os.ReadFile(filepath.Join(w.Dir(), SetupFile))
		require.NoError(t, err)
		var got struct {
			Name   string        `yaml:"name"`
			Agents []AgentConfig `yaml:"agents"`
		}
		require.NoError(t, yaml.Unmarshal(data, &got))
		require.Equal(t, setup.Name, got.Name)
		require.Equal(t, setup.Agents, got.Agents)
	})
}

func TestCollector(t *testing.T) {
	t.Run("counts are reset by Start", func(t *testing.T) {
		c := NewCollector()
		c.Start(3)
		c.AddNode()
		c.AddLeaf()
		c.AddLeaf()
		c.AddCutoff()
		m := c.Complete(7)
		require.Equal(t, SearchMetric{Depth: 3, Duration: m.Duration, Nodes: 1, Leaves: 2, Cutoffs: 1, Value: 7}, m)

		c.Start(1)
		m = c.Complete(0)
		require.Equal(t, 1, m.Depth)
		require.Zero(t, m.Nodes)
		require.Zero(t, m.Leaves)
	})

	t.Run("the dummy collector only keeps the value", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(3)
		c.AddNode()
		require.Equal(t, SearchMetric{Value: -4}, c.Complete(-4))
	})
}
