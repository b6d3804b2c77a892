package experiments

import (
	"bytes"
	"encoding/csv"
	"testing"

	"dicegames/dice"
	"dicegames/experiments/metrics"
	"dicegames/game"

	"github.com/stretchr/testify/require"
)

func TestSimulate(t *testing.T) {
	t.Run("plays every kind to a terminal state", func(t *testing.T) {
		records, err := Simulate(Config{Games: 5, Seed: 11})

		require.NoError(t, err)
		require.Len(t, records, 10)
		for i, r := range records {
			want := game.KindSevensOut
			if i >= 5 {
				want = game.KindThreeOrMore
			}
			require.Equal(t, want, r.Kind)
			require.NotEmpty(t, r.ID)
			require.Positive(t, r.Rounds)
		}

		summaries := metrics.Summarise(records)
		require.Len(t, summaries, 2)
		require.Equal(t, 5, summaries[0].Endings[game.Bust], "Auto players only stop Sevens Out on a 7")
		require.Equal(t, 5, summaries[1].Endings[game.ScoreReached], "Three or More runs until the target")
	})

	t.Run("quit after caps the rounds", func(t *testing.T) {
		records, err := Simulate(Config{Games: 20, Kinds: []game.Kind{game.KindSevensOut}, Seed: 3, QuitAfter: 1})

		require.NoError(t, err)
		for _, r := range records {
			require.LessOrEqual(t, r.Rounds, 1)
			require.Contains(t, []game.State{game.Bust, game.UserQuit}, r.Ending)
		}
	})

	t.Run("same seed gives the same games", func(t *testing.T) {
		a, err := Simulate(Config{Games: 3, Seed: 77})
		require.NoError(t, err)
		b, err := Simulate(Config{Games: 3, Seed: 77})
		require.NoError(t, err)

		for i := range a {
			require.Equal(t, a[i].Rounds, b[i].Rounds)
			require.Equal(t, a[i].Ending, b[i].Ending)
			require.Equal(t, a[i].Total, b[i].Total)
		}
	})

	t.Run("rejects zero games", func(t *testing.T) {
		_, err := Simulate(Config{})
		require.Error(t, err)
	})
}

func TestBustFrequency(t *testing.T) {
	got := BustFrequency(10000, dice.NewSource(5))
	require.InDelta(t, 6.0/36.0, got, 0.02)

	require.Equal(t, 1.0, BustFrequency(10, dice.NewSequence(3, 4)))
	require.Zero(t, BustFrequency(0, dice.NewSource(1)))
}

func TestWriterOutput(t *testing.T) {
	records, err := Simulate(Config{Games: 2, Seed: 9})
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	w := metrics.NewWriter(buf)
	require.NoError(t, w.WriteGameRecords(records))

	rows, err := csv.NewReader(buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 5, "Header plus one row per game")
	require.Equal(t, "id", rows[0][0])
	require.Equal(t, "Sevens Out", rows[1][1])
	require.Equal(t, "bust", rows[1][2])

	buf.Reset()
	require.NoError(t, w.WriteSummaries(metrics.Summarise(records)))
	rows, err = csv.NewReader(buf).ReadAll()
	require.NoError(t, err)
	require.Equal(t, []string{"kind", "games", "avg_rounds", "bust", "score_reached", "quit"}, rows[0])
	require.Equal(t, "Three or More", rows[2][0])
	require.Equal(t, "2", rows[2][4])
}
