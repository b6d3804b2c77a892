package stats

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrackerRecord(t *testing.T) {
	t.Run("counts every play", func(t *testing.T) {
		tracker := NewTracker()
		for i := 0; i < 4; i++ {
			tracker.Record("Sevens Out")
		}

		got, ok := tracker.Plays("Sevens Out")
		require.True(t, ok)
		require.Equal(t, 4, got)
	})

	t.Run("unseen types are absent", func(t *testing.T) {
		tracker := NewTracker()
		tracker.Record("Sevens Out")

		_, ok := tracker.Plays("Three or More")
		require.False(t, ok)
		require.Equal(t, []Entry{{GameType: "Sevens Out", Plays: 1}}, tracker.Report())
	})

	t.Run("empty tracker reports nothing", func(t *testing.T) {
		require.Empty(t, NewTracker().Report())
	})
}

func TestTrackerReport(t *testing.T) {
	tracker := NewTracker()
	tracker.Record("Three or More")
	tracker.Record("Sevens Out")
	tracker.Record("Three or More")

	report := tracker.Report()
	require.Equal(t, []Entry{
		{GameType: "Sevens Out", Plays: 1},
		{GameType: "Three or More", Plays: 2},
	}, report)

	// Mutating the snapshot leaves the tracker alone
	report[0].Plays = 100
	got, _ := tracker.Plays("Sevens Out")
	require.Equal(t, 1, got)
}
