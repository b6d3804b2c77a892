package menu

import (
	"bytes"
	"strings"
	"testing"

	"dicegames/dice"
	"dicegames/stats"

	"github.com/stretchr/testify/require"
)

func runShell(t *testing.T, input string, src dice.Source, options ...Option) string {
	t.Helper()
	out := &bytes.Buffer{}
	shell := New(strings.NewReader(input), out, src, options...)
	require.NoError(t, shell.Run())
	return out.String()
}

func TestShellMenu(t *testing.T) {
	t.Run("bad input re-prompts without changing state", func(t *testing.T) {
		tracker := stats.NewTracker()
		out := runShell(t, "abc\n9\n0\n3\n5\n", dice.NewSource(1), WithStats(tracker))

		require.Contains(t, out, "Invalid input. Please enter a number.")
		require.Equal(t, 2, strings.Count(out, "Invalid choice. Please select a number from the menu."))
		require.Contains(t, out, "No games played yet.")
		require.Empty(t, tracker.Report())
		require.Equal(t, 5, strings.Count(out, "Enter your choice: "), "One prompt per line read")
	})

	t.Run("exit", func(t *testing.T) {
		out := runShell(t, "5\n1\n", dice.NewSource(1))

		require.Contains(t, out, "Exiting program...")
		require.NotContains(t, out, "Starting Sevens Out game...", "Nothing runs after exit")
	})

	t.Run("end of input exits cleanly", func(t *testing.T) {
		out := runShell(t, "", dice.NewSource(1))
		require.Contains(t, out, "Exiting program...")
	})
}

func TestShellSevensOut(t *testing.T) {
	t.Run("plays to a bust and records the play", func(t *testing.T) {
		tracker := stats.NewTracker()
		out := runShell(t, "1\n\n3\n5\n", dice.NewSequence(2, 4, 3, 4), WithStats(tracker))

		require.Contains(t, out, "Starting Sevens Out game...")
		require.Contains(t, out, "Rolled: 2 4")
		require.Contains(t, out, "Total: 6")
		require.Contains(t, out, "Total: 7")
		require.Contains(t, out, "You hit 7! Game Over!")
		require.Contains(t, out, "Sevens Out: 1 plays")

		plays, ok := tracker.Plays("Sevens Out")
		require.True(t, ok)
		require.Equal(t, 1, plays)
	})

	t.Run("announces doubles", func(t *testing.T) {
		out := runShell(t, "1\n\n5\n", dice.NewSequence(3, 3, 1, 6))

		require.Contains(t, out, "You rolled a double! Doubling your score!")
		require.Contains(t, out, "Score: 12")
	})

	t.Run("quitting still counts as a play", func(t *testing.T) {
		tracker := stats.NewTracker()
		out := runShell(t, "1\nq\n1\nQ\n5\n", dice.NewSequence(2, 4), WithStats(tracker))

		require.Equal(t, 2, strings.Count(out, "Quitting game."))
		plays, _ := tracker.Plays("Sevens Out")
		require.Equal(t, 2, plays)
	})

	t.Run("input ending mid-game records the play and exits", func(t *testing.T) {
		tracker := stats.NewTracker()
		out := runShell(t, "1\n", dice.NewSequence(2, 4), WithStats(tracker))

		require.Contains(t, out, "Exiting program...")
		plays, _ := tracker.Plays("Sevens Out")
		require.Equal(t, 1, plays)
	})
}

func TestShellThreeOrMore(t *testing.T) {
	t.Run("scores a match then quits", func(t *testing.T) {
		out := runShell(t, "2\nq\n3\n", dice.NewSequence(1, 1, 1, 2, 3))

		require.Contains(t, out, "Starting Three or More game...")
		require.Contains(t, out, "You got 3 of 1!")
		require.Contains(t, out, "+12 points, running total: 12")
		require.Contains(t, out, "Final total: 12")
		require.Contains(t, out, "Three or More: 1 plays")
	})

	t.Run("offers a reroll on a pair", func(t *testing.T) {
		src := dice.NewSequence(
			5, 5, 1, 2, 3, // pair of fives
			5, 4, 6, // rerolled dice make three fives
			6, 6, 6, 1, 2, // match that reaches the target
		)
		out := runShell(t, "2\nb\n\n5\n", src)

		require.Contains(t, out, "You got 2 of 5.")
		require.Contains(t, out, "(A)")
		require.Contains(t, out, "Rerolled: 5 5 5 4 6")
		require.Contains(t, out, "You got 3 of 5!")
		require.Contains(t, out, "You got 3 of 6!")
		require.Contains(t, out, "You reached 20 or more! Game Over!")
	})
}

func TestShellSelfTest(t *testing.T) {
	out := runShell(t, "4\n5\n", dice.NewSource(8))

	require.Contains(t, out, "Running tests...")
	require.Contains(t, out, "PASS Sevens Out")
	require.Contains(t, out, "PASS Three or More")
	require.Contains(t, out, "Tests passed.")
}

func TestShellColor(t *testing.T) {
	plain := runShell(t, "5\n", dice.NewSource(1))
	require.NotContains(t, plain, "\033[")

	colored := runShell(t, "5\n", dice.NewSource(1), WithColor(true))
	require.Contains(t, colored, colBold+"Menu:"+colReset)
}
