package menu

import (
	"fmt"
	"strconv"
	"strings"

	"dicegames/game"
	"dicegames/meta"
)

// Observe prints a line for every game event.
func (s *Shell) Observe(e game.Event) {
	switch e.Type {
	case game.EventStart:
		s.println(s.style.bold(fmt.Sprintf("Starting %s game...", e.Game)))
	case game.EventRolled:
		s.println(fmt.Sprintf("Rolled: %s", faces(e.Roll.Values)))
		s.println(fmt.Sprintf("Total: %d", e.Roll.Sum))
	case game.EventBust:
		s.println(s.style.bad(fmt.Sprintf("You hit %d! Game Over!", meta.BustSum)))
	case game.EventDouble:
		s.println(s.style.good("You rolled a double! Doubling your score!"))
		s.println(fmt.Sprintf("Score: %d", e.Score))
	case game.EventMatch:
		if e.Count >= meta.MatchSize {
			s.println(s.style.good(fmt.Sprintf("You got %d of %d!", e.Count, e.Face)))
		} else {
			s.println(fmt.Sprintf("You got %d of %d.", e.Count, e.Face))
		}
	case game.EventRerolled:
		s.println(fmt.Sprintf("Rerolled: %s", faces(e.Roll.Values)))
		s.println(fmt.Sprintf("Total: %d", e.Roll.Sum))
	case game.EventScored:
		s.println(s.style.cyan(fmt.Sprintf("+%d points, running total: %d", e.Score, e.Total)))
	case game.EventTarget:
		s.println(s.style.bad(fmt.Sprintf("You reached %d or more! Game Over!", meta.TargetScore)))
	case game.EventQuit:
		s.println(s.style.warn("Quitting game."))
	}
}

func faces(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
