package player

import (
	"errors"

	"dicegames/game"
)

var ErrScriptExhausted = errors.New("scripted player has no choices left")

// Scripted replays a fixed sequence of choices regardless of the decision asked.
type Scripted struct {
	choices []game.Choice
	asked   []game.Decision
}

func NewScripted(choices ...game.Choice) *Scripted {
	return &Scripted{choices: choices}
}

func (s *Scripted) Choose(d game.Decision) (game.Choice, error) {
	s.asked = append(s.asked, d)
	if len(s.choices) == 0 {
		return game.Quit, ErrScriptExhausted
	}
	choice := s.choices[0]
	s.choices = s.choices[1:]
	return choice, nil
}

// Asked returns every decision seen so far, in order.
func (s *Scripted) Asked() []game.Decision {
	return s.asked
}

func (s *Scripted) Remaining() int {
	return len(s.choices)
}
