package player

import "dicegames/game"

type AutoOption func(a *Auto)

// Auto plays without input. It keeps rolling until quitAfter continues have
// been answered (0 means never quit) and prefers keeping pairs on a reroll.
type Auto struct {
	quitAfter int
	reroll    game.Choice
	continues int
}

func WithQuitAfter(rounds int) AutoOption {
	return func(a *Auto) {
		a.quitAfter = rounds
	}
}

func WithRerollAll() AutoOption {
	return func(a *Auto) {
		a.reroll = game.RerollAll
	}
}

func NewAuto(options ...AutoOption) *Auto {
	a := &Auto{reroll: game.RerollNonMatching}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *Auto) Choose(d game.Decision) (game.Choice, error) {
	if d == game.DecideReroll {
		return a.reroll, nil
	}

	a.continues++
	if a.quitAfter > 0 && a.continues >= a.quitAfter {
		return game.Quit, nil
	}
	return game.Continue, nil
}
