package game

import (
	"dicegames/dice"
	"dicegames/meta"
)

// SevensOut rolls two dice until their sum is 7. A double doubles the
// round's display score. There is no running total.
type SevensOut struct {
	set    *dice.Set
	state  State
	rounds int
}

func NewSevensOut(src dice.Source) *SevensOut {
	return &SevensOut{
		set:   dice.NewSet(meta.SevensOutDice, src),
		state: Rolling,
	}
}

func (g *SevensOut) Kind() Kind {
	return KindSevensOut
}

func (g *SevensOut) PlayRound(_ Player, o Observer) (Round, error) {
	if g.state.Terminal() {
		return Round{}, ErrGameOver
	}

	g.rounds++
	roll := g.set.RollAll()
	round := Round{Number: g.rounds, Roll: roll, Class: Plain, Score: roll.Sum}
	o.Observe(Event{Type: EventRolled, Game: KindSevensOut, Round: round.Number, Roll: roll, Score: roll.Sum})

	// The double check reads the same roll that produced the sum
	switch {
	case roll.Sum == meta.BustSum:
		round.Class = BustRoll
		g.state = Bust
		o.Observe(Event{Type: EventBust, Game: KindSevensOut, Round: round.Number, Roll: roll, Score: roll.Sum})
	case roll.IsDouble():
		round.Class = Double
		round.Score = roll.Sum * 2
		o.Observe(Event{Type: EventDouble, Game: KindSevensOut, Round: round.Number, Roll: roll, Score: round.Score})
	}

	round.Terminal = g.state.Terminal()
	return round, nil
}

func (g *SevensOut) RollDice() int {
	return g.set.RollAll().Sum
}

func (g *SevensOut) Bounds() (lo, hi int) {
	return dice.Bounds(g.set.Len())
}

// Total is always zero: Sevens Out keeps no score between rounds.
func (g *SevensOut) Total() int {
	return 0
}

func (g *SevensOut) State() State {
	return g.state
}

func (g *SevensOut) Quit() {
	if !g.state.Terminal() {
		g.state = UserQuit
	}
}
