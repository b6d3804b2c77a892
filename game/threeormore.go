package game

import (
	"fmt"

	"dicegames/dice"
	"dicegames/meta"
)

// ThreeOrMore rolls five dice. Three or more of a kind adds MatchPoints to the
// running total, and the game ends on the match that would take the total to
// TargetScore or beyond.
type ThreeOrMore struct {
	set    *dice.Set
	state  State
	total  int
	rounds int
}

func NewThreeOrMore(src dice.Source) *ThreeOrMore {
	return &ThreeOrMore{
		set:   dice.NewSet(meta.ThreeOrMoreDice, src),
		state: Rolling,
	}
}

func (g *ThreeOrMore) Kind() Kind {
	return KindThreeOrMore
}

func (g *ThreeOrMore) PlayRound(p Player, o Observer) (Round, error) {
	if g.state.Terminal() {
		return Round{}, ErrGameOver
	}

	g.rounds++
	roll := g.set.RollAll()
	round := Round{Number: g.rounds, Roll: roll, Total: g.total}
	final := roll
	o.Observe(g.event(EventRolled, round.Number, roll))

	// Counts come from the roll that produced the sum, never from a fresh one
	m := findMatch(roll.Frequencies())
	g.observeMatches(o, round.Number, roll, m)

	if m.class == TwoOfKind {
		choice, err := p.Choose(DecideReroll)
		if err != nil {
			return round, fmt.Errorf("choose reroll: %w", err)
		}

		switch choice {
		case RerollAll:
			round.Class, round.Face, round.Count = m.class, m.face, m.count
			round.Restart = true
			return round, nil
		case RerollNonMatching:
			keep := make([]bool, len(roll.Values))
			for i, v := range roll.Values {
				keep[i] = v == m.face
			}
			reroll := g.set.Reroll(roll, keep)
			round.Rerolled, round.Reroll = true, reroll
			final = reroll
			o.Observe(g.event(EventRerolled, round.Number, reroll))

			m = findMatch(reroll.Frequencies())
			g.observeMatches(o, round.Number, reroll, m)
		}
	}

	round.Class, round.Face, round.Count = m.class, m.face, m.count
	if m.class == ThreeOfKind {
		g.score(&round, final, o)
	}

	round.Total = g.total
	round.Terminal = g.state.Terminal()
	return round, nil
}

// score applies a three-or-more. The target check happens before the points
// are added, so the total never goes past the last non-terminal value.
func (g *ThreeOrMore) score(round *Round, roll dice.Roll, o Observer) {
	if g.total+meta.MatchPoints >= meta.TargetScore {
		g.state = ScoreReached
		e := g.event(EventTarget, round.Number, roll)
		e.Score = meta.MatchPoints
		o.Observe(e)
		return
	}

	g.total += meta.MatchPoints
	round.Score = meta.MatchPoints
	e := g.event(EventScored, round.Number, roll)
	e.Score = meta.MatchPoints
	o.Observe(e)
}

func (g *ThreeOrMore) observeMatches(o Observer, number int, roll dice.Roll, m match) {
	counts := roll.Frequencies()
	for _, face := range m.seen {
		e := g.event(EventMatch, number, roll)
		e.Face, e.Count = face, counts[face]
		o.Observe(e)
	}
}

func (g *ThreeOrMore) event(t EventType, number int, roll dice.Roll) Event {
	return Event{
		Type:  t,
		Game:  KindThreeOrMore,
		Round: number,
		Roll:  roll,
		Score: roll.Sum,
		Total: g.total,
	}
}

func (g *ThreeOrMore) RollDice() int {
	return g.set.RollAll().Sum
}

func (g *ThreeOrMore) Bounds() (lo, hi int) {
	return dice.Bounds(g.set.Len())
}

func (g *ThreeOrMore) Total() int {
	return g.total
}

func (g *ThreeOrMore) State() State {
	return g.state
}

func (g *ThreeOrMore) Quit() {
	if !g.state.Terminal() {
		g.state = UserQuit
	}
}
