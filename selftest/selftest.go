// Package selftest rolls each game's dice once and checks the sum against the
// bounds implied by its number of dice. It guards the die range rather than
// game rules.
package selftest

import (
	"errors"
	"fmt"

	"dicegames/dice"
	"dicegames/game"
	"dicegames/meta"

	"github.com/rs/zerolog/log"
)

var ErrOutOfBounds = errors.New("roll out of bounds")

// Check is a single bounded roll.
type Check struct {
	Name string
	Roll func() int
	Min  int
	Max  int
}

// Result is the outcome of one Check.
type Result struct {
	Name  string
	Value int
	Min   int
	Max   int
}

func (r Result) Passed() bool {
	return r.Value >= r.Min && r.Value <= r.Max
}

type Report struct {
	Results []Result
}

func (r Report) Passed() bool {
	return r.Err() == nil
}

// Err joins one ErrOutOfBounds per failing check, or returns nil.
func (r Report) Err() error {
	var errs []error
	for _, res := range r.Results {
		if !res.Passed() {
			errs = append(errs, fmt.Errorf("%s rolled %d, want [%d, %d]: %w", res.Name, res.Value, res.Min, res.Max, ErrOutOfBounds))
		}
	}
	return errors.Join(errs...)
}

// Default builds a fresh game of each kind. The bounds come from the dice
// counts in meta, not from the games themselves.
func Default(src dice.Source) []Check {
	sevensLo, sevensHi := dice.Bounds(meta.SevensOutDice)
	threeLo, threeHi := dice.Bounds(meta.ThreeOrMoreDice)
	return []Check{
		{Name: game.KindSevensOut.String(), Roll: game.NewSevensOut(src).RollDice, Min: sevensLo, Max: sevensHi},
		{Name: game.KindThreeOrMore.String(), Roll: game.NewThreeOrMore(src).RollDice, Min: threeLo, Max: threeHi},
	}
}

func Run(checks ...Check) Report {
	report := Report{Results: make([]Result, 0, len(checks))}
	for _, c := range checks {
		res := Result{Name: c.Name, Value: c.Roll(), Min: c.Min, Max: c.Max}
		report.Results = append(report.Results, res)

		if !res.Passed() {
			log.Error().Str("check", res.Name).Int("value", res.Value).Int("min", res.Min).Int("max", res.Max).Msg("self-test failed")
			continue
		}
		log.Debug().Str("check", res.Name).Int("value", res.Value).Msg("self-test passed")
	}
	return report
}
