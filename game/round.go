package game

import (
	"dicegames/dice"
	"dicegames/meta"
)

// Class is the classification of a round's roll.
type Class int

const (
	Plain       Class = iota // Sevens Out: no double, no 7
	BustRoll                 // Sevens Out: sum of 7
	Double                   // Sevens Out: both dice equal
	ThreeOfKind              // Three or More: three or more equal faces
	TwoOfKind                // Three or More: a pair and nothing better
	NoMatch                  // Three or More: nothing qualifying
)

func (c Class) String() string {
	switch c {
	case BustRoll:
		return "bust"
	case Double:
		return "double"
	case ThreeOfKind:
		return "three-or-more"
	case TwoOfKind:
		return "two-of-a-kind"
	case NoMatch:
		return "no-match"
	default:
		return "plain"
	}
}

// Round records what a single call to PlayRound did.
type Round struct {
	Number   int
	Roll     dice.Roll
	Rerolled bool
	Reroll   dice.Roll // set when Rerolled
	Class    Class
	Face     int // matched face for ThreeOfKind and TwoOfKind
	Count    int
	Score    int // display score (Sevens Out) or points awarded (Three or More)
	Total    int // running total after the round
	Restart  bool
	Terminal bool
}

// match is the result of scanning face counts in ascending order.
type match struct {
	class Class
	face  int
	count int
	seen  []int // faces reported while scanning, in order
}

// findMatch scans faces 1..6. The first face with MatchSize or more dice wins
// and ends the scan. Otherwise the lowest pair is kept.
func findMatch(counts [dice.Faces + 1]int) match {
	m := match{class: NoMatch}
	for face := 1; face <= dice.Faces; face++ {
		switch {
		case counts[face] >= meta.MatchSize:
			m.class, m.face, m.count = ThreeOfKind, face, counts[face]
			m.seen = append(m.seen, face)
			return m
		case counts[face] == meta.PairSize:
			if m.class != TwoOfKind {
				m.class, m.face, m.count = TwoOfKind, face, counts[face]
			}
			m.seen = append(m.seen, face)
		}
	}
	return m
}
