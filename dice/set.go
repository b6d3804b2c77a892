package dice

import "fmt"

// Roll is the outcome of rolling a whole set once. Values are in die order.
type Roll struct {
	Values []int
	Sum    int
}

// Frequencies counts how many dice show each face. Index 0 is unused so a
// face can be used as the index directly.
func (r Roll) Frequencies() [Faces + 1]int {
	var counts [Faces + 1]int
	for _, v := range r.Values {
		counts[v]++
	}
	return counts
}

// IsDouble reports whether a two-dice roll shows the same face twice.
func (r Roll) IsDouble() bool {
	return len(r.Values) == 2 && r.Values[0] == r.Values[1]
}

func (r Roll) String() string {
	return fmt.Sprintf("%v=%d", r.Values, r.Sum)
}

// Set is a fixed-size ordered collection of dice.
type Set struct {
	dice []*Die
}

// NewSet creates count dice drawing from src. The size never changes afterwards.
func NewSet(count int, src Source) *Set {
	if count < 1 {
		panic("dice: a set needs at least one die")
	}
	set := &Set{dice: make([]*Die, count)}
	for i := range set.dice {
		set.dice[i] = NewDie(src)
	}
	return set
}

func (s *Set) Len() int {
	return len(s.dice)
}

// RollAll rolls every die exactly once, in order.
func (s *Set) RollAll() Roll {
	roll := Roll{Values: make([]int, len(s.dice))}
	for i, d := range s.dice {
		roll.Values[i] = d.Roll()
		roll.Sum += roll.Values[i]
	}
	return roll
}

// Reroll rolls again every die whose keep flag is false and copies the kept
// faces from prev.
func (s *Set) Reroll(prev Roll, keep []bool) Roll {
	if len(prev.Values) != len(s.dice) || len(keep) != len(s.dice) {
		panic("dice: reroll does not match set size")
	}
	roll := Roll{Values: make([]int, len(s.dice))}
	for i, d := range s.dice {
		if keep[i] {
			roll.Values[i] = prev.Values[i]
		} else {
			roll.Values[i] = d.Roll()
		}
		roll.Sum += roll.Values[i]
	}
	return roll
}

// Bounds returns the smallest and largest sum count dice can produce.
func Bounds(count int) (lo, hi int) {
	return count, count * Faces
}
