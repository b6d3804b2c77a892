package dice

import (
	"time"

	"golang.org/x/exp/rand"
)

// Faces is the number of sides on every die.
const Faces = 6

// Source supplies the randomness behind a die. Intn returns a value in [0, n).
type Source interface {
	Intn(n int) int
}

// NewSource returns a PCG-backed source. A zero seed is replaced by the clock,
// any other seed yields a reproducible sequence of rolls.
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

// Die produces a uniformly random face in [1, Faces] on every roll.
type Die struct {
	src Source
}

func NewDie(src Source) *Die {
	return &Die{src: src}
}

func (d *Die) Roll() int {
	return d.src.Intn(Faces) + 1
}

// Sequence replays a fixed list of faces and starts over once exhausted.
// It makes rolls predictable for tests and demos.
type Sequence struct {
	faces []int
	next  int
}

func NewSequence(faces ...int) *Sequence {
	for _, f := range faces {
		if f < 1 || f > Faces {
			panic("dice: face not in range 1-6")
		}
	}
	if len(faces) == 0 {
		panic("dice: empty sequence")
	}
	return &Sequence{faces: faces}
}

func (s *Sequence) Intn(n int) int {
	face := s.faces[s.next%len(s.faces)]
	s.next++
	return (face - 1) % n
}
