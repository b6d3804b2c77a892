package game

import (
	"errors"
	"fmt"
	"strings"

	"dicegames/dice"
)

var (
	ErrGameOver    = errors.New("game is over - no rounds allowed")
	ErrUnknownKind = errors.New("unknown game kind")
)

// Kind identifies one of the two dice games.
type Kind int

const (
	KindSevensOut Kind = iota + 1
	KindThreeOrMore
)

// Kinds lists every playable game in menu order.
func Kinds() []Kind {
	return []Kind{KindSevensOut, KindThreeOrMore}
}

// String returns the label statistics are recorded under.
func (k Kind) String() string {
	switch k {
	case KindSevensOut:
		return "Sevens Out"
	case KindThreeOrMore:
		return "Three or More"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind accepts either the display label or a dashed name such as "sevens-out".
func ParseKind(s string) (Kind, error) {
	normalized := strings.ToLower(strings.Join(strings.Fields(strings.ReplaceAll(s, "-", " ")), " "))
	for _, k := range Kinds() {
		if normalized == strings.ToLower(k.String()) {
			return k, nil
		}
	}
	switch normalized {
	case "sevens", "7":
		return KindSevensOut, nil
	case "three", "3":
		return KindThreeOrMore, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

// State is the position of a game in its state machine.
type State int

const (
	Rolling       State = iota
	Bust                // Sevens Out rolled a 7
	ScoreReached        // Three or More reached the target score
	UserQuit            // the player asked to stop
)

// Terminal reports whether no further rounds can be played.
func (s State) Terminal() bool {
	return s != Rolling
}

func (s State) String() string {
	switch s {
	case Rolling:
		return "rolling"
	case Bust:
		return "bust"
	case ScoreReached:
		return "score-reached"
	case UserQuit:
		return "quit"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Game is implemented by exactly the two variants in this package.
type Game interface {
	Kind() Kind
	// PlayRound rolls the dice once (or twice on a partial reroll), classifies
	// the outcome and applies it. It returns ErrGameOver once the game is terminal.
	PlayRound(p Player, o Observer) (Round, error)
	// RollDice rolls the whole set once without touching the game state.
	RollDice() int
	// Bounds returns the smallest and largest sum RollDice can return.
	Bounds() (lo, hi int)
	Total() int
	State() State
	Quit()
}

// New constructs a fresh game of the given kind.
func New(kind Kind, src dice.Source) (Game, error) {
	switch kind {
	case KindSevensOut:
		return NewSevensOut(src), nil
	case KindThreeOrMore:
		return NewThreeOrMore(src), nil
	default:
		return nil, fmt.Errorf("%s: %w", kind, ErrUnknownKind)
	}
}
