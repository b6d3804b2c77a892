package game

import "dicegames/dice"

// Decision is a question the game asks the player.
type Decision int

const (
	DecideContinue Decision = iota // roll again or quit
	DecideReroll                   // reroll all dice or only the non-matching ones
)

func (d Decision) String() string {
	if d == DecideReroll {
		return "reroll"
	}
	return "continue"
}

// Choice is the player's answer to a Decision.
type Choice int

const (
	Continue Choice = iota
	Quit
	RerollAll
	RerollNonMatching
)

func (c Choice) String() string {
	switch c {
	case Quit:
		return "quit"
	case RerollAll:
		return "reroll-all"
	case RerollNonMatching:
		return "reroll-non-matching"
	default:
		return "continue"
	}
}

// Player answers decisions. Implementations block until a choice is made.
type Player interface {
	Choose(d Decision) (Choice, error)
}

// EventType tags what happened in an Event.
type EventType int

const (
	EventStart EventType = iota
	EventRolled
	EventBust
	EventDouble
	EventMatch
	EventRerolled
	EventScored
	EventTarget
	EventQuit
)

// Event describes one intermediate result of a game.
type Event struct {
	Type  EventType
	Game  Kind
	Round int
	Roll  dice.Roll
	Face  int // EventMatch
	Count int // EventMatch
	Score int // round display score or points awarded
	Total int // running total after the event
}

// Observer receives events as they happen.
type Observer interface {
	Observe(e Event)
}

// ObserverFunc adapts a function to an Observer.
type ObserverFunc func(e Event)

func (f ObserverFunc) Observe(e Event) {
	f(e)
}

// Discard drops every event.
var Discard Observer = ObserverFunc(func(Event) {})
