package engine

import (
	"errors"

	"dicegames/experiments/metrics"
	"dicegames/game"

	"github.com/google/uuid"
)

var ErrMaxRounds = errors.New("round limit reached")

type Engine interface {
	// Run plays a game until it reaches a terminal state
	Run(g game.Game) (Result, error)
}

// Result describes how a game ended.
type Result struct {
	ID     uuid.UUID
	Kind   game.Kind
	Ending game.State
	Rounds int
	Total  int
	Metric metrics.GameMetric
}
