package metrics

import (
	"time"

	"dicegames/game"
)

// GameMetric summarises one finished game.
type GameMetric struct {
	Kind      game.Kind
	Ending    game.State
	Rounds    int
	Restarts  int
	Rerolls   int
	Doubles   int
	Matches   int
	Total     int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

type Collector interface {
	Start(kind game.Kind)
	AddRound(round game.Round)
	Complete(ending game.State, total int) GameMetric
}

type collector struct {
	metric GameMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(kind game.Kind) {
	m.metric = GameMetric{Kind: kind, StartTime: time.Now()}
}

func (m *collector) AddRound(round game.Round) {
	m.metric.Rounds++
	if round.Restart {
		m.metric.Restarts++
	}
	if round.Rerolled {
		m.metric.Rerolls++
	}
	switch round.Class {
	case game.Double:
		m.metric.Doubles++
	case game.ThreeOfKind:
		m.metric.Matches++
	}
}

func (m *collector) Complete(ending game.State, total int) GameMetric {
	m.metric.Ending = ending
	m.metric.Total = total
	m.metric.EndTime = time.Now()
	m.metric.Duration = m.metric.EndTime.Sub(m.metric.StartTime)
	return m.metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(kind game.Kind)                             {}
func (m *dummyCollector) AddRound(round game.Round)                        {}
func (m *dummyCollector) Complete(ending game.State, total int) GameMetric { return GameMetric{} }
