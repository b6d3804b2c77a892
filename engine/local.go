package engine

import (
	"fmt"

	"dicegames/experiments/metrics"
	"dicegames/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Option func(e *Local)

// Local runs games in-process against a single player.
type Local struct {
	player    game.Player
	observer  game.Observer
	maxRounds int
	metrics   bool
}

func WithObserver(observer game.Observer) Option {
	return func(e *Local) {
		e.observer = observer
	}
}

// WithMaxRounds stops a game that has not ended after n rounds.
func WithMaxRounds(n int) Option {
	return func(e *Local) {
		e.maxRounds = n
	}
}

func WithMetrics() Option {
	return func(e *Local) {
		e.metrics = true
	}
}

func NewLocal(player game.Player, options ...Option) *Local {
	e := &Local{
		player:   player,
		observer: game.Discard,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the round loop until the game is over. A player error quits
// the game and is returned alongside the result.
func (e *Local) Run(g game.Game) (Result, error) {
	result := Result{ID: uuid.New(), Kind: g.Kind()}
	logger := log.With().Str("game", result.ID.String()).Stringer("kind", g.Kind()).Logger()

	collector := metrics.NewDummyCollector()
	if e.metrics {
		collector = metrics.NewCollector()
	}
	collector.Start(g.Kind())

	logger.Info().Msg("game started")
	e.observer.Observe(game.Event{Type: game.EventStart, Game: g.Kind()})

	var err error
	for !g.State().Terminal() {
		if e.maxRounds > 0 && result.Rounds >= e.maxRounds {
			e.quit(g)
			err = fmt.Errorf("%s after %d rounds: %w", g.Kind(), result.Rounds, ErrMaxRounds)
			break
		}

		round, roundErr := g.PlayRound(e.player, e.observer)
		result.Rounds++
		collector.AddRound(round)
		if roundErr != nil {
			e.quit(g)
			err = fmt.Errorf("round %d: %w", round.Number, roundErr)
			break
		}

		logger.Debug().
			Int("round", round.Number).
			Ints("roll", round.Roll.Values).
			Stringer("class", round.Class).
			Int("score", round.Score).
			Int("total", round.Total).
			Bool("restart", round.Restart).
			Msg("round played")

		// A restarted round rolls again straight away
		if round.Terminal || round.Restart {
			continue
		}

		choice, chooseErr := e.player.Choose(game.DecideContinue)
		if chooseErr != nil {
			e.quit(g)
			err = fmt.Errorf("choose continue after round %d: %w", round.Number, chooseErr)
			break
		}
		if choice == game.Quit {
			e.quit(g)
		}
	}

	result.Ending = g.State()
	result.Total = g.Total()
	result.Metric = collector.Complete(result.Ending, result.Total)

	event := logger.Info()
	if err != nil {
		event = logger.Warn().Err(err)
	}
	event.Stringer("ending", result.Ending).Int("rounds", result.Rounds).Int("total", result.Total).Msg("game finished")

	return result, err
}

func (e *Local) quit(g game.Game) {
	if g.State().Terminal() {
		return
	}
	g.Quit()
	e.observer.Observe(game.Event{Type: game.EventQuit, Game: g.Kind(), Total: g.Total()})
}
