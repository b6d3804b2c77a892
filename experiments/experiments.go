package experiments

import (
	"errors"
	"fmt"

	"dicegames/dice"
	"dicegames/engine"
	"dicegames/experiments/metrics"
	"dicegames/game"
	"dicegames/meta"
	"dicegames/player"

	"github.com/rs/zerolog/log"
)

type Config struct {
	Games     int // per kind
	Kinds     []game.Kind
	Seed      uint64
	QuitAfter int // 0 plays every game to its natural end
	RerollAll bool
}

// Simulate plays cfg.Games automated games of every requested kind and
// returns one record per game. Games that hit the round cap are kept and
// logged.
func Simulate(cfg Config) ([]metrics.GameRecord, error) {
	if cfg.Games <= 0 {
		return nil, fmt.Errorf("simulate: games must be positive, got %d", cfg.Games)
	}
	kinds := cfg.Kinds
	if len(kinds) == 0 {
		kinds = game.Kinds()
	}

	src := dice.NewSource(cfg.Seed)
	records := make([]metrics.GameRecord, 0, cfg.Games*len(kinds))

	log.Info().Int("games", cfg.Games).Int("kinds", len(kinds)).Msg("starting simulation...")

	for _, kind := range kinds {
		log.Info().Stringer("kind", kind).Msg("starting games...")

		for i := 0; i < cfg.Games; i++ {
			g, err := game.New(kind, src)
			if err != nil {
				return records, fmt.Errorf("simulate: %w", err)
			}

			e := engine.NewLocal(newAuto(cfg), engine.WithMetrics(), engine.WithMaxRounds(meta.MaxRounds))
			result, err := e.Run(g)
			if err != nil {
				if !errors.Is(err, engine.ErrMaxRounds) {
					return records, fmt.Errorf("simulate %s game %d: %w", kind, i+1, err)
				}
				log.Warn().Err(err).Stringer("kind", kind).Int("game", i+1).Msg("game stopped at round cap")
			}

			records = append(records, metrics.GameRecord{
				ID:         result.ID.String(),
				GameMetric: result.Metric,
			})
		}

		log.Info().Stringer("kind", kind).Msg("completed games")
	}

	log.Info().Int("records", len(records)).Msg("completed simulation")
	return records, nil
}

func newAuto(cfg Config) *player.Auto {
	options := []player.AutoOption{}
	if cfg.QuitAfter > 0 {
		options = append(options, player.WithQuitAfter(cfg.QuitAfter))
	}
	if cfg.RerollAll {
		options = append(options, player.WithRerollAll())
	}
	return player.NewAuto(options...)
}

// BustFrequency rolls a Sevens Out dice set the given number of times and
// returns the share of sums equal to BustSum. A fair pair of dice gives 6/36.
func BustFrequency(rolls int, src dice.Source) float64 {
	if rolls <= 0 {
		return 0
	}
	g := game.NewSevensOut(src)
	busts := 0
	for i := 0; i < rolls; i++ {
		if g.RollDice() == meta.BustSum {
			busts++
		}
	}
	return float64(busts) / float64(rolls)
}
