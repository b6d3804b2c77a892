package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"dicegames/config"
	"dicegames/dice"
	"dicegames/experiments"
	"dicegames/experiments/metrics"
	"dicegames/game"
	"dicegames/menu"

	"github.com/joho/godotenv"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "", "Path to an optional YAML config file")
	seed := flag.Uint64("seed", 0, "Seed for the dice, 0 seeds from the clock")
	simulate := flag.Int("simulate", 0, "Play N automated games per kind, print CSV and exit")
	kind := flag.String("kind", "", "Game to simulate: sevens-out, three-or-more or all")
	quitAfter := flag.Int("quit-after", 0, "Automated players quit after N rounds, 0 plays to the end")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output(), config.Usage())
	}
	flag.Parse()

	cfg := config.MustLoad(*configPath)
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *simulate > 0 {
		cfg.Simulation.Games = *simulate
	}
	if *kind != "" {
		cfg.Simulation.Kind = *kind
	}
	if *quitAfter > 0 {
		cfg.Simulation.QuitAfter = *quitAfter
	}

	initLogger(cfg.Log)

	if cfg.Simulation.Games > 0 {
		if err := runSimulation(cfg, os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("simulation failed")
		}
		return
	}

	isTerminal := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	shell := menu.New(os.Stdin, os.Stdout, dice.NewSource(cfg.Seed), menu.WithColor(cfg.UseColor(isTerminal)))
	if err := shell.Run(); err != nil {
		log.Fatal().Err(err).Msg("menu stopped")
	}
}

func initLogger(conf config.Log) {
	zerolog.SetGlobalLevel(conf.ZerologLevel())
	if conf.Format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        colorable.NewColorableStderr(),
		TimeFormat: time.Kitchen,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})
}

func runSimulation(cfg *config.Config, out io.Writer) error {
	var kinds []game.Kind
	if name := strings.TrimSpace(cfg.Simulation.Kind); name != "" && name != "all" {
		k, err := game.ParseKind(name)
		if err != nil {
			return err
		}
		kinds = []game.Kind{k}
	}

	records, err := experiments.Simulate(experiments.Config{
		Games:     cfg.Simulation.Games,
		Kinds:     kinds,
		Seed:      cfg.Seed,
		QuitAfter: cfg.Simulation.QuitAfter,
		RerollAll: cfg.Simulation.RerollAll,
	})
	if err != nil {
		return err
	}

	writer := metrics.NewWriter(out)
	if err := writer.WriteGameRecords(records); err != nil {
		return err
	}
	fmt.Fprintln(out)
	if err := writer.WriteSummaries(metrics.Summarise(records)); err != nil {
		return err
	}

	frequency := experiments.BustFrequency(10000, dice.NewSource(cfg.Seed))
	log.Info().Float64("bust_frequency", frequency).Float64("expected", 6.0/36.0).Msg("sevens out fairness")
	return nil
}
