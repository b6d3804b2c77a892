package menu

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dicegames/dice"
	"dicegames/engine"
	"dicegames/game"
	"dicegames/player"
	"dicegames/selftest"
	"dicegames/stats"

	"github.com/rs/zerolog/log"
)

const (
	choiceSevensOut = iota + 1
	choiceThreeOrMore
	choiceStatistics
	choiceSelfTest
	choiceExit
)

type Option func(s *Shell)

func WithColor(enabled bool) Option {
	return func(s *Shell) {
		s.style.enabled = enabled
	}
}

// WithStats shares a tracker with the caller instead of a private one.
func WithStats(tracker *stats.Tracker) Option {
	return func(s *Shell) {
		s.stats = tracker
	}
}

// Shell is the text menu. It owns the input stream; games read their
// decisions from the same console.
type Shell struct {
	console *player.Console
	out     io.Writer
	src     dice.Source
	stats   *stats.Tracker
	style   style
}

func New(in io.Reader, out io.Writer, src dice.Source, options ...Option) *Shell {
	s := &Shell{
		console: player.NewConsole(in, out),
		out:     out,
		src:     src,
		stats:   stats.NewTracker(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Run shows the menu until the user exits or input ends.
func (s *Shell) Run() error {
	for {
		s.printMenu()

		line, err := s.console.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.println("\nExiting program...")
				return nil
			}
			return fmt.Errorf("read menu choice: %w", err)
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			s.println(s.style.warn("Invalid input. Please enter a number."))
			continue
		}

		switch choice {
		case choiceSevensOut:
			err = s.play(game.KindSevensOut)
		case choiceThreeOrMore:
			err = s.play(game.KindThreeOrMore)
		case choiceStatistics:
			s.showStatistics()
		case choiceSelfTest:
			s.runSelfTest()
		case choiceExit:
			s.println("Exiting program...")
			return nil
		default:
			s.println(s.style.warn("Invalid choice. Please select a number from the menu."))
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				s.println("\nExiting program...")
				return nil
			}
			return err
		}
	}
}

func (s *Shell) printMenu() {
	s.println("\n" + s.style.bold("Menu:"))
	s.println("1. Play Sevens Out")
	s.println("2. Play Three or More")
	s.println("3. View Statistics")
	s.println("4. Run Tests")
	s.println("5. Exit")
	fmt.Fprint(s.out, "Enter your choice: ")
}

// play runs a fresh game to the end. The play is recorded however the game
// ended, including a quit caused by input running out.
func (s *Shell) play(kind game.Kind) error {
	g, err := game.New(kind, s.src)
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}

	e := engine.NewLocal(s.console, engine.WithObserver(s))
	result, err := e.Run(g)
	s.stats.Record(kind.String())

	if err != nil {
		if errors.Is(err, io.EOF) {
			return err
		}
		return fmt.Errorf("play %s: %w", kind, err)
	}

	if kind == game.KindThreeOrMore {
		s.println(fmt.Sprintf("Final total: %d", result.Total))
	}
	return nil
}

func (s *Shell) showStatistics() {
	s.println(s.style.bold("Game Statistics:"))
	report := s.stats.Report()
	if len(report) == 0 {
		s.println("No games played yet.")
		return
	}
	for _, entry := range report {
		s.println(fmt.Sprintf("%s: %d plays", entry.GameType, entry.Plays))
	}
}

func (s *Shell) runSelfTest() {
	s.println("Running tests...")
	report := selftest.Run(selftest.Default(s.src)...)
	for _, res := range report.Results {
		line := fmt.Sprintf("%s rolled %d (expected %d-%d)", res.Name, res.Value, res.Min, res.Max)
		if res.Passed() {
			s.println(s.style.good("PASS ") + line)
		} else {
			s.println(s.style.bad("FAIL ") + line)
		}
	}

	if err := report.Err(); err != nil {
		log.Error().Err(err).Msg("self-test failed")
		s.println(s.style.bad("Tests failed."))
		return
	}
	s.println(s.style.good("Tests passed."))
}

func (s *Shell) println(line string) {
	fmt.Fprintln(s.out, line)
}
