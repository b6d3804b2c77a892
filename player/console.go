package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"dicegames/game"
)

var prompts = map[game.Decision]string{
	game.DecideContinue: "Press Enter to roll again, or 'Q' to quit...",
	game.DecideReroll:   "Do you want to reroll all the dice (A) or just the non-matching ones (B)?",
}

// Console reads one line per decision. Only the first non-space character
// matters, so "q", "Quit" and " Q " all quit.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ReadLine returns the next line without its line ending. A final line with
// no newline is still returned; io.EOF only comes back once input is empty.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) Choose(d game.Decision) (game.Choice, error) {
	fmt.Fprintln(c.out, prompts[d])
	line, err := c.ReadLine()
	if err != nil {
		return game.Quit, err
	}
	return ParseChoice(d, line), nil
}

// ParseChoice maps a key to a choice. Unrecognised keys continue.
func ParseChoice(d game.Decision, line string) game.Choice {
	key := firstKey(line)
	switch d {
	case game.DecideReroll:
		switch key {
		case 'a':
			return game.RerollAll
		case 'b':
			return game.RerollNonMatching
		}
	default:
		if key == 'q' {
			return game.Quit
		}
	}
	return game.Continue
}

func firstKey(line string) rune {
	for _, r := range line {
		if !unicode.IsSpace(r) {
			return unicode.ToLower(r)
		}
	}
	return 0
}
