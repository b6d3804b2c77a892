package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"dicegames/game"
)

type GameRecord struct {
	ID string
	GameMetric
}

// Summary aggregates the records of one game kind.
type Summary struct {
	Kind      game.Kind
	Games     int
	Rounds    int
	Endings   map[game.State]int
	AvgRounds float64
}

// Summarise groups records by kind, in kind order.
func Summarise(records []GameRecord) []Summary {
	byKind := map[game.Kind]*Summary{}
	for _, r := range records {
		s, ok := byKind[r.Kind]
		if !ok {
			s = &Summary{Kind: r.Kind, Endings: map[game.State]int{}}
			byKind[r.Kind] = s
		}
		s.Games++
		s.Rounds += r.Rounds
		s.Endings[r.Ending]++
	}

	summaries := make([]Summary, 0, len(byKind))
	for _, s := range byKind {
		s.AvgRounds = float64(s.Rounds) / float64(s.Games)
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Kind < summaries[j].Kind })
	return summaries
}

// Writer renders records as CSV. Nothing is written to disk unless the
// caller hands in a file.
type Writer struct {
	out io.Writer
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	writer := csv.NewWriter(w.out)

	// Write header
	header := []string{"id", "kind", "ending", "rounds", "restarts", "rerolls", "doubles", "matches", "total", "start_time", "duration"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			record.ID,
			record.Kind.String(),
			record.Ending.String(),
			strconv.Itoa(record.Rounds),
			strconv.Itoa(record.Restarts),
			strconv.Itoa(record.Rerolls),
			strconv.Itoa(record.Doubles),
			strconv.Itoa(record.Matches),
			strconv.Itoa(record.Total),
			record.StartTime.Format(time.RFC3339),
			record.Duration.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush game records: %w", err)
	}
	return nil
}

func (w *Writer) WriteSummaries(summaries []Summary) error {
	writer := csv.NewWriter(w.out)

	header := []string{"kind", "games", "avg_rounds", "bust", "score_reached", "quit"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write summary header: %w", err)
	}

	for _, s := range summaries {
		row := []string{
			s.Kind.String(),
			strconv.Itoa(s.Games),
			strconv.FormatFloat(s.AvgRounds, 'f', 2, 64),
			strconv.Itoa(s.Endings[game.Bust]),
			strconv.Itoa(s.Endings[game.ScoreReached]),
			strconv.Itoa(s.Endings[game.UserQuit]),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush summaries: %w", err)
	}
	return nil
}
