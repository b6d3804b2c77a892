package stats

import "sort"

// Entry is one line of the statistics report.
type Entry struct {
	GameType string
	Plays    int
}

// Tracker counts completed plays per game type for the life of the process.
// Counts only grow.
type Tracker struct {
	plays map[string]int
}

func NewTracker() *Tracker {
	return &Tracker{plays: make(map[string]int)}
}

// Record adds one play, starting the count at 1 for a new game type.
func (t *Tracker) Record(gameType string) {
	t.plays[gameType]++
}

func (t *Tracker) Plays(gameType string) (int, bool) {
	n, ok := t.plays[gameType]
	return n, ok
}

// Report returns a snapshot sorted by game type. Types never recorded are absent.
func (t *Tracker) Report() []Entry {
	entries := make([]Entry, 0, len(t.plays))
	for gameType, plays := range t.plays {
		entries = append(entries, Entry{GameType: gameType, Plays: plays})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].GameType < entries[j].GameType })
	return entries
}
