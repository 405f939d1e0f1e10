package scoring

import (
	"sort"
)

// ScoreHistory holds the results recorded for one level, including
// past entries and the current attempt.
type ScoreHistory struct {
	Entries      []ScoreHistoryEntry
	BestEntry    *ScoreHistoryEntry
	CurrentScore *ScoreHistoryEntry
	Attempts     int
}

// ScoreHistoryEntry represents a single finished attempt at a level.
type ScoreHistoryEntry struct {
	Hash      string `json:"hash"`
	Steps     int    `json:"steps"`
	Pushes    int    `json:"pushes"`
	Undos     int    `json:"undos"`
	Seconds   int    `json:"seconds"`
	Timestamp string `json:"timestamp"`
	Title     string `json:"title"`
}

// better orders entries by fewest steps, then fewest pushes, then time.
func (e ScoreHistoryEntry) better(o ScoreHistoryEntry) bool {
	if e.Steps != o.Steps {
		return e.Steps < o.Steps
	}
	if e.Pushes != o.Pushes {
		return e.Pushes < o.Pushes
	}
	return e.Seconds < o.Seconds
}

// GetBestEntry returns the best earlier result.
func (sh ScoreHistory) GetBestEntry() *ScoreHistoryEntry {
	return sh.BestEntry
}

// GetNScoreEntries returns the best N entries, the current attempt included.
func (sh ScoreHistory) GetNScoreEntries(n int) []ScoreHistoryEntry {
	entries := make([]ScoreHistoryEntry, 0, len(sh.Entries)+1)
	entries = append(entries, sh.Entries...)
	if sh.CurrentScore != nil {
		entries = append(entries, *sh.CurrentScore)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].better(entries[j])
	})

	if len(entries) < n {
		return entries
	}
	return entries[:n]
}

// GotBestScore checks if the current attempt matches or beats the best
// earlier result.
func (sh ScoreHistory) GotBestScore() bool {
	if sh.BestEntry == nil || sh.CurrentScore == nil {
		return true
	}
	return !sh.BestEntry.better(*sh.CurrentScore)
}
