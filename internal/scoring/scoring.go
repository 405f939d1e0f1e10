package scoring

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"time"
)

// Event is something the play loop reports to the score keeper.
type Event int

const (
	Step Event = iota
	Push
	Undo
	Blocked
	Restart
)

// Scoring counts the moves made on one level and keeps the level's
// history of results.
type Scoring struct {
	// public
	Steps    int
	Pushes   int
	Undos    int
	Blocked  int
	Restarts int
	Seconds  int
	// private
	storage   ScoreStorage // The interface for loading/saving scores.
	history   ScoreHistory
	levelHash string
}

// InitScoring creates a Scoring for a level, identified by its layout text,
// and loads the level's earlier results from storage.
func InitScoring(layoutText string, title string, storage ScoreStorage) (*Scoring, error) {
	s := &Scoring{
		storage:   storage,
		levelHash: calculateHash(layoutText),
	}

	allEntries, err := s.storage.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("could not load score history: %w", err)
	}

	// Filter entries for the current level.
	filteredEntries := []ScoreHistoryEntry{}
	for _, entry := range allEntries {
		if entry.Hash == s.levelHash {
			filteredEntries = append(filteredEntries, entry)
		}
	}

	// Fewest steps first.
	sort.SliceStable(filteredEntries, func(i, j int) bool {
		return filteredEntries[i].better(filteredEntries[j])
	})

	s.history.Entries = filteredEntries
	s.history.Attempts = len(filteredEntries)
	if len(filteredEntries) > 0 {
		s.history.BestEntry = &filteredEntries[0]
	}

	s.history.CurrentScore = &ScoreHistoryEntry{
		Hash:      s.levelHash,
		Timestamp: time.Now().Format(time.RFC3339),
		Title:     title,
	}

	return s, nil
}

// ScoreEvent updates the counters for one play event.
func (s *Scoring) ScoreEvent(event Event) {
	switch event {
	case Step:
		s.Steps++
	case Push:
		s.Pushes++
	case Undo:
		s.Undos++
	case Blocked:
		s.Blocked++
	case Restart:
		s.Restarts++
		s.Steps = 0
		s.Pushes = 0
		s.Undos = 0
	}
	s.sync()
}

// SetElapsed records how long the level has been played.
func (s *Scoring) SetElapsed(seconds int) {
	s.Seconds = seconds
	s.sync()
}

// SaveEntries persists the result of the finished level.
// It reads all scores, replaces this level's entries, and writes everything back.
func (s *Scoring) SaveEntries() error {
	if s.history.CurrentScore == nil || s.storage == nil {
		return nil // Nothing to save.
	}

	allEntries, err := s.storage.LoadAll()
	if err != nil {
		return fmt.Errorf("could not load scores for saving: %w", err)
	}

	updatedEntries := make([]ScoreHistoryEntry, 0, len(allEntries)+1)
	for _, entry := range allEntries {
		if entry.Hash != s.levelHash {
			updatedEntries = append(updatedEntries, entry)
		}
	}

	updatedEntries = append(updatedEntries, *s.history.CurrentScore)
	for _, entry := range s.history.Entries {
		if entry.Timestamp != s.history.CurrentScore.Timestamp {
			updatedEntries = append(updatedEntries, entry)
		}
	}

	return s.storage.SaveAll(updatedEntries)
}

// Accessor methods for score history, delegating to the history object.
func (s *Scoring) GetBest() *ScoreHistoryEntry {
	return s.history.GetBestEntry()
}

func (s *Scoring) GetAttempts() int {
	return s.history.Attempts
}

func (s *Scoring) GotBestScore() bool {
	return s.history.GotBestScore()
}

func (s *Scoring) GetNScoreEntries(n int) []ScoreHistoryEntry {
	return s.history.GetNScoreEntries(n)
}

func (s *Scoring) sync() {
	if s.history.CurrentScore == nil {
		return
	}
	s.history.CurrentScore.Steps = s.Steps
	s.history.CurrentScore.Pushes = s.Pushes
	s.history.CurrentScore.Undos = s.Undos
	s.history.CurrentScore.Seconds = s.Seconds
}

// calculateHash generates a SHA256 hash for the given text.
func calculateHash(text string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(text)))
}
