package scoring

import (
	"errors"
	"testing"
)

// MockScoreStorage is a mock implementation of the ScoreStorage interface
// that stores score entries in memory. This is used for testing.
type MockScoreStorage struct {
	Entries []ScoreHistoryEntry
	err     error // To simulate errors from the storage layer.
}

// LoadAll returns the in-memory entries or a simulated error.
func (m *MockScoreStorage) LoadAll() ([]ScoreHistoryEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.Entries, nil
}

// SaveAll replaces the in-memory entries with the provided slice or returns a simulated error.
func (m *MockScoreStorage) SaveAll(entries []ScoreHistoryEntry) error {
	if m.err != nil {
		return m.err
	}
	m.Entries = entries
	return nil
}

const testLayout = "#####\n#@$.#\n#####\n"

// TestInitScoring_NewLevel verifies a level with no earlier results.
func TestInitScoring_NewLevel(t *testing.T) {
	scoring, err := InitScoring(testLayout, "Test Level", &MockScoreStorage{})
	if err != nil {
		t.Fatalf("InitScoring returned an unexpected error: %v", err)
	}

	if scoring.GetAttempts() != 0 {
		t.Errorf("expected 0 attempts for a new level, but got %d", scoring.GetAttempts())
	}
	if scoring.GetBest() != nil {
		t.Errorf("expected nil best for a new level, but got %v", scoring.GetBest())
	}
	if !scoring.GotBestScore() {
		t.Error("first attempt is always the best")
	}
}

// TestInitScoring_WithHistory verifies that only this level's entries are
// loaded and the fewest-step entry is the best.
func TestInitScoring_WithHistory(t *testing.T) {
	hash := calculateHash(testLayout)
	mockStorage := &MockScoreStorage{
		Entries: []ScoreHistoryEntry{
			{Hash: "some_other_hash", Steps: 1, Title: "Other"},
			{Hash: hash, Steps: 30, Title: "Slow"},
			{Hash: hash, Steps: 12, Title: "Fast"},
		},
	}

	scoring, err := InitScoring(testLayout, "Test Level", mockStorage)
	if err != nil {
		t.Fatalf("InitScoring returned an unexpected error: %v", err)
	}

	if scoring.GetAttempts() != 2 {
		t.Errorf("expected 2 attempts, but got %d", scoring.GetAttempts())
	}
	best := scoring.GetBest()
	if best == nil || best.Steps != 12 {
		t.Fatalf("expected best of 12 steps, got %v", best)
	}
}

func TestInitScoring_StorageError(t *testing.T) {
	boom := errors.New("disk on fire")
	_, err := InitScoring(testLayout, "Test Level", &MockScoreStorage{err: boom})
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped storage error, got %v", err)
	}
}

func TestScoreEvent(t *testing.T) {
	scoring, _ := InitScoring(testLayout, "Test Level", &MockScoreStorage{})

	scoring.ScoreEvent(Step)
	scoring.ScoreEvent(Step)
	scoring.ScoreEvent(Push)
	scoring.ScoreEvent(Undo)
	scoring.ScoreEvent(Blocked)

	if scoring.Steps != 2 || scoring.Pushes != 1 || scoring.Undos != 1 || scoring.Blocked != 1 {
		t.Errorf("unexpected counters %+v", scoring)
	}

	scoring.ScoreEvent(Restart)
	if scoring.Steps != 0 || scoring.Pushes != 0 || scoring.Undos != 0 {
		t.Errorf("restart should reset move counters, got %+v", scoring)
	}
	if scoring.Restarts != 1 {
		t.Errorf("expected 1 restart, got %d", scoring.Restarts)
	}
}

func TestSaveEntries_ReplacesLevelEntries(t *testing.T) {
	hash := calculateHash(testLayout)
	mockStorage := &MockScoreStorage{
		Entries: []ScoreHistoryEntry{
			{Hash: "other", Steps: 5, Timestamp: "t0"},
			{Hash: hash, Steps: 20, Timestamp: "t1"},
		},
	}
	scoring, _ := InitScoring(testLayout, "Test Level", mockStorage)
	for i := 0; i < 9; i++ {
		scoring.ScoreEvent(Step)
	}
	scoring.SetElapsed(14)

	if err := scoring.SaveEntries(); err != nil {
		t.Fatalf("SaveEntries failed: %v", err)
	}

	if len(mockStorage.Entries) != 3 {
		t.Fatalf("expected 3 stored entries, got %d", len(mockStorage.Entries))
	}
	current := mockStorage.Entries[1]
	if current.Hash != hash || current.Steps != 9 || current.Seconds != 14 {
		t.Errorf("current attempt not stored correctly: %+v", current)
	}
	if !scoring.GotBestScore() {
		t.Error("9 steps beats the earlier 20")
	}
}

// TestGetNScoreEntries_IncludesCurrent verifies that the current attempt is
// ranked together with the stored ones.
func TestGetNScoreEntries_IncludesCurrent(t *testing.T) {
	hash := calculateHash(testLayout)
	mockStorage := &MockScoreStorage{
		Entries: []ScoreHistoryEntry{
			{Hash: hash, Steps: 30, Title: "Slow"},
			{Hash: hash, Steps: 10, Title: "Fast"},
		},
	}

	scoring, _ := InitScoring(testLayout, "Test", mockStorage)
	for i := 0; i < 20; i++ {
		scoring.ScoreEvent(Step)
	}

	entries := scoring.GetNScoreEntries(5)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, want := range []int{10, 20, 30} {
		if entries[i].Steps != want {
			t.Errorf("entry %d: expected %d steps, got %d", i, want, entries[i].Steps)
		}
	}
	if scoring.GotBestScore() {
		t.Error("20 steps does not beat 10")
	}
}
