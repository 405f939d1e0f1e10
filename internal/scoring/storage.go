package scoring

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ScoreStorage defines the interface for loading and saving score data.
// This allows for mocking the storage layer during tests.
type ScoreStorage interface {
	// LoadAll loads all score entries from the persistence layer.
	LoadAll() ([]ScoreHistoryEntry, error)
	// SaveAll saves a slice of score entries to the persistence layer, overwriting existing data.
	SaveAll(entries []ScoreHistoryEntry) error
}

// JSONFileStorage is an implementation of ScoreStorage that uses a file of
// newline-separated JSON objects.
type JSONFileStorage struct {
	path string
}

// NewJSONFileStorage stores scores under the user's config directory.
func NewJSONFileStorage() (*JSONFileStorage, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("could not get user home directory: %w", err)
	}
	return NewJSONFileStorageAt(filepath.Join(homeDir, ".config", "go-soko", "scores.json")), nil
}

// NewJSONFileStorageAt stores scores in the given file.
func NewJSONFileStorageAt(path string) *JSONFileStorage {
	return &JSONFileStorage{path: path}
}

func (jfs *JSONFileStorage) Path() string { return jfs.path }

// LoadAll reads and decodes all score entries from the JSON file.
func (jfs *JSONFileStorage) LoadAll() ([]ScoreHistoryEntry, error) {
	file, err := os.Open(jfs.path)
	// A missing file just means nothing has been played yet.
	if os.IsNotExist(err) {
		return []ScoreHistoryEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error opening scores file for reading: %w", err)
	}
	defer file.Close()

	entries := make([]ScoreHistoryEntry, 0)
	decoder := json.NewDecoder(file)
	for decoder.More() {
		var entry ScoreHistoryEntry
		if err := decoder.Decode(&entry); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("error decoding JSON entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// SaveAll replaces the scores file. Entries go to a temporary file in the
// same directory which is renamed over the old one, so a failed write leaves
// the previous scores intact.
func (jfs *JSONFileStorage) SaveAll(entries []ScoreHistoryEntry) (err error) {
	dir := filepath.Dir(jfs.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating scores directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(jfs.path)+".*")
	if err != nil {
		return fmt.Errorf("error creating temporary scores file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	writer := bufio.NewWriter(tmp)
	encoder := json.NewEncoder(writer)
	for _, entry := range entries {
		if err := encoder.Encode(entry); err != nil {
			return fmt.Errorf("error encoding JSON entry: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("error writing scores: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("error syncing scores: %w", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		return fmt.Errorf("error setting scores file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error closing scores file: %w", err)
	}
	if err := os.Rename(tmp.Name(), jfs.path); err != nil {
		return fmt.Errorf("error replacing scores file: %w", err)
	}
	return nil
}
