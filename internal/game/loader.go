package game

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go-soko/internal/board"
)

// Levels in one file are separated by a line of three or more '='.
var separatorRe = regexp.MustCompile(`(?m)^={3,}[ \t]*$`)

// LoadLevels loads layouts from a list of paths (files or directories).
// Directory entries are read in name order; subdirectories are skipped.
func LoadLevels(paths []string) ([]board.Layout, error) {
	var levels []board.Layout

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to access path %s: %w", path, err)
		}

		if !info.IsDir() {
			l, err := loadFile(path)
			if err != nil {
				return nil, err
			}
			levels = append(levels, l...)
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read dir %s: %w", path, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			l, err := loadFile(filepath.Join(path, entry.Name()))
			if err != nil {
				return nil, err
			}
			levels = append(levels, l...)
		}
	}

	return levels, nil
}

func loadFile(path string) ([]board.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")

	var levels []board.Layout
	for _, part := range separatorRe.Split(text, -1) {
		if strings.TrimSpace(part) == "" {
			continue
		}
		l, err := board.ParseLayout(part)
		if err != nil {
			return nil, fmt.Errorf("%s level %d: %w", path, len(levels)+1, err)
		}
		if l.Name == "" {
			l.Name = fmt.Sprintf("%s #%d", filepath.Base(path), len(levels)+1)
		}
		levels = append(levels, l)
	}
	return levels, nil
}
