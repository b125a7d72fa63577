// Package levels loads custom level packs from disk. This package depends
// on maze but maze does not depend on levels: the built-in campaign is
// compiled in, packs are an optional replacement.
package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ayudkin/tui-maze/internal/levels/formats"
	"github.com/ayudkin/tui-maze/internal/maze"
)

// Loader handles loading level files from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a level loader rooted at the given directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files under Root.
// Files that fail to parse or validate are skipped; levels come back
// sorted by file path for deterministic campaign order.
func (l *Loader) LoadAll() ([]maze.Level, error) {
	type entry struct {
		path  string
		level maze.Level
	}
	var entries []entry

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files; `maze levels validate` reports them.
			return nil
		}
		entries = append(entries, entry{path: path, level: level})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].path < entries[j].path
	})

	levels := make([]maze.Level, len(entries))
	for i, e := range entries {
		levels[i] = e.level
	}
	return levels, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(path string) (maze.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return maze.Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	level, err := parseByExtension(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return maze.Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if level.Name == "" {
		level.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return level, nil
}

// Validate walks the pack and reports every file that failed to load.
// A nil map means the whole pack is playable.
func (l *Loader) Validate() (map[string]error, error) {
	var problems map[string]error

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}
		if _, err := l.LoadFile(path); err != nil {
			if problems == nil {
				problems = make(map[string]error)
			}
			problems[path] = err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}
	return problems, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (maze.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return maze.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
