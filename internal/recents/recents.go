// Package recents persists a small ring buffer of recently used file paths,
// one per line, in a plain text file. It is a CLI support concern only —
// the bmphide core neither reads nor writes it.
package recents

import (
	"bufio"
	"os"
)

// DefaultLimit is the number of paths kept when none is specified.
const DefaultLimit = 10

// Add appends path to the ring buffer stored at file, trimming the oldest
// entries beyond limit. Duplicate consecutive entries are not collapsed:
// the same path used twice in a row appears twice, matching how a plain
// history file behaves.
func Add(file, path string, limit int) error {
	entries, err := Load(file)
	if err != nil {
		return err
	}
	entries = append(entries, path)
	if len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return save(file, entries)
}

// Load reads the ring buffer from file. A missing file is treated as an
// empty list, not an error.
func Load(file string) ([]string, error) {
	f, err := os.Open(file)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			entries = append(entries, line)
		}
	}
	return entries, scanner.Err()
}

func save(file string, entries []string) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, e := range entries {
		if _, err := w.WriteString(e + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}
