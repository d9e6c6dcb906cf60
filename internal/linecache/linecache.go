// Package linecache provides a caching line reader over the filesystem.
package linecache

import (
	"fmt"
	"os"
	"strings"
)

// Cache reads source files on demand and serves individual lines from
// memory afterward. It satisfies the scanner's LineReader contract, so a
// caller querying many diagnostics in the same file touches the file once.
// Cache is not safe for concurrent use.
type Cache struct {
	files map[string][]string
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{files: make(map[string][]string)}
}

// GetLine returns the literal text of the 1-indexed line, without its line
// terminator. It returns an error when the file cannot be read or the line
// is out of range.
func (c *Cache) GetLine(file string, line int) (string, error) {
	lines, ok := c.files[file]
	if !ok {
		var err error

		lines, err = readLines(file)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", file, err)
		}

		c.files[file] = lines
	}

	if line < 1 || line > len(lines) {
		return "", fmt.Errorf("%s: line %d out of range (file has %d lines)",
			file, line, len(lines))
	}

	return lines[line-1], nil
}

// Invalidate drops the cached contents of file, forcing a re-read on the
// next GetLine. Unknown files are a no-op.
func (c *Cache) Invalidate(file string) {
	delete(c.files, file)
}

func readLines(file string) ([]string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(data), "\n")

	// A trailing newline produces an empty final element, not a line.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	return lines, nil
}
