package dupescan

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// IgnoreManager decides which filenames are excluded from a scan. Patterns
// are plain substrings matched against the base name only (not the full
// path), case-sensitive.
type IgnoreManager struct {
	patterns []string
}

// NewIgnoreManager creates an ignore manager with the given substring patterns.
// Empty patterns are dropped.
func NewIgnoreManager(patterns []string) *IgnoreManager {
	im := &IgnoreManager{patterns: make([]string, 0, len(patterns))}
	for _, p := range patterns {
		if p != "" {
			im.patterns = append(im.patterns, p)
		}
	}
	return im
}

// LoadIgnoreFile adds patterns from a file, one substring per line. Empty
// lines and lines starting with # are skipped.
func (im *IgnoreManager) LoadIgnoreFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open ignore file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		im.patterns = append(im.patterns, line)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading ignore file: %w", err)
	}
	return nil
}

// ShouldIgnore checks if a filename matches any ignore pattern
func (im *IgnoreManager) ShouldIgnore(filename string) bool {
	for _, pattern := range im.patterns {
		if strings.Contains(filename, pattern) {
			return true
		}
	}
	return false
}

// AddPattern adds a single substring pattern
func (im *IgnoreManager) AddPattern(pattern string) {
	if pattern != "" {
		im.patterns = append(im.patterns, pattern)
	}
}

// HasPatterns returns true if there are any ignore patterns loaded
func (im *IgnoreManager) HasPatterns() bool {
	return len(im.patterns) > 0
}

// Patterns returns the loaded patterns
func (im *IgnoreManager) Patterns() []string {
	return im.patterns
}
