package utils

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// HiddenPrefix marks entries that are never scanned or rendered
const HiddenPrefix = "."

// IsHidden reports whether a file or directory name is hidden
func IsHidden(name string) bool {
	return strings.HasPrefix(name, HiddenPrefix)
}

// IsExcluded reports whether relPath matches any of the exclusion patterns.
// relPath is relative to the scan root; it is converted to slash form before matching
// so patterns behave the same on every platform. A pattern without a slash also
// matches against the base name, so "*.tmp" excludes temp files at any depth.
func IsExcluded(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}

	slashPath := filepath.ToSlash(relPath)
	base := filepath.Base(relPath)

	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, slashPath); err == nil && matched {
			return true
		}
		if !strings.Contains(pattern, "/") {
			if matched, err := doublestar.Match(pattern, base); err == nil && matched {
				return true
			}
		}
	}

	return false
}

// Skip combines hidden and exclusion filtering for a single entry
func Skip(name, relPath string, patterns []string) bool {
	return IsHidden(name) || IsExcluded(relPath, patterns)
}
