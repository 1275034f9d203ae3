package utils

import (
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

var (
	// ErrInvalidPath is returned when a scan root does not exist or is not a directory
	ErrInvalidPath = errors.New("invalid path")
	// ErrFileSystem is returned when a scan root cannot be enumerated
	ErrFileSystem = errors.New("file system error")
)

// ValidatePatterns checks every exclusion pattern and returns the first malformed one
func ValidatePatterns(patterns []string) error {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}
	return nil
}
