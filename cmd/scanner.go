package cmd

import (
	"github.com/spf13/afero"
	dupfinder "github.com/syntoxine/doubloon/internal/dup-finder"
)

// DuplicateScanner interface allows for easily mocking duplicate detection in tests
type DuplicateScanner interface {
	Scan(fsys afero.Fs, root string, opts dupfinder.Options) (*dupfinder.Result, error)
}

// DefaultDuplicateScanner is the default implementation that uses the dupfinder package
type DefaultDuplicateScanner struct{}

// Scan implements the DuplicateScanner interface using the actual dupfinder package
func (s *DefaultDuplicateScanner) Scan(fsys afero.Fs, root string, opts dupfinder.Options) (*dupfinder.Result, error) {
	return dupfinder.Walk(fsys, root, opts)
}

// Creates a new default duplicate scanner
func NewDefaultDuplicateScanner() DuplicateScanner {
	return &DefaultDuplicateScanner{}
}
