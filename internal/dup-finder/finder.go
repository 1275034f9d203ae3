package dupfinder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/syntoxine/doubloon/internal/utils"
)

var (
	// ErrInvalidPath is returned when the scan root does not exist or is not a directory
	ErrInvalidPath = utils.ErrInvalidPath
	// ErrFileSystem is returned when the scan root cannot be enumerated
	ErrFileSystem = utils.ErrFileSystem
)

// PathIndex maps a file name to every full path bearing that name, in traversal order
type PathIndex map[string][]string

// add appends path under name and returns how many paths the name now has
func (p PathIndex) add(name, path string) int {
	p[name] = append(p[name], path)
	return len(p[name])
}

// SkippedEntry is an entry below the root that could not be read and was left out
type SkippedEntry struct {
	Path string
	Err  error
}

// Options tunes a walk
type Options struct {
	// Exclude holds doublestar patterns matched against root-relative paths
	Exclude []string
}

// Result holds everything a single walk produced
type Result struct {
	Index        PathIndex
	Duplicates   []string // names seen more than once, first-seen order, each listed once
	FilesScanned int
	Skipped      []SkippedEntry
}

type entryKind int

const (
	entryFile entryKind = iota
	entryDir
	entryIgnored
)

type walker struct {
	fsys   afero.Fs
	root   string
	opts   Options
	result *Result
}

// Walk scans root depth-first and groups every non-hidden file by name.
// Files of a directory are aggregated before its subdirectories are visited.
// Failures below the root are recorded in Result.Skipped and do not stop the walk.
func Walk(fsys afero.Fs, root string, opts Options) (*Result, error) {
	info, err := fsys.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidPath, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidPath, root)
	}

	entries, err := afero.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrFileSystem, root, err)
	}

	w := &walker{
		fsys: fsys,
		root: root,
		opts: opts,
		result: &Result{
			Index: make(PathIndex),
		},
	}
	w.visit(root, entries)

	return w.result, nil
}

func (w *walker) visit(dir string, entries []os.FileInfo) {
	var subdirs []string

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if w.skip(entry.Name(), path) {
			continue
		}

		kind, err := w.classify(path, entry)
		if err != nil {
			w.result.Skipped = append(w.result.Skipped, SkippedEntry{Path: path, Err: err})
			continue
		}

		switch kind {
		case entryDir:
			subdirs = append(subdirs, path)
		case entryFile:
			w.record(entry.Name(), path)
		}
	}

	for _, sub := range subdirs {
		children, err := afero.ReadDir(w.fsys, sub)
		if err != nil {
			w.result.Skipped = append(w.result.Skipped, SkippedEntry{Path: sub, Err: err})
			continue
		}
		w.visit(sub, children)
	}
}

func (w *walker) record(name, path string) {
	w.result.FilesScanned++
	// second sighting is the one that makes a name a duplicate
	if w.result.Index.add(name, path) == 2 {
		w.result.Duplicates = append(w.result.Duplicates, name)
	}
}

func (w *walker) skip(name, path string) bool {
	relPath, err := filepath.Rel(w.root, path)
	if err != nil {
		relPath = name
	}
	return utils.Skip(name, relPath, w.opts.Exclude)
}

// classify resolves symlinks: links to directories are not followed, broken links are errors
func (w *walker) classify(path string, info os.FileInfo) (entryKind, error) {
	if info.Mode()&os.ModeSymlink == 0 {
		if info.IsDir() {
			return entryDir, nil
		}
		return entryFile, nil
	}

	target, err := w.fsys.Stat(path)
	if err != nil {
		return entryIgnored, fmt.Errorf("resolving symlink: %w", err)
	}
	if target.IsDir() {
		return entryIgnored, nil
	}
	return entryFile, nil
}
