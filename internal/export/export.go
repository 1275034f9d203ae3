package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	dupfinder "github.com/syntoxine/doubloon/internal/dup-finder"
)

// FileName is the fixed name of the export file
const FileName = "doubloon-duplicates.csv"

// Title is the first row of every export
const Title = "Duplicates"

// ErrExportWrite is returned when the export file cannot be created or written
var ErrExportWrite = errors.New("export write failed")

// Header is the column header row
var Header = []string{"name", "filepath"}

// Write stores the duplicates of res as dir/FileName, replacing any previous export.
// Nothing is created or modified when res has no duplicates; written is false then.
func Write(fsys afero.Fs, dir string, res *dupfinder.Result) (path string, written bool, err error) {
	path = filepath.Join(dir, FileName)
	if !res.HasDuplicates() {
		return path, false, nil
	}

	f, err := fsys.Create(path)
	if err != nil {
		return path, false, fmt.Errorf("%w: creating %s: %w", ErrExportWrite, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: closing %s: %w", ErrExportWrite, path, cerr)
			written = false
		}
	}()

	// Excel dialect: comma separated, CRLF line endings
	w := csv.NewWriter(f)
	w.UseCRLF = true

	records := [][]string{{Title}, Header}
	for _, row := range res.Rows() {
		records = append(records, []string{row.Name, row.Path})
	}

	if err := w.WriteAll(records); err != nil {
		return path, false, fmt.Errorf("%w: writing %s: %w", ErrExportWrite, path, err)
	}

	return path, true, nil
}
