package geolib

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// DefaultResultsFileName is a name of the results file which is placed
// near the executable if nothing else is configured.
const DefaultResultsFileName = "geo_results.txt"

// ResultsFile is an append-only text file with rendered sections. It
// keeps a single handle open until Close is called.
type ResultsFile struct {
	path string
	file afero.File
}

// Path returns a path to the file.
func (r *ResultsFile) Path() string {
	return r.path
}

// Write appends a rendered section to the file.
func (r *ResultsFile) Write(section Section) error {
	if r.file == nil {
		return fmt.Errorf("results file %s is closed", r.path)
	}

	if _, err := r.file.WriteString(section.Block()); err != nil {
		return fmt.Errorf("cannot write to %s: %w", r.path, err)
	}

	return nil
}

// Close flushes and closes the file. It is safe to call it many times.
func (r *ResultsFile) Close() error {
	if r.file == nil {
		return nil
	}

	file := r.file
	r.file = nil

	if err := file.Sync(); err != nil {
		file.Close() // nolint: errcheck

		return fmt.Errorf("cannot flush %s: %w", r.path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("cannot close %s: %w", r.path, err)
	}

	return nil
}

// OpenResultsFile opens (and creates if necessary) a results file in
// append mode. If truncate is set, previous content is dropped.
func OpenResultsFile(fs afero.Fs, path string, truncate bool) (*ResultsFile, error) {
	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if truncate {
		flags |= os.O_TRUNC
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("cannot create directory %s: %w", dir, err)
		}
	}

	file, err := fs.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open results file %s: %w", path, err)
	}

	return &ResultsFile{
		path: path,
		file: file,
	}, nil
}

// DefaultResultsFilePath returns a path to the results file located
// alongside the executable. If executable path cannot be detected,
// current working directory is used.
func DefaultResultsFilePath() string {
	executable, err := os.Executable()
	if err != nil {
		return DefaultResultsFileName
	}

	if resolved, err := filepath.EvalSymlinks(executable); err == nil {
		executable = resolved
	}

	return filepath.Join(filepath.Dir(executable), DefaultResultsFileName)
}
