package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements config.DataFetcher for file-based configuration.
// The file is read once per Fetch call, so the fetcher itself never fails to
// construct and always reflects the file's current contents.
type Fetcher struct {
	filepath string
}

// NewFetcher creates a file-based Fetcher for the given path. The path is
// cleaned here; the file itself is not touched until Fetch.
func NewFetcher(fpath string) *Fetcher {
	return &Fetcher{filepath: filepath.Clean(fpath)}
}

// Path returns the cleaned path the fetcher reads from.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Fetch reads the whole file and returns its contents. The file handle is
// held only for the duration of the read. Returns an error if the file
// cannot be opened or read, or if the path points to a directory.
func (f *Fetcher) Fetch() ([]byte, error) {
	stat, err := os.Stat(f.filepath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", f.filepath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", f.filepath, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(f.filepath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", f.filepath, err)
	}

	return data, nil
}
