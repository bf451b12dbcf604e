// Package file provides a file-based DataFetcher implementation for the config package.
//
// This package reads configuration data from files on the filesystem.
// It implements the config.DataFetcher interface, returning raw bytes
// for subsequent parsing.
//
// The file is read once per Fetch call and the handle is released before
// Fetch returns, so constructing a Fetcher never fails and a fetch always
// reflects what is on disk at that moment.
//
// Usage:
//
//	fetcher := file.NewFetcher("/path/to/config.yml")
//	data, err := fetcher.Fetch()
//	if err != nil {
//	    // Handle error: file not found, permission denied, path is directory, etc.
//	}
//
// Error Handling:
//   - Fetch returns an error if the file cannot be read or the path is a directory
//   - Errors include the filepath for easier debugging
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
package file
