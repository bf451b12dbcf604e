package config

import (
	"fmt"
	"unicode/utf8"

	filefetcher "github.com/ntsk/mainframer/config/fetcher/file"
	yamlparser "github.com/ntsk/mainframer/config/parser/yaml"
)

// Load reads, parses, and validates the config file at path using the file
// fetcher and the YAML parser.
//
// Every failure names the path. A file that cannot be opened yields an Error
// of kind ErrAccess. File content that is not valid UTF-8 text means the
// environment itself is broken, and aborts the process rather than
// returning. A parse or validation failure is wrapped with the path on the
// first line and the underlying message below it.
func Load(path string) (*Intermediate, error) {
	data, err := filefetcher.NewFetcher(path).Fetch()
	if err != nil {
		return nil, &Error{Kind: ErrAccess, Path: path, Err: err}
	}

	if !utf8.Valid(data) {
		panic(fmt.Sprintf("Could not read config file '%s'", path))
	}

	cfg, err := Parse(data)
	if err != nil {
		//nolint:staticcheck // the message shape is part of the package contract
		return nil, fmt.Errorf("Error during parsing config file '%s'\n%w", path, err)
	}

	return cfg, nil
}

// Parse parses and validates an in-memory configuration document.
func Parse(data []byte) (*Intermediate, error) {
	root, err := yamlparser.NewParser().Parse(data)
	if err != nil {
		return nil, &Error{Kind: ErrSyntax, Err: err}
	}

	return Translate(root)
}
