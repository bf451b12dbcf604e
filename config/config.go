package config

import (
	"fmt"

	"github.com/ntsk/mainframer/config/document"
)

// DocumentParser defines an interface for parsing raw configuration data
// into a generic document tree.
//
// Implementations own the concrete format. See config/parser/yaml for the
// YAML implementation using goccy/go-yaml; anything that can produce a
// document.Node works, which keeps the translation and validation rules
// format-agnostic.
type DocumentParser interface {
	Parse(data []byte) (document.Node, error)
}

// DataFetcher defines an interface for reading raw configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// New reads, parses, and translates configuration data. It is shaped for
// fx.Provide: give the container a DocumentParser and a DataFetcher and it
// yields the translated configuration.
func New(parser DocumentParser, fetcher DataFetcher) (*Intermediate, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("reading config data: %w", err)
	}

	root, err := parser.Parse(data)
	if err != nil {
		return nil, &Error{Kind: ErrSyntax, Err: err}
	}

	return Translate(root)
}
