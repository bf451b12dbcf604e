package config_test

import (
	"fmt"

	"github.com/ntsk/mainframer/config"
	yamlparser "github.com/ntsk/mainframer/config/parser/yaml"
)

// StaticDataFetcher implements config.DataFetcher with static data.
// Useful for unit tests and examples that don't need file I/O.
type StaticDataFetcher struct {
	Data []byte
}

// Fetch returns the static data.
func (f *StaticDataFetcher) Fetch() ([]byte, error) {
	return f.Data, nil
}

func ExampleNew() {
	// Create the production YAML parser and a static data fetcher.
	// For file-based configuration, use filefetcher.NewFetcher(path) instead.
	parser := yamlparser.NewParser()
	fetcher := &StaticDataFetcher{
		Data: []byte("remoteMachine:\n  host: computer1\n"),
	}

	// Execute the pipeline: fetch, parse, translate.
	cfg, err := config.New(parser, fetcher)
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Printf("Host: %s\n", *cfg.RemoteMachine.Host)
	// Output: Host: computer1
}

func ExampleLoad() {
	cfg, err := config.Load("testdata/config.yml")
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Printf("Host: %s\n", *cfg.RemoteMachine.Host)
	fmt.Printf("Local compression: %d\n", *cfg.Compression.Local)
	fmt.Printf("Remote compression: %d\n", *cfg.Compression.Remote)
	// Output:
	// Host: computer1
	// Local compression: 5
	// Remote compression: 2
}

func ExampleLoad_invalidConfig() {
	// Validation failures carry the file path on the first line and the
	// field-level message below it.
	_, err := config.Load("testdata/invalid.yml")

	fmt.Println(err)
	// Output:
	// Error during parsing config file 'testdata/invalid.yml'
	// 'compression.local' must be a positive integer from 1 to 9, but was 10
}

func ExampleParse() {
	// Everything is optional: an absent section simply stays nil.
	cfg, err := config.Parse([]byte("compression:\n  remote: 3\n"))
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Printf("Remote machine configured: %v\n", cfg.RemoteMachine != nil)
	fmt.Printf("Remote compression: %d\n", *cfg.Compression.Remote)
	// Output:
	// Remote machine configured: false
	// Remote compression: 3
}
